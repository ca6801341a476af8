package probe

import (
	"fmt"
	"time"
)

const (
	DefaultIOTimeout     = 5 * time.Second
	DefaultPollInterval  = 100 * time.Second
	DefaultReadChunkSize = 1024
)

type Config struct {
	IOTimeout     time.Duration `mapstructure:"io_timeout"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	ReadChunkSize int           `mapstructure:"read_chunk_size"`
}

type ConsoleConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

func DefaultConfig() Config {
	return Config{
		IOTimeout:     DefaultIOTimeout,
		PollInterval:  DefaultPollInterval,
		ReadChunkSize: DefaultReadChunkSize,
	}
}

func (c *Config) Validate() error {
	if c.IOTimeout <= 0 {
		return fmt.Errorf("io_timeout must be > 0")
	}
	// 0 - poll without pausing between reads
	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval must be >= 0")
	}
	if c.ReadChunkSize <= 0 {
		return fmt.Errorf("read_chunk_size must be > 0")
	}
	return nil
}
