package echoserver

import (
	"fmt"
	"time"
)

// Mode selects how the server answers once the client has half-closed.
type Mode string

const (
	ModeEcho    Mode = "echo"
	ModePartial Mode = "partial"
	ModeCorrupt Mode = "corrupt"
	ModeSilent  Mode = "silent"
	ModeClose   Mode = "close"
)

type Config struct {
	BindAddr       string        `mapstructure:"bind_addr"`
	MaxConnections int           `mapstructure:"max_connections"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	Mode           Mode          `mapstructure:"mode"`
	MetricsAddr    string        `mapstructure:"metrics_addr"`
}

func (m Mode) Validate() error {
	switch m {
	case ModeEcho, ModePartial, ModeCorrupt, ModeSilent, ModeClose:
		return nil
	default:
		return fmt.Errorf("unsupported mode %q (expected one of: echo, partial, corrupt, silent, close)", string(m))
	}
}

func (c *Config) Validate() error {
	if c.BindAddr == "" {
		return fmt.Errorf("bind_addr is required")
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("max_connections must be > 0")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be > 0")
	}
	if err := c.Mode.Validate(); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	return nil
}
