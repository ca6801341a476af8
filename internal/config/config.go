package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/zhukov-alex/echoprobe/internal/echoserver"
	"github.com/zhukov-alex/echoprobe/internal/logger"
	"github.com/zhukov-alex/echoprobe/internal/probe"
)

type Config struct {
	MetricsTextfile string `mapstructure:"metrics_textfile"`

	Probe      probe.Config        `mapstructure:"probe"`
	Console    probe.ConsoleConfig `mapstructure:"console"`
	EchoServer echoserver.Config   `mapstructure:"echo_server"`
	Logger     logger.Config       `mapstructure:"logger"`
}

// NewConfigInit loads cfgFile into the global viper. An empty path keeps the defaults.
func NewConfigInit(cfgFile *string) func() {
	return func() {
		if strings.TrimSpace(*cfgFile) == "" {
			return
		}
		if _, err := os.Stat(*cfgFile); err != nil {
			log.Fatalf("invalid config path: %v", err)
		}
		viper.SetConfigFile(*cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("Failed to read config: %v\n", err)
		}
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("metrics_textfile", "")

	v.SetDefault("probe.io_timeout", probe.DefaultIOTimeout)
	v.SetDefault("probe.poll_interval", probe.DefaultPollInterval)
	v.SetDefault("probe.read_chunk_size", probe.DefaultReadChunkSize)

	v.SetDefault("console.no_color", false)

	v.SetDefault("echo_server.bind_addr", "0.0.0.0:6666")
	v.SetDefault("echo_server.max_connections", 16)
	v.SetDefault("echo_server.read_timeout", "30s")
	v.SetDefault("echo_server.mode", string(echoserver.ModeEcho))
	v.SetDefault("echo_server.metrics_addr", "")

	v.SetDefault("logger.enable_write_to_file", false)
}

func New(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}
	if err := c.Probe.Validate(); err != nil {
		return fmt.Errorf("probe config: %w", err)
	}
	if err := c.EchoServer.Validate(); err != nil {
		return fmt.Errorf("echo_server config: %w", err)
	}
	return nil
}
