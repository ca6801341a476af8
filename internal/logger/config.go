package logger

import (
	"fmt"
)

// Config controls the optional rotating log file. Console logs always go to stderr.
type Config struct {
	EnableWriteToFile bool   `mapstructure:"enable_write_to_file"`
	FilePath          string `mapstructure:"file_path"`
	MaxSize           int    `mapstructure:"max_size"` // MB before rotation
	MaxBackups        int    `mapstructure:"max_backups"`
	MaxAgeDays        int    `mapstructure:"max_age_days"`
}

func (c *Config) Validate() error {
	if !c.EnableWriteToFile {
		return nil
	}
	switch {
	case c.FilePath == "":
		return fmt.Errorf("file_path is required when enable_write_to_file is set")
	case c.MaxSize <= 0:
		return fmt.Errorf("max_size must be > 0")
	case c.MaxBackups < 0:
		return fmt.Errorf("max_backups must be >= 0")
	case c.MaxAgeDays < 0:
		return fmt.Errorf("max_age_days must be >= 0")
	}
	return nil
}
