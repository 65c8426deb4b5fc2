package main

import (
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Root directory manifest entries are resolved against
	Root string `env:"BTIME_ROOT,default:."`

	// Manifest file consumed by the apply and watch commands
	Manifest string `env:"BTIME_MANIFEST,default:btime.json"`

	// Layout for times given on the command line: rfc3339, date, or a
	// Go reference-time layout
	TimeFormat string `env:"BTIME_TIME_FORMAT,default:rfc3339"`

	// Glob filter applied to manifest entries
	Filter string `env:"BTIME_FILTER"`

	// Verify recorded content hashes before stamping
	Verify bool `env:"BTIME_VERIFY,default:false"`

	// Stamp symbolic links themselves instead of their targets
	NoFollow bool `env:"BTIME_NO_FOLLOW,default:false"`

	// Refuse to run on platforms where birth times are immutable
	Strict bool `env:"BTIME_STRICT,default:false"`

	// Debug switches the logger to development output
	Debug bool `env:"BTIME_DEBUG,default:false"`
}

// getConfig returns config loaded from environment
func getConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// timeLayout resolves the configured time format to a parse layout.
func (c *Config) timeLayout() string {
	switch c.TimeFormat {
	case "rfc3339", "":
		return time.RFC3339
	case "date":
		return time.DateOnly
	default:
		return c.TimeFormat
	}
}
