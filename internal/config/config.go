package config

import (
	"flag"
	"os"
	"time"
)

// Config carries runtime options for gribble.
type Config struct {
	Interval time.Duration
	StartDir string
	Debug    bool
}

func Default() Config {
	return Config{
		Interval: 2 * time.Second,
		StartDir: ".",
		Debug:    false,
	}
}

// FromFlags parses flags and environment overrides. Environment wins over
// flags so wrappers and service files can pin settings.
func FromFlags(args []string) Config {
	cfg := Default()
	fs := flag.NewFlagSet("gribble", flag.ContinueOnError)
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "metrics poll interval")
	fs.StringVar(&cfg.StartDir, "dir", cfg.StartDir, "starting directory for the file explorer")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	_ = fs.Parse(args)

	if v := os.Getenv("GRIBBLE_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Interval = parsed
		} else if parsed, err2 := time.ParseDuration(v + "s"); err2 == nil {
			cfg.Interval = parsed
		}
	}
	if v := os.Getenv("GRIBBLE_DIR"); v != "" {
		cfg.StartDir = v
	}
	if os.Getenv("GRIBBLE_DEBUG") != "" {
		cfg.Debug = true
	}

	if cfg.Interval < 100*time.Millisecond {
		cfg.Interval = 100 * time.Millisecond
	}
	return cfg
}
