package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abctools/abcctl/internal/engine"
	"github.com/spf13/viper"
)

// Config is the whole tool configuration. Every knob has a default that
// reproduces the host application's observed latencies, so running with no
// config file at all is the common case.
type Config struct {
	Timing TimingConfig `mapstructure:"timing"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// TimingConfig exposes the engine delay policy in milliseconds. The scattered
// constant delays of the automation recipes all scale from these values.
type TimingConfig struct {
	UnitMs           int `mapstructure:"unit_ms"`
	PollIntervalMs   int `mapstructure:"poll_interval_ms"`
	FindTimeoutMs    int `mapstructure:"find_timeout_ms"`
	CheckTimeoutMs   int `mapstructure:"check_timeout_ms"`
	PopupTimeoutMs   int `mapstructure:"popup_timeout_ms"`
	ResubmitSettleMs int `mapstructure:"resubmit_settle_ms"`
}

// LoggerConfig controls the zap logger and the optional rotated log file.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Load reads configuration from path, or from $HOME/.abcctl.yaml when path is
// empty. A missing file is not an error — defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".abcctl")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("ABCCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := engine.DefaultTiming()
	v.SetDefault("timing.unit_ms", int(d.Unit/time.Millisecond))
	v.SetDefault("timing.poll_interval_ms", int(d.PollInterval/time.Millisecond))
	v.SetDefault("timing.find_timeout_ms", int(d.FindTimeout/time.Millisecond))
	v.SetDefault("timing.check_timeout_ms", int(d.CheckTimeout/time.Millisecond))
	v.SetDefault("timing.popup_timeout_ms", int(d.PopupTimeout/time.Millisecond))
	v.SetDefault("timing.resubmit_settle_ms", int(d.ResubmitSettle/time.Millisecond))
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.max_size_mb", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age_days", 28)
}

// EngineTiming converts the millisecond knobs into the engine's delay policy.
func (c *Config) EngineTiming() engine.Timing {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return engine.Timing{
		Unit:           ms(c.Timing.UnitMs),
		PollInterval:   ms(c.Timing.PollIntervalMs),
		FindTimeout:    ms(c.Timing.FindTimeoutMs),
		CheckTimeout:   ms(c.Timing.CheckTimeoutMs),
		PopupTimeout:   ms(c.Timing.PopupTimeoutMs),
		ResubmitSettle: ms(c.Timing.ResubmitSettleMs),
	}
}
