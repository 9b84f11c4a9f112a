package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	StrategyDefault = "default"
	StrategySingle  = "single"
	StrategyMix     = "mix"
)

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type ClientConfig struct {
	Timeout string `mapstructure:"timeout"`
}

// RegistryConfig selects the backends of one capability. Backends is
// ignored by the default strategy.
type RegistryConfig struct {
	Strategy string   `mapstructure:"strategy"`
	Backends []string `mapstructure:"backends"`
}

type MonitorConfig struct {
	Interval string `mapstructure:"interval"`
}

type MetricsConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

type Config struct {
	Server     ServerConfig   `mapstructure:"server"`
	Logging    LoggingConfig  `mapstructure:"logging"`
	Client     ClientConfig   `mapstructure:"client"`
	Detector   RegistryConfig `mapstructure:"detector"`
	Translator RegistryConfig `mapstructure:"translator"`
	Monitor    MonitorConfig  `mapstructure:"monitor"`
	Metrics    MetricsConfig  `mapstructure:"metrics"`

	v *viper.Viper
}

// Load reads config.yaml from ./config or the working directory, then
// applies environment overrides such as SERVER_ADDRESS or
// TRANSLATOR_BACKENDS. A .env file in the working directory is loaded into
// the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env file", slog.String("error", err.Error()))
		return nil, err
	}

	v := viper.New()

	v.SetDefault("server.environment", EnvDev)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("detector.strategy", StrategyDefault)
	v.SetDefault("detector.backends", []string{})
	v.SetDefault("translator.strategy", StrategyDefault)
	v.SetDefault("translator.backends", []string{})
	v.SetDefault("monitor.interval", "10s")
	v.SetDefault("metrics.buffer_size", 1000)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Warn("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	cfg.v = v
	return &cfg, nil
}

// Watch calls fn with the reloaded configuration each time the config file
// changes and the new content is valid. It reports false when no config
// file was loaded.
func (c *Config) Watch(fn func(*Config)) bool {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return false
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		var next Config
		if err := c.v.Unmarshal(&next); err != nil {
			slog.Error("failed to unmarshal reloaded config", slog.String("error", err.Error()))
			return
		}
		if err := next.Validate(); err != nil {
			slog.Error("ignoring invalid reloaded config", slog.String("error", err.Error()))
			return
		}

		next.v = c.v
		fn(&next)
	})
	c.v.WatchConfig()

	return true
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(ServerConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ServerConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
					validation.Field(&sc.Address,
						validation.Required,
						validation.By(validateHostPort),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Client,
			validation.Required,
			validation.By(func(value interface{}) error {
				cc, ok := value.(ClientConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ClientConfig")
				}
				return validation.ValidateStruct(&cc,
					validation.Field(&cc.Timeout,
						validation.Required,
						validation.By(validateDuration),
					),
				)
			}),
		),
		validation.Field(&c.Detector, validation.Required, validation.By(validateRegistryConfig)),
		validation.Field(&c.Translator, validation.Required, validation.By(validateRegistryConfig)),
		validation.Field(&c.Monitor,
			validation.Required,
			validation.By(func(value interface{}) error {
				mc, ok := value.(MonitorConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a MonitorConfig")
				}
				return validation.ValidateStruct(&mc,
					validation.Field(&mc.Interval,
						validation.Required,
						validation.By(validateDuration),
					),
				)
			}),
		),
		validation.Field(&c.Metrics,
			validation.Required,
			validation.By(func(value interface{}) error {
				mc, ok := value.(MetricsConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a MetricsConfig")
				}
				return validation.ValidateStruct(&mc,
					validation.Field(&mc.BufferSize,
						validation.Required,
						validation.Min(1),
					),
				)
			}),
		),
	)
}

// ClientTimeout returns the parsed backend request timeout.
func (c *Config) ClientTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Client.Timeout)
	return d
}

// MonitorInterval returns the parsed health monitor interval.
func (c *Config) MonitorInterval() time.Duration {
	d, _ := time.ParseDuration(c.Monitor.Interval)
	return d
}

func validateRegistryConfig(value interface{}) error {
	rc, ok := value.(RegistryConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a RegistryConfig")
	}

	return validation.ValidateStruct(&rc,
		validation.Field(&rc.Strategy,
			validation.Required,
			validation.In(StrategyDefault, StrategySingle, StrategyMix),
		),
		validation.Field(&rc.Backends,
			validation.When(rc.Strategy == StrategySingle,
				validation.Required.Error("single strategy needs a backend name"),
				validation.Length(1, 1).Error("single strategy takes exactly one backend name"),
			),
			validation.When(rc.Strategy == StrategyMix,
				validation.Required.Error("mix strategy needs at least one backend name"),
			),
			validation.Each(validation.Required),
		),
	)
}

func validateHostPort(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if port == "" {
		return validation.NewError("validation_invalid_port", "port cannot be empty")
	}

	if host != "" {
		if err := is.Host.Validate(host); err != nil {
			return validation.NewError("validation_invalid_host", "invalid host")
		}
	}

	return nil
}

func validateDuration(value interface{}) error {
	durationStr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	d, err := time.ParseDuration(durationStr)
	if err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 2s, 5m, 1h)")
	}

	if d <= 0 {
		return validation.NewError("validation_non_positive_duration", "must be positive")
	}

	return nil
}
