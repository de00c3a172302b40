package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config represents the stockwallet configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Actor  ActorConfig  `mapstructure:"actor"`
}

// LogConfig configures the global zerolog logger
type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
	File   string `mapstructure:"file"`   // optional, appended to alongside stderr
}

// WalletConfig configures the wallet owned by the CLI process
type WalletConfig struct {
	Name        string `mapstructure:"name"`
	HistorySize int    `mapstructure:"history_size"` // operation records kept in memory
}

// ActorConfig configures the actor engine
type ActorConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

var (
	ErrInvalidLogFormat   = errors.New("log format must be console or json")
	ErrMissingWalletName  = errors.New("wallet must have a name")
	ErrInvalidHistorySize = errors.New("wallet history size must be greater than 0")
	ErrInvalidTimeout     = errors.New("actor request timeout must be greater than 0")
)

// LoadConfig loads the configuration from defaults, an optional config file
// and STOCKWALLET_ prefixed environment variables, in increasing priority.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaultConfig(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("STOCKWALLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Log.Format != LogFormatConsole && c.Log.Format != LogFormatJSON {
		return fmt.Errorf("%q: %w", c.Log.Format, ErrInvalidLogFormat)
	}
	if c.Wallet.Name == "" {
		return ErrMissingWalletName
	}
	if c.Wallet.HistorySize <= 0 {
		return ErrInvalidHistorySize
	}
	if c.Actor.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// AsMap flattens the configuration into dotted keys, as accepted by viper
func (c *Config) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"log.level":             c.Log.Level,
		"log.format":            c.Log.Format,
		"log.file":              c.Log.File,
		"wallet.name":           c.Wallet.Name,
		"wallet.history_size":   c.Wallet.HistorySize,
		"actor.request_timeout": c.Actor.RequestTimeout.String(),
	}
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogFormatConsole)
	v.SetDefault("log.file", "")

	v.SetDefault("wallet.name", "default")
	v.SetDefault("wallet.history_size", 100)

	v.SetDefault("actor.request_timeout", 5*time.Second)
}
