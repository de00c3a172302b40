package internal

import (
	"fmt"
)

// Init loads the configuration and installs the global logger
func Init(configFile string) (*Config, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if err := InitGlobalLogger(cfg.Log); err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	logger := ComponentLogger(ComponentConfig)
	logger.Debug().
		Str("wallet", cfg.Wallet.Name).
		Int("historySize", cfg.Wallet.HistorySize).
		Dur("requestTimeout", cfg.Actor.RequestTimeout).
		Msg("Configuration loaded")

	return cfg, nil
}
