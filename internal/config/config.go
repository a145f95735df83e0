package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sheetAlign/internal/logger"
)

type Config struct {
	Align AlignConfig `toml:"align"`
	UI    UIConfig    `toml:"ui"`
}

type AlignConfig struct {
	BaseFile       string `toml:"base_file"`
	InputDirectory string `toml:"input_directory"`
}

type UIConfig struct {
	ResultsPerPage int `toml:"results_per_page"`
}

// LoadConfig loads configuration from the specified config file path,
// creating a default config file when none exists yet.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		defaultConfig := &Config{
			Align: AlignConfig{
				BaseFile:       "data/base.xlsx",
				InputDirectory: "data/input",
			},
			UI: UIConfig{
				ResultsPerPage: 12,
			},
		}

		if err := SaveConfig(configPath, defaultConfig); err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	// Set defaults if missing
	if config.Align.BaseFile == "" {
		config.Align.BaseFile = "data/base.xlsx"
	}
	if config.Align.InputDirectory == "" {
		config.Align.InputDirectory = "data/input"
	}
	if config.UI.ResultsPerPage == 0 {
		config.UI.ResultsPerPage = 12
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
