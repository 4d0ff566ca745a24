package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	REPL     REPLConfig    `mapstructure:"repl"`
	UI       UIConfig      `mapstructure:"ui"`
	Log      LogConfig     `mapstructure:"log"`
	Contacts []ContactSeed `mapstructure:"contacts"`
}

// REPLConfig represents interactive session configuration
type REPLConfig struct {
	Prompt string `mapstructure:"prompt"`
}

// UIConfig represents console output configuration
type UIConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty = console logging
	Level string `mapstructure:"level"`
}

// ContactSeed is one pre-listed contact for the one-shot birthdays
// command. The interactive session always starts from an empty book.
type ContactSeed struct {
	Name     string `mapstructure:"name"`
	Phone    string `mapstructure:"phone"`
	Birthday string `mapstructure:"birthday"`
}

// Load loads configuration from file. A missing file is only an error
// when an explicit path was given; otherwise defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book-bot")
		v.AddConfigPath("/etc/contact-book-bot")
	}

	v.SetDefault("repl.prompt", "Enter a command: ")
	v.SetDefault("log.level", "info")

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !(configPath == "" && errors.As(err, &notFound)) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.REPL.Prompt == "" {
		return fmt.Errorf("repl.prompt must not be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	for i, seed := range c.Contacts {
		if seed.Name == "" {
			return fmt.Errorf("contacts[%d].name is required", i)
		}
		if seed.Phone == "" {
			return fmt.Errorf("contacts[%d].phone is required", i)
		}
	}

	return nil
}
