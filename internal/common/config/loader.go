// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"chatbot-lambdas/internal/common/errors"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Enable ENV override like LEX_BOT_ID
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEmptyConfig(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// loadEnvFile loads a .env file when present, otherwise system environment
// variables are used as-is.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// overrideEmptyConfig falls back to well-known environment variable names for
// values viper did not resolve.
func overrideEmptyConfig(cfg *Config) {
	if cfg.AWS.Region == "" {
		if val := os.Getenv("AWS_REGION"); val != "" {
			cfg.AWS.Region = val
		}
	}
	if cfg.Lex.BotID == "" {
		if val := os.Getenv("LEX_BOT_ID"); val != "" {
			cfg.Lex.BotID = val
		}
	}
	if cfg.Lex.BotAliasID == "" {
		if val := os.Getenv("LEX_BOT_ALIAS_ID"); val != "" {
			cfg.Lex.BotAliasID = val
		}
	}
	if cfg.Connect.InstanceID == "" {
		if val := os.Getenv("CONNECT_INSTANCE_ID"); val != "" {
			cfg.Connect.InstanceID = val
		}
	}
	if cfg.Connect.ContactFlowID == "" {
		if val := os.Getenv("CONNECT_CONTACT_FLOW_ID"); val != "" {
			cfg.Connect.ContactFlowID = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "chatbot-lambdas"
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.Lex.LocaleID == "" {
		cfg.Lex.LocaleID = "en_US"
	}
	if cfg.Website.SourceDir == "" {
		cfg.Website.SourceDir = "deployment/"
	}
	if len(cfg.Website.Files) == 0 {
		cfg.Website.Files = []string{"js/amazon-connect-chat-interface.js"}
	}
	if cfg.Website.IndexFile == "" {
		cfg.Website.IndexFile = "index.html"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// ValidateLex checks the bot identification required by every session-store
// call. Absence is a startup error reported before any request is served.
func ValidateLex(cfg *Config) error {
	if cfg.Lex.BotID == "" {
		return errors.NewConfigMissingError("lex.bot_id")
	}
	if cfg.Lex.BotAliasID == "" {
		return errors.NewConfigMissingError("lex.bot_alias_id")
	}
	return nil
}
