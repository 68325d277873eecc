// internal/functions/loanbot/config.go
package loanbot

type Config struct {
	// MaxBotTries is the fallback retry ceiling. Reaching it is a defined
	// terminal outcome, not an error.
	MaxBotTries int
}

func LoadConfig() *Config {
	return &Config{
		MaxBotTries: 3,
	}
}
