// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Lex     LexConfig     `mapstructure:"lex"`
	Connect ConnectConfig `mapstructure:"connect"`
	Website WebsiteConfig `mapstructure:"website"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// LexConfig identifies the bot every session-store call targets. The bot
// identifier and alias are fixed configuration, never derived from a request.
type LexConfig struct {
	BotID      string `mapstructure:"bot_id"`
	BotAliasID string `mapstructure:"bot_alias_id"`
	LocaleID   string `mapstructure:"locale_id"`
}

type ConnectConfig struct {
	InstanceID    string `mapstructure:"instance_id"`
	ContactFlowID string `mapstructure:"contact_flow_id"`
}

// WebsiteConfig drives the provisioning asset copy and index templating.
type WebsiteConfig struct {
	SourceDir string   `mapstructure:"source_dir"`
	Files     []string `mapstructure:"files"`
	IndexFile string   `mapstructure:"index_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
