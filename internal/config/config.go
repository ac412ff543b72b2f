package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Deck   DeckConfig   `mapstructure:"deck"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds how long in-flight requests may run after
	// a shutdown signal.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"    validate:"gt=0"`
	ReadHeaderTimeoutSecs  int `mapstructure:"read_header_timeout_seconds" validate:"gt=0"`
}

// DeckConfig contains settings for deck construction.
type DeckConfig struct {
	// ShuffleSeed seeds the shuffle source. Zero selects a random seed at
	// startup; any other value makes shuffles reproducible across restarts.
	ShuffleSeed int64 `mapstructure:"shuffle_seed" validate:"gte=0"`
}
