package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level that is written (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"omitempty,oneof=debug info warn error"`
	// Format is either "json" or "console".
	Format string `mapstructure:"format" default:"json" validate:"omitempty,oneof=json console"`
}
