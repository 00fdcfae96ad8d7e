package config

// Config holds all application configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log" validate:"required"`
	UI    UIConfig    `mapstructure:"ui"`
	Files FilesConfig `mapstructure:"files"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// UIConfig contains settings for the interactive shell.
type UIConfig struct {
	// Color enables coloured quiz feedback on the terminal. The transcript
	// is always plain text.
	Color bool `mapstructure:"color"`
}

// FilesConfig contains the card files read at startup and written on exit.
// Empty means "not requested". Paths are not validated here: a bad path is
// reported by the shell when the file is read or written.
type FilesConfig struct {
	Import string `mapstructure:"import"`
	Export string `mapstructure:"export"`
}
