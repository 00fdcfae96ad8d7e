package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. FLASHCARDS_LOG_LEVEL.
const EnvPrefix = "FLASHCARDS"

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"import":     "files.import",
	"export":     "files.export",
	"log-level":  "log.level",
	"log-format": "log.format",
	"color":      "ui.color",
}

// Load reads configuration from defaults, an optional config file, an
// optional .env file and environment variables. Environment variables take
// precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags works like Load and additionally binds the known flags of
// flags (see flagKeys) on top of every other source. Flags that were not set
// on the command line do not override anything.
func LoadWithFlags(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")
	v.SetDefault("ui.color", false)
	v.SetDefault("files.import", "")
	v.SetDefault("files.export", "")

	v.SetConfigName("flashcards")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/flashcards")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
