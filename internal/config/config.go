// Package config resolves cmd/cdrdump's defaults in layers: defaults, then
// an optional config file, then environment variables, each layer
// overriding the last. No command-line flag is bound to these fields.
//
// # Dependencies
//
//   - github.com/spf13/viper
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config holds cmd/cdrdump's tunable defaults.
type Config struct {
	// ByteOrder is "big" or "little".
	ByteOrder string `mapstructure:"byte_order"`
	// Flavor is "plain" or "dds".
	Flavor string `mapstructure:"flavor"`
	// LogLevel is debug/info/warn/error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is text or json.
	LogFormat string `mapstructure:"log_format"`
}

// Defaults returns the configuration used when neither a file nor an
// environment variable overrides a field.
func Defaults() Config {
	return Config{
		ByteOrder: "little",
		Flavor:    "plain",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds a Config from, in increasing precedence: Defaults(),
// configFile (if non-empty; errors are only surfaced if the file exists
// and is malformed, matching viper's own no-file-is-fine stance), and
// CDRDUMP_-prefixed environment variables.
func Load(configFile string) (Config, error) {
	def := Defaults()

	v := viper.New()
	v.SetEnvPrefix("CDRDUMP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("byte_order", def.ByteOrder)
	v.SetDefault("flavor", def.Flavor)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
