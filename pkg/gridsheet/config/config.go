// Package config loads gridsheet settings from .gridsheet.yaml, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// Keys understood in the config file and as GRIDSHEET_* variables.
const (
	KeySortDirection = "sort.direction"
	KeyCSVComma      = "csv.comma"
	KeyCSVHeader     = "csv.header"
	KeyOutputFormat  = "output.format"
	KeyOutputPretty  = "output.pretty"
	KeyLogLevel      = "log.level"
)

// Config is the resolved configuration.
type Config struct {
	SortDirection models.SortDirection
	CSVComma      rune
	CSVHeader     bool
	OutputFormat  string
	OutputPretty  bool
	LogLevel      slog.Level
}

// New returns a viper instance with defaults, the GRIDSHEET env prefix and
// the config search path set up: GRIDSHEET_CONFIG_PATH when set, then the
// working directory, then the home directory.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySortDirection, string(models.Ascending))
	v.SetDefault(KeyCSVComma, ",")
	v.SetDefault(KeyCSVHeader, false)
	v.SetDefault(KeyOutputFormat, "table")
	v.SetDefault(KeyOutputPretty, false)
	v.SetDefault(KeyLogLevel, "warn")

	v.SetConfigName(".gridsheet") // .yaml is implicit
	v.SetEnvPrefix("GRIDSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("GRIDSHEET_CONFIG_PATH"); override != "" {
		if expanded, err := homedir.Expand(override); err == nil {
			override = expanded
		}
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Read loads the config file into v. A missing file is not an error.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Resolve validates the values held by v.
func Resolve(v *viper.Viper) (*Config, error) {
	dir, err := models.ParseSortDirection(v.GetString(KeySortDirection))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeySortDirection, err)
	}

	comma := []rune(v.GetString(KeyCSVComma))
	if len(comma) != 1 || comma[0] == '"' || comma[0] == '\n' || comma[0] == '\r' {
		return nil, fmt.Errorf("%s: want a single delimiter character, got %q", KeyCSVComma, string(comma))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	return &Config{
		SortDirection: dir,
		CSVComma:      comma[0],
		CSVHeader:     v.GetBool(KeyCSVHeader),
		OutputFormat:  strings.ToLower(v.GetString(KeyOutputFormat)),
		OutputPretty:  v.GetBool(KeyOutputPretty),
		LogLevel:      level,
	}, nil
}

// Load reads the config file and resolves it.
func Load() (*Config, error) {
	v := New()
	if err := Read(v); err != nil {
		return nil, err
	}
	return Resolve(v)
}

// Options converts the configuration into load and save options.
func (c *Config) Options() gridsheet.Options {
	opts := gridsheet.DefaultOptions()
	opts.CSV.Comma = c.CSVComma
	opts.CSV.Header = c.CSVHeader
	opts.SortDirection = c.SortDirection
	opts.Pretty = c.OutputPretty
	return opts
}
