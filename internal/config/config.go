// Package config loads optional defaults for the CLI from a viper-backed
// file. Flags the caller sets explicitly always win over these values.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults holds config-file fallbacks for flags the caller did not set.
type Defaults struct {
	Sheet    string
	Format   string
	LogLevel string
}

// Load reads defaults from the config file at path. An empty path returns
// the built-in defaults; a path that cannot be read is an error, since the
// caller named it explicitly.
func Load(path string) (Defaults, error) {
	d := Defaults{
		Sheet:    "Cascade Fields",
		Format:   "json",
		LogLevel: "info",
	}
	if path == "" {
		return d, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return Defaults{}, fmt.Errorf("read config %s: %w", path, err)
	}

	d.Sheet = v.GetString("sheet")
	d.Format = v.GetString("format")
	d.LogLevel = v.GetString("log_level")
	return d, nil
}
