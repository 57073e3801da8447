// Package config loads CLI settings from defaults, an optional YAML file,
// VARDEPS_ environment variables and explicitly set flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/vardeps/internal/logging"
	"github.com/aretw0/vardeps/internal/presentation/graph"
	"github.com/aretw0/vardeps/internal/presentation/tui"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is stripped from environment variables before they become keys.
const EnvPrefix = "VARDEPS_"

// DefaultFiles are looked up in the working directory when no file is given.
var DefaultFiles = []string{"vardeps.yaml", "vardeps.yml"}

// Config holds the resolved CLI settings.
type Config struct {
	LogLevel string `koanf:"log_level"`
	Format   string `koanf:"format"`
	Strict   bool   `koanf:"strict"`
	Color    string `koanf:"color"`

	// File is the config file that was loaded, empty if none.
	File string `koanf:"-"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"log_level": "warn",
		"format":    string(graph.FormatMermaid),
		"strict":    false,
		"color":     string(tui.ColorAuto),
	}
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration. cfgFile may be empty; flags may be nil.
// An explicit cfgFile that cannot be read is an error, a missing default file is not.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: VARDEPS_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the CLI cannot act on.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if _, err := graph.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	switch tui.ColorMode(c.Color) {
	case tui.ColorAuto, tui.ColorAlways, tui.ColorNever:
	default:
		return fmt.Errorf("config: color: unknown mode %q (want auto, always or never)", c.Color)
	}
	return nil
}
