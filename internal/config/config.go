// Package config layers whoami settings from a config file, WHOAMI_
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/redjax/whoami/internal/utils/path"
)

// EnvPrefix marks environment variables that override config values.
const EnvPrefix = "WHOAMI_"

// Output formats understood by the renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings shared by every command.
type Config struct {
	// Root is the directory file-based facts are read from.
	Root   string `koanf:"root"`
	Format string `koanf:"format"`
	Debug  bool   `koanf:"debug"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Root:   "/",
		Format: FormatText,
	}
}

// Load reads configFile (if set), then WHOAMI_ variables, then the flags in
// flagSet. Flags left at their default do not override earlier layers.
func Load(flagSet *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	if configFile != "" {
		p, err := path.ExpandPath(configFile)
		if err != nil {
			return nil, err
		}

		parser, err := parserForFile(p)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(p), parser); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", p, err)
		}
	}

	// WHOAMI_FORMAT=json becomes format=json
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flagSet != nil {
		if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) normalize() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	case "yml":
		c.Format = FormatYAML
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Format)
	}

	if c.Root == "" {
		c.Root = "/"
	}

	root, err := path.ExpandPath(c.Root)
	if err != nil {
		return err
	}
	c.Root = root

	return nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
