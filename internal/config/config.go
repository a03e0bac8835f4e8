// Package config loads app settings from defaults, a TOML file, the
// environment and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory when -config is not given.
const DefaultConfigFile = "toggles.toml"

// Config holds everything the entry point needs.
type Config struct {
	Theme     string `toml:"theme"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	LogFormat string `toml:"log_format"`
	AltScreen bool   `toml:"alt_screen"`
	JSON      bool   `toml:"json"`
	// Color is auto, always or never.
	Color string `toml:"color"`

	// ConfigFile is the file actually loaded, empty if none.
	ConfigFile string `toml:"-"`
	// Args are the positional arguments left after flag parsing.
	Args []string `toml:"-"`
	// Unknown lists config file keys that matched no field.
	Unknown []string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.Theme = "classic"
	cfg.LogLevel = "info"
	cfg.LogFile = filepath.Join(os.TempDir(), "toggles.log")
	cfg.LogFormat = "text"
	cfg.AltScreen = true
	cfg.Color = "auto"
}

// Load builds a Config. fs receives the flag definitions; args are parsed
// after the file and environment have been applied so flags win.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	var (
		configPath = fs.String("config", "", "path to a TOML config file (default ./"+DefaultConfigFile+")")
		theme      = fs.String("theme", "", "color theme: classic, neon, mono")
		logLevel   = fs.String("log-level", "", "log level: debug, info, warn, error")
		logFile    = fs.String("log-file", "", "log file path, - to disable")
		logFormat  = fs.String("log-format", "", "log format: text, json, logfmt")
		noAlt      = fs.Bool("no-alt-screen", false, "run the TUI inline instead of the alternate screen")
		jsonOut    = fs.Bool("json", false, "print the replay result as JSON")
		color      = fs.String("color", "", "color output: auto, always, never")
	)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	path, explicit := *configPath, *configPath != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := loadConfigFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		cfg.ConfigFile = path
	}

	loadFromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = *theme
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		case "log-format":
			cfg.LogFormat = *logFormat
		case "no-alt-screen":
			cfg.AltScreen = !*noAlt
		case "json":
			cfg.JSON = *jsonOut
		case "color":
			cfg.Color = *color
		}
	})
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	for _, k := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, k.String())
	}
	return nil
}

// ForceColor reports whether color was requested regardless of the terminal.
func (c *Config) ForceColor() bool { return strings.EqualFold(c.Color, "always") }

// NoColor reports whether color output is turned off.
func (c *Config) NoColor() bool { return strings.EqualFold(c.Color, "never") }

// loadFromEnv overrides config from TOGGLES_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TOGGLES_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TOGGLES_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TOGGLES_LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv("TOGGLES_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = "never"
	}
	if v := strings.TrimSpace(os.Getenv("TOGGLES_COLOR")); v != "" {
		cfg.Color = v
	}
	if v := strings.TrimSpace(os.Getenv("TOGGLES_ALT_SCREEN")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AltScreen = b
		}
	}
}

// Validate rejects values the rest of the app cannot act on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme %q (want classic, neon or mono)", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}
