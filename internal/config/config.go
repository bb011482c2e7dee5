// Package config holds the settings shared by the command-line tools.
//
// Settings come from built-in defaults, then an optional INI file, then
// environment variables. Command flags are applied last by each command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/tr069-model/tr069-go/pkg/wire"
)

// FileName is the name of the per-user configuration file.
const FileName = ".tr069-model.ini"

// Config holds all tool configuration.
type Config struct {
	// Model is the root data model of records, e.g. "Device" or
	// "InternetGatewayDevice".
	Model string

	// Schema is an optional YAML schema file that replaces the built-in one.
	Schema string

	// Format is the default document format name (xml, yaml, json, cbor, bson).
	Format string

	// Indent is the indentation used when writing text formats.
	Indent string

	// EventLog is a CBOR event file that codec events are appended to.
	// Empty disables it.
	EventLog string

	// Verbose enables development logging.
	Verbose bool

	// History is the shell history file.
	History string
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Model:  "Device",
		Format: "xml",
		Indent: "  ",
	}
}

// DefaultPath returns the configuration file in the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// LoadFromFile loads configuration from an INI file. Keys are
// case-insensitive and live in the default section; the [shell] section
// may set history.
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		return err
	}

	section := cfg.Section("")
	c.Model = section.Key("model").MustString(c.Model)
	c.Schema = section.Key("schema").MustString(c.Schema)
	c.Format = section.Key("format").MustString(c.Format)
	c.EventLog = section.Key("eventlog").MustString(c.EventLog)
	c.Verbose = section.Key("verbose").MustBool(c.Verbose)
	c.History = section.Key("history").MustString(c.History)

	if section.HasKey("indent") {
		indent, err := parseIndent(section.Key("indent").String())
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		c.Indent = indent
	}

	if cfg.HasSection("shell") {
		c.History = cfg.Section("shell").Key("history").MustString(c.History)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TR069_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("TR069_SCHEMA"); v != "" {
		c.Schema = v
	}
	if v := os.Getenv("TR069_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("TR069_EVENTLOG"); v != "" {
		c.EventLog = v
	}
	if v := os.Getenv("TR069_VERBOSE"); v != "" {
		c.Verbose, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TR069_HISTORY"); v != "" {
		c.History = v
	}
}

// Validate checks values that the tools cannot fix up themselves.
func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if _, err := wire.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// New creates a configuration from defaults, the given file and the
// environment. A missing file is not an error.
func New(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseIndent accepts a number of spaces, "tab" or "none".
func parseIndent(s string) (string, error) {
	switch s {
	case "", "none":
		return "", nil
	case "tab":
		return "\t", nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 16 {
			return "", fmt.Errorf("indent %d out of range [0, 16]", n)
		}
		return fmt.Sprintf("%*s", n, ""), nil
	}
	return "", fmt.Errorf("invalid indent %q", s)
}
