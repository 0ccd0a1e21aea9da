// Package config loads verbex settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/verbex/internal/matcher"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".verbex.yaml"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	// FormatYAML represents YAML format (default)
	FormatYAML
	// FormatTOML represents TOML format
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Config holds the settings shared by the verbex commands. Command line
// flags override the values loaded here.
type Config struct {
	Name     string   `yaml:"name" toml:"name"`
	Package  string   `yaml:"package" toml:"package"`
	Output   string   `yaml:"output" toml:"output"`
	Engine   string   `yaml:"engine" toml:"engine"`
	Verbose  bool     `yaml:"verbose" toml:"verbose"`
	NoColor  bool     `yaml:"no_color" toml:"no_color"`
	TestFile bool     `yaml:"test_file" toml:"test_file"`
	Inputs   []string `yaml:"inputs,omitempty" toml:"inputs,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Name:    "Expr",
		Package: "main",
		Engine:  string(matcher.EngineAuto),
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if strings.TrimSpace(c.Package) == "" {
		return errors.New("package cannot be empty")
	}
	if _, err := matcher.ParseEngine(c.Engine); err != nil {
		return err
	}
	return nil
}

// DetectFormat returns the format implied by the extension of path.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads the configuration at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path, or DefaultFile when path is empty. A missing
// DefaultFile yields Default.
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(DefaultFile)
}

// Parse decodes data in the given format on top of Default.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML, FormatAuto:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format: %s", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes c in the given format.
func Marshal(c Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML, FormatAuto:
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Write stores c at path, picking the format from the extension.
func Write(path string, c Config) error {
	if path == "" {
		path = DefaultFile
	}

	d, err := Marshal(c, DetectFormat(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, d, 0644)
}
