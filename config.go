package goidl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/golangsnmp/goidl/internal/types"
)

// Config holds the settings a goidl.yaml file can carry.
type Config struct {
	// Extensions lists the file extensions directory sources pick up.
	Extensions []string `yaml:"extensions"`
	// Ignore lists warning codes to suppress. Supports a leading or
	// trailing * wildcard.
	Ignore []string `yaml:"ignore"`
	// WarningsAsErrors makes Finish fail when any warning is reported.
	WarningsAsErrors bool `yaml:"warnings-as-errors"`
	// CacheDir is where the CLI writes definitions.yaml. Empty disables
	// the summary.
	CacheDir string `yaml:"cache-dir"`
	// Jobs bounds parallel parsing. Zero means runtime.NumCPU.
	Jobs int `yaml:"jobs"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Extensions: DefaultExtensions,
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs error
	if c.Jobs < 0 {
		errs = multierr.Append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = multierr.Append(errs, fmt.Errorf("extension %q must start with a dot", ext))
		}
	}
	for _, code := range c.Ignore {
		if strings.Contains(code, "*") {
			continue
		}
		if !types.IsKnownCode(code) {
			errs = multierr.Append(errs, fmt.Errorf("unknown diagnostic code %q in ignore list", code))
		}
	}
	return errs
}

// WarningFilter returns the filter the Ignore list describes.
func (c Config) WarningFilter() types.WarningFilter {
	return types.WarningFilter{Ignore: c.Ignore}
}
