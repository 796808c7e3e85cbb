// Package config reads the optional calc configuration file.
// Settings are only ever read; calc never writes them back.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/takoeight0821/calc/parser"
)

// RelPath is the location of the config file relative to the XDG config directories.
var RelPath = filepath.Join("calc", "config.yaml")

type Config struct {
	// Precision is the number of digits after the decimal point; -1 prints the shortest exact form.
	Precision int `yaml:"precision"`
	// MaxDepth limits formula nesting; 0 disables the limit.
	MaxDepth int `yaml:"max_depth"`
	// ShowExpr prints the parenthesized formula next to each result.
	ShowExpr bool `yaml:"show_expr"`
	// History keeps the REPL history between sessions.
	History bool `yaml:"history"`
}

func Default() Config {
	return Config{
		Precision: -1,
		MaxDepth:  parser.DefaultMaxDepth,
		ShowExpr:  false,
		History:   true,
	}
}

type InvalidValueError struct {
	Field string
	Value int
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.Precision < -1 {
		return InvalidValueError{Field: "precision", Value: c.Precision}
	}
	if c.MaxDepth < 0 {
		return InvalidValueError{Field: "max_depth", Value: c.MaxDepth}
	}
	return nil
}

// ParserOptions returns the parser options implied by c.
func (c Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.MaxDepth)}
}

// Decode reads YAML from r on top of the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the config file from the XDG config directories.
// A missing file yields the defaults.
func LoadDefault() (Config, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// HistoryPath is where the REPL keeps its history.
func HistoryPath() string {
	return filepath.Join(xdg.DataHome, "calc", ".calc_history")
}
