// Package config loads optional REPL presentation settings from a
// ".golox.yaml" file in the current directory. It never affects Lox
// language semantics (§6.2's REPL behavior is fixed) — only how the REPL
// presents itself.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds REPL presentation knobs. defaultConfig returns the default
// look.
type Config struct {
	// Prompt is the string printed before each REPL line. Defaults to
	// "> " when the file or the key is absent.
	Prompt string `yaml:"prompt"`
	// Color enables the ANSI-colored REPL banner; diagnostics are not
	// colored.
	// Defaults to true when the file is absent.
	Color *bool `yaml:"color"`
	// EchoResults enables the REPL's bare-expression-statement echoing
	// (§4.5.1). Defaults to true; set to false to make the REPL behave
	// like batch mode and only print explicit `print` statements.
	EchoResults bool `yaml:"echo_results"`
}

// defaultConfig is used when no .golox.yaml is present.
func defaultConfig() Config {
	color := true
	return Config{Prompt: "> ", Color: &color, EchoResults: true}
}

// Load reads ".golox.yaml" from the current directory. A missing file is
// not an error: Load returns the default Config.
func Load() (Config, error) {
	data, err := os.ReadFile(".golox.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return defaultConfig(), err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

// ColorEnabled reports whether REPL coloring should be used.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
