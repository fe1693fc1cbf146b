/*
File    : loxgo/config/config.go
*/

// Package config loads loxgo's optional run-time settings from a
// `.loxgorc.yaml` file, the same way the rest of the stack favors a
// library over hand-rolled parsing: yaml.v3 decodes directly into a
// tagged struct instead of a bespoke key=value reader.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a loxgo run can be customized with. Every
// field has a zero-value default that matches the interpreter's
// out-of-the-box behavior, so a missing or partial file is never an
// error.
type Config struct {
	// Prompt is the string shown before each REPL line.
	Prompt string `yaml:"prompt"`
	// NoColor disables ANSI color in diagnostics and REPL output, for
	// terminals or CI logs that don't render escape codes well.
	NoColor bool `yaml:"no_color"`
	// HistoryFile is decoded from the file but not read by the REPL: line
	// history is kept in memory for one session only and is not persisted.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Prompt:      "lox> ",
		NoColor:     false,
		HistoryFile: "",
	}
}

// Load reads and decodes path, layering it over Default() so a file that
// only sets one field leaves the rest at their defaults. A missing file
// is not an error — it just means Default() is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefaultFile loads `.loxgorc.yaml` from the current directory.
func LoadDefaultFile() (Config, error) {
	return Load(".loxgorc.yaml")
}
