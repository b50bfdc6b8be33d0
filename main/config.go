package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoggingConfiguration controls driver log output.
type LoggingConfiguration struct {
	Verbose bool   `toml:"verbose"`
	Format  string `toml:"format"` // "console" or "json"
}

// InputConfiguration controls the stdin collaborator.
type InputConfiguration struct {
	MaxLineBytes int `toml:"max_line_bytes"` // 0 means the library ceiling
}

// TransformConfiguration names the default transform chain applied by the
// demo command to each input line.
type TransformConfiguration struct {
	Chain []string `toml:"chain"`
}

// Configuration is the root of the demo driver's TOML config.
type Configuration struct {
	Logging   LoggingConfiguration   `toml:"logging"`
	Input     InputConfiguration     `toml:"input"`
	Transform TransformConfiguration `toml:"transform"`
}

var config = &Configuration{
	Logging: LoggingConfiguration{
		Verbose: false,
		Format:  "console",
	},
	Input: InputConfiguration{
		MaxLineBytes: 0,
	},
	Transform: TransformConfiguration{
		Chain: []string{"title"},
	},
}

// loadConfig reads the TOML file at path into the defaults above. An empty
// path keeps the defaults; a missing file at an explicit path is an error.
func loadConfig(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
