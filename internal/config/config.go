// Package config loads cmd/toon's optional .toonrc.yaml defaults file
// using the project's YAML library, the same one reached for elsewhere
// in the dependency pack for decoding arbitrary YAML documents.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// File is the shape of a .toonrc.yaml document. Every field is optional;
// an absent field leaves the CLI's own flag default in effect.
type File struct {
	Delimiter    string `yaml:"delimiter"`
	Indent       string `yaml:"indent"`
	LengthMarker *bool  `yaml:"lengthMarker"`
	Strict       *bool  `yaml:"strict"`
	LogFormat    string `yaml:"logFormat"`
	LogLevel     string `yaml:"logLevel"`
}

// Load reads and parses the YAML config file at path. A missing file is
// not an error; it returns a zero-value File so callers can apply flag
// defaults unconditionally.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return f, nil
}
