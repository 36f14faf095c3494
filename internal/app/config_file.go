package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/stayscan/stayscan/internal/extract"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags, and the selectors block lets a markup
// change on the source site be absorbed without a rebuild.
type FileConfig struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	Room struct {
		First string `yaml:"first" json:"first"`
	} `yaml:"room" json:"room"`

	Selectors *extract.Selectors `yaml:"selectors" json:"selectors"`

	NoTable bool `yaml:"noTable" json:"noTable"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults that flag parsing installs; file config only overrides values the
// flags left at these.
const (
	InputDefault  = "data/listing.html"
	OutputDefault = "data/availability.csv"
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or at their flag defaults. Flags should already
// have been parsed; this lets file config supply defaults while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == InputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputCSV == "" || cfg.OutputCSV == OutputDefault) && fc.Output != "" {
		cfg.OutputCSV = fc.Output
	}
	if cfg.OutputPDF == "" && fc.OutputPDF != "" {
		cfg.OutputPDF = fc.OutputPDF
	}
	if cfg.FirstRoomType == "" && fc.Room.First != "" {
		cfg.FirstRoomType = fc.Room.First
	}
	if fc.Selectors != nil && cfg.Selectors == (extract.Selectors{}) {
		cfg.Selectors = *fc.Selectors
	}
	if !cfg.NoTable && fc.NoTable {
		cfg.NoTable = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
