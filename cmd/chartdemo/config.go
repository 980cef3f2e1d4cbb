package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig is the optional YAML configuration file accepted via
// --config. Fields the file leaves out keep the values of
// defaultRunConfig (bundled grammar, features on, top category "S"),
// so running without --config is always valid.
type runConfig struct {
	// GrammarFile and LexiconFile override the bundled English demo
	// grammar (pkg/chartparse/examples) with a grammar/lexicon pair
	// read from disk, in the text format of pkg/chartparse/text.
	GrammarFile string `yaml:"grammar_file"`
	LexiconFile string `yaml:"lexicon_file"`

	// Features selects feature-based agreement checking (compat)
	// versus bare category-name matching.
	Features bool `yaml:"features"`

	// TopCategory is the solution category requested from the chart;
	// defaults to "S" when empty.
	TopCategory string `yaml:"top_category"`
}

func defaultRunConfig() runConfig {
	return runConfig{Features: true, TopCategory: "S"}
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
