package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/latticeflow/latticeflow/lbm"
)

// LoadCase reads a YAML case file into a Config. Fields absent from the file
// keep the built-in defaults, so a case only needs to state what it changes.
func LoadCase(path string) (lbm.Config, error) {
	cfg := lbm.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading case file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing case file: %w", err)
	}
	return cfg, nil
}
