package regression

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes the fitted model to path as YAML. The artifact is
// written once and read many times by report generation.
func Save(path string, res *Result) error {
	out, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing model to %q: %w", path, err)
	}
	return nil
}

// Load reads a model artifact previously written by Save.
func Load(path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model from %q: %w", path, err)
	}
	var res Result
	if err := yaml.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return &res, nil
}
