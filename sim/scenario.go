// Loads declarative scenario files so a full run configuration can be kept
// under version control next to the results it produced.

package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and parses a YAML scenario file into a Config.
// Uses strict parsing: unrecognized keys (typos) are rejected.
// The caller validates the result before running.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading scenario: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing scenario: %w", err)
	}
	return cfg, nil
}
