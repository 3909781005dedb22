package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Load reads a declaration file into a Config. The format is picked by
// extension: .yaml/.yml decode as YAML, anything else as JSON.
func Load(path string) (Config, error) {
	cfg := Config{}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open declaration file: %w", err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&cfg)
	default:
		err = json.NewDecoder(f).Decode(&cfg)
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return cfg, nil
}
