package setting

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults returns the settings a fresh installation starts with.
func Defaults() ([]CreateSettingRequest, error) {
	return parseDefaults(defaultsYAML)
}

func parseDefaults(raw []byte) ([]CreateSettingRequest, error) {
	var out []CreateSettingRequest
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("setting: parse defaults: %w", err)
	}
	for i, d := range out {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("setting: default %d (%s): %w", i, d.Key, err)
		}
	}
	return out, nil
}

// DefaultsResult lists the keys InitializeDefaults touched.
type DefaultsResult struct {
	Created  []string `json:"created"`
	Restored []string `json:"restored"`
}
