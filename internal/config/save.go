package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = "# stairgen configuration\n"

// Save writes the config to the user config directory, where Load finds it
// when no explicit path is given.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, append([]byte(fileHeader), data...), 0644)
}
