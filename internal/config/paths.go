package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the XDG-compliant user config path
// (~/.config/jobviz/config.yml, or $XDG_CONFIG_HOME/jobviz/config.yml).
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jobviz", "config.yml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jobviz", "config.yml"), nil
}

// ProjectConfigPath returns the project-level YAML config path.
func ProjectConfigPath() string {
	return filepath.Join(".jobviz", "config.yml")
}

// ProjectJSONConfigPath returns the project-level JSON config path, accepted
// as an alternative when no YAML config exists.
func ProjectJSONConfigPath() string {
	return filepath.Join(".jobviz", "config.json")
}

// fileExists checks if a regular file exists at path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
