package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

// isolate points user-level and project-level config at empty temp
// directories so tests never read the developer's real configuration.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "top-bottom", cfg.Orientation)
	assert.Equal(t, "ascii", cfg.Format)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "500ms", cfg.Watch.Debounce)

	d, err := cfg.Watch.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll(".jobviz", 0o755))
	data := "orientation: left-right\nwatch:\n  debounce: 2s\n"
	require.NoError(t, os.WriteFile(ProjectConfigPath(), []byte(data), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "left-right", cfg.Orientation)
	assert.Equal(t, "2s", cfg.Watch.Debounce)
	assert.Equal(t, "ascii", cfg.Format, "unset keys keep their defaults")
}

func TestLoad_JSONProjectConfigFallback(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll(".jobviz", 0o755))
	data := `{"format": "dot"}`
	require.NoError(t, os.WriteFile(ProjectJSONConfigPath(), []byte(data), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dot", cfg.Format)
}

func TestLoad_YAMLPreferredOverJSON(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll(".jobviz", 0o755))
	require.NoError(t, os.WriteFile(ProjectConfigPath(), []byte("format: ascii\n"), 0o644))
	require.NoError(t, os.WriteFile(ProjectJSONConfigPath(), []byte(`{"format": "dot"}`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ascii", cfg.Format, "YAML config wins when both exist")
}

func TestLoad_EnvOverridesProject(t *testing.T) {
	isolate(t)

	require.NoError(t, os.MkdirAll(".jobviz", 0o755))
	require.NoError(t, os.WriteFile(ProjectConfigPath(), []byte("orientation: left-right\n"), 0o644))

	t.Setenv("JOBVIZ_ORIENTATION", "right-left")
	t.Setenv("JOBVIZ_WATCH_DEBOUNCE", "1s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "right-left", cfg.Orientation)
	assert.Equal(t, "1s", cfg.Watch.Debounce)
}

func TestLoad_CustomPath(t *testing.T) {
	isolate(t)

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("color: never\n"), 0o644))

	cfg, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)

	jsonPath := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"color": "always"}`), 0o644))

	cfg, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		yaml    string
		wantMsg string
	}{
		"bad orientation": {
			yaml:    "orientation: diagonal\n",
			wantMsg: "invalid orientation",
		},
		"bad format": {
			yaml:    "format: svg\n",
			wantMsg: "invalid format",
		},
		"bad color": {
			yaml:    "color: sometimes\n",
			wantMsg: "invalid color",
		},
		"bad debounce": {
			yaml:    "watch:\n  debounce: soon\n",
			wantMsg: "invalid watch.debounce",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			isolate(t)

			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetDefaultConfigTemplate(t *testing.T) {
	t.Parallel()

	tmpl := GetDefaultConfigTemplate()
	assert.Contains(t, tmpl, "orientation: top-bottom")
	assert.Contains(t, tmpl, "format: ascii")
	assert.Contains(t, tmpl, "color: auto")
	assert.Contains(t, tmpl, "debounce: 500ms")
}
