package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// configFileName is the settings file looked up in the user config dir
// when no explicit path is given.
const configFileName = "filesift.yaml"

// DefaultPath returns the default settings file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "filesift", configFileName), nil
}

// Load returns the effective settings from the given path: defaults
// overlaid with any on-disk overrides. A missing file yields defaults.
func Load(path string) (Settings, error) {
	settings := defaultSettings

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return settings, nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}

	// Unmarshal into a generic map so only keys actually present in the
	// file override the defaults
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings, err
	}
	if v, ok := m["preview_rows"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.PreviewRows = vi
		}
	}
	if v, ok := m["output_dir"]; ok {
		if vs, oks := v.(string); oks {
			settings.OutputDir = vs
		}
	}
	if v, ok := m["no_color"]; ok {
		if vb, okb := v.(bool); okb {
			settings.NoColor = vb
		}
	}
	if v, ok := m["no_header_row"]; ok {
		if vb, okb := v.(bool); okb {
			settings.NoHeaderRow = vb
		}
	}
	if v, ok := m["instance_id"]; ok {
		if vs, oks := v.(string); oks {
			settings.InstanceID = vs
		}
	}

	return settings, nil
}

// Save writes the settings to the given path, creating parent directories
// as needed.
func Save(path string, s Settings) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// EnsureInstanceID generates and saves a unique instance ID if one
// doesn't exist yet. Returns the effective settings.
func EnsureInstanceID(path string) (Settings, error) {
	s, err := Load(path)
	if err != nil {
		return s, err
	}
	if strings.TrimSpace(s.InstanceID) != "" {
		return s, nil
	}
	s.InstanceID = uuid.New().String()
	if err := Save(path, s); err != nil {
		return s, err
	}
	return s, nil
}
