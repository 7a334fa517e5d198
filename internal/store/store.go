// Package store persists the two user-facing settings the page keeps between
// runs: the selected language code and its display name.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const settingsFile = "settings.json"

// Settings mirrors the two persisted keys.
type Settings struct {
	SelectedLanguage     string `json:"selectedLanguage"`
	SelectedLanguageName string `json:"selectedLanguageName"`
}

// Store reads and writes the settings file under a base directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. DefaultDir picks the platform location.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the per-user config directory for the app.
func DefaultDir(app string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, app), nil
}

// Load reads the persisted settings. A missing file is not an error: the
// zero Settings is returned and the caller applies its defaults.
func (s *Store) Load() (Settings, error) {
	var out Settings
	data, err := os.ReadFile(filepath.Join(s.dir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// Save writes the settings, creating the directory on first use.
func (s *Store) Save(set Settings) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, settingsFile), data, 0o644)
}
