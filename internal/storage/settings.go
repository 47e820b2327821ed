package storage

import "encoding/json"

// Settings holds persisted user preferences.
type Settings struct {
	PageSize int `json:"pageSize"`
}

// DefaultSettings returns the default preferences.
func DefaultSettings() Settings {
	return Settings{PageSize: 24}
}

// LoadSettings reads settings from the backend, applying defaults for
// missing or unreadable values.
func LoadSettings(b Backend) Settings {
	defaults := DefaultSettings()

	data, err := b.Read(KeySettings)
	if err != nil || data == nil {
		return defaults
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return defaults
	}
	if s.PageSize <= 0 {
		s.PageSize = defaults.PageSize
	}
	return s
}

// SaveSettings writes settings to the backend.
func SaveSettings(b Backend, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return b.Write(KeySettings, data)
}
