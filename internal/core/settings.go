package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the state of the last session, restored on the next one.
type Settings struct {
	Content    string          `json:"content"`
	Tags       string          `json:"tags"`
	Delimiters map[string]bool `json:"delimiters"`
	Deck       string          `json:"deck"`
	NoteType   string          `json:"note_type"`
}

// LoadSettings reads the settings file. Empty settings are returned when the file does not exist.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{
		Delimiters: make(map[string]bool),
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if settings.Delimiters == nil {
		settings.Delimiters = make(map[string]bool)
	}
	return settings, nil
}

// Save writes the settings file.
func (s *Settings) Save(path string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DelimiterSet returns the delimiters enabled in the settings.
// Unknown names are ignored.
func (s *Settings) DelimiterSet() *DelimiterSet {
	set, _ := NewDelimiterSet()
	for name, enabled := range s.Delimiters {
		if enabled {
			_ = set.Enable(name)
		}
	}
	return set
}

// SetDelimiterSet saves the state of every delimiter.
func (s *Settings) SetDelimiterSet(set *DelimiterSet) {
	s.Delimiters = set.States()
}
