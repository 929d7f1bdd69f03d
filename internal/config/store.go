package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the JSON file at path into cfg. If the file does not exist,
// cfg is unchanged and loaded is false.
func Load(path string, cfg *Config) (loaded bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return true, nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg *Config) error {
	return WriteJSON(path, cfg, true)
}

// WriteJSON marshals v and writes it atomically using a temp file + rename.
func WriteJSON(path string, v any, indent bool) error {
	data, err := Marshal(v, indent)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Marshal encodes v as one newline-terminated JSON document.
func Marshal(v any, indent bool) ([]byte, error) {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(data, '\n'), nil
}
