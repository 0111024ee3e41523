package browser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Cookie is one entry of a session storage file. Fields the browser does not
// need (partitionKey and friends) are dropped by the typed decode.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite,omitempty"`
}

// StorageState is the saved browser session: cookies plus whatever origin
// storage was captured alongside them (carried opaquely).
type StorageState struct {
	Cookies []Cookie          `json:"cookies"`
	Origins []json.RawMessage `json:"origins"`
}

// LoadStorageState reads a session file written by save-cookies.
func LoadStorageState(path string) (*StorageState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no session at %q: run save-cookies first", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var state StorageState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding session file %q: %w", path, err)
	}
	return &state, nil
}

// Save writes the session file. Cookies are credentials, hence 0600.
func (s *StorageState) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file %q: %w", path, err)
	}
	return nil
}
