// Package session persists the portal's local sign-in state
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
)

// ErrSessionMissing is returned when no usable sign-in state exists
var ErrSessionMissing = errors.New("no active session")

// Canonical keys. Older releases wrote the alias keys; reads accept
// them and migrate to the canonical names.
const (
	KeyAuthToken  = "authToken"
	KeyCustomerID = "customerId"
)

var (
	tokenAliases      = []string{KeyAuthToken, "token", "auth_token"}
	customerIDAliases = []string{KeyCustomerID, "customer_id"}
)

// Session is the typed sign-in state the rest of the portal consumes
type Session struct {
	Token      string
	CustomerID string
}

// Store is a file-backed key-value store mirroring the portal's
// persisted browser state.
type Store struct {
	path   string
	values map[string]json.RawMessage
}

// DefaultPath places the session file under the user config directory
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config dir: %w", err)
	}
	return filepath.Join(base, "daskplus", "session.json"), nil
}

// Open loads the store at path, starting empty when the file is absent
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]json.RawMessage)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read session file: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("corrupt session file: %w", err)
	}
	return s, nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("cannot create session dir: %w", err)
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write session file: %w", err)
	}
	return nil
}

// getString reads a key through its alias chain
func (s *Store) getString(aliases []string) string {
	for _, key := range aliases {
		if raw, ok := s.values[key]; ok {
			var v string
			if err := json.Unmarshal(raw, &v); err == nil && v != "" {
				return v
			}
		}
	}
	return ""
}

func (s *Store) setString(key, value string) {
	raw, _ := json.Marshal(value)
	s.values[key] = raw
}

// Require returns the current session. Legacy alias keys are migrated
// to the canonical names on a successful read. Missing token or
// customer ID yields ErrSessionMissing before any request is made.
func (s *Store) Require() (Session, error) {
	token := s.getString(tokenAliases)
	customerID := s.getString(customerIDAliases)
	if token == "" || customerID == "" {
		return Session{}, ErrSessionMissing
	}

	// Migrate aliases forward.
	if s.getString([]string{KeyAuthToken}) == "" || s.getString([]string{KeyCustomerID}) == "" {
		s.setString(KeyAuthToken, token)
		s.setString(KeyCustomerID, customerID)
		if err := s.save(); err != nil {
			return Session{}, err
		}
	}

	return Session{Token: token, CustomerID: customerID}, nil
}

// SetSession persists a fresh sign-in. The alias keys are written too
// so older portal builds sharing the file keep working.
func (s *Store) SetSession(token, customerID, name, email string) error {
	s.setString(KeyAuthToken, token)
	s.setString("token", token)
	s.setString("auth_token", token)
	s.setString(KeyCustomerID, customerID)
	s.setString("customer_id", customerID)
	s.setString("customerName", name)
	s.setString("customerEmail", email)
	return s.save()
}

// Clear removes the sign-in keys but keeps settings and mirrors
func (s *Store) Clear() error {
	for _, key := range append(append([]string{}, tokenAliases...), customerIDAliases...) {
		delete(s.values, key)
	}
	delete(s.values, "customerName")
	delete(s.values, "customerEmail")
	return s.save()
}

// Mirror stores a fetched payload under key together with a
// <key>_timestamp written at mirror time. The timestamp is write-only;
// no expiry is applied on read.
func (s *Store) Mirror(key string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	s.values[key] = raw
	s.setString(key+"_timestamp", time.Now().UTC().Format(time.RFC3339))
	return s.save()
}

// ReadMirror loads a mirrored payload into dest, reporting presence
func (s *Store) ReadMirror(key string, dest interface{}) (bool, error) {
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetSetting persists a named preference under setting_<name>
func (s *Store) SetSetting(name, value string) error {
	s.setString("setting_"+name, value)
	return s.save()
}

// Setting reads a named preference
func (s *Store) Setting(name string) string {
	return s.getString([]string{"setting_" + name})
}

// SetDarkMode persists the dark mode flag
func (s *Store) SetDarkMode(on bool) error {
	raw, _ := json.Marshal(on)
	s.values["darkMode"] = raw
	return s.save()
}

// DarkMode reads the dark mode flag
func (s *Store) DarkMode() bool {
	raw, ok := s.values["darkMode"]
	if !ok {
		return false
	}
	var on bool
	if err := json.Unmarshal(raw, &on); err != nil {
		// Older builds stored the string "enabled".
		var v string
		if err := json.Unmarshal(raw, &v); err == nil {
			return v == "enabled" || v == "true"
		}
		return false
	}
	return on
}
