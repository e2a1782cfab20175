package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestRequireMissing(t *testing.T) {
	s := tempStore(t)

	_, err := s.Require()
	if !errors.Is(err, ErrSessionMissing) {
		t.Errorf("Require on empty store = %v, want ErrSessionMissing", err)
	}
}

func TestRequireMissingCustomerID(t *testing.T) {
	s := tempStore(t)
	s.setString(KeyAuthToken, "tok-123")

	_, err := s.Require()
	if !errors.Is(err, ErrSessionMissing) {
		t.Errorf("token without customer id = %v, want ErrSessionMissing", err)
	}
}

func TestSetSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, _ := Open(path)

	if err := s.SetSession("tok-123", "cust-1", "Ayşe", "ayse@example.com"); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	sess, err := reopened.Require()
	if err != nil {
		t.Fatalf("Require: %v", err)
	}
	if sess.Token != "tok-123" || sess.CustomerID != "cust-1" {
		t.Errorf("session = %+v", sess)
	}
}

func TestLegacyAliasMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"auth_token":"legacy-tok","customer_id":"cust-9"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sess, err := s.Require()
	if err != nil {
		t.Fatalf("Require: %v", err)
	}
	if sess.Token != "legacy-tok" || sess.CustomerID != "cust-9" {
		t.Errorf("session = %+v", sess)
	}

	// Canonical keys are written back on read.
	reopened, _ := Open(path)
	if got := reopened.getString([]string{KeyAuthToken}); got != "legacy-tok" {
		t.Errorf("canonical token after migration = %q", got)
	}
	if got := reopened.getString([]string{KeyCustomerID}); got != "cust-9" {
		t.Errorf("canonical customer id after migration = %q", got)
	}
}

func TestClearKeepsSettings(t *testing.T) {
	s := tempStore(t)
	s.SetSession("tok", "cust", "A", "a@example.com")
	s.SetSetting("emailNotifications", "on")

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, err := s.Require(); !errors.Is(err, ErrSessionMissing) {
		t.Error("session should be gone after Clear")
	}
	if got := s.Setting("emailNotifications"); got != "on" {
		t.Errorf("setting lost on Clear, got %q", got)
	}
}

func TestMirrorWritesTimestamp(t *testing.T) {
	s := tempStore(t)

	payload := map[string]int{"total_policies": 2}
	if err := s.Mirror("dashboard_stats", payload); err != nil {
		t.Fatalf("Mirror: %v", err)
	}

	var out map[string]int
	found, err := s.ReadMirror("dashboard_stats", &out)
	if err != nil || !found {
		t.Fatalf("ReadMirror: found=%v err=%v", found, err)
	}
	if out["total_policies"] != 2 {
		t.Errorf("mirror payload = %v", out)
	}
	if ts := s.getString([]string{"dashboard_stats_timestamp"}); ts == "" {
		t.Error("expected dashboard_stats_timestamp to be written")
	}
}

func TestDarkModeLegacyString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"darkMode":"enabled"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !s.DarkMode() {
		t.Error("legacy string darkMode should read as enabled")
	}
}

func TestDarkModeRoundTrip(t *testing.T) {
	s := tempStore(t)

	if s.DarkMode() {
		t.Error("default dark mode should be off")
	}
	if err := s.SetDarkMode(true); err != nil {
		t.Fatalf("SetDarkMode: %v", err)
	}
	if !s.DarkMode() {
		t.Error("dark mode should be on after set")
	}
}
