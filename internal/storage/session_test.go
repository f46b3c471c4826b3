package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	s, err := NewSessionStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Token() != "" {
		t.Fatalf("fresh store token = %q, want empty", s.Token())
	}

	if err := s.Save("tok-123"); err != nil {
		t.Fatal(err)
	}
	if s.Token() != "tok-123" {
		t.Fatalf("token = %q, want tok-123", s.Token())
	}

	// A new store over the same file picks the token up again.
	reopened, err := NewSessionStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Token() != "tok-123" {
		t.Fatalf("reopened token = %q, want tok-123", reopened.Token())
	}
}

func TestSessionStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	s, err := NewSessionStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("tok"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.Token() != "" {
		t.Fatalf("token after clear = %q", s.Token())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("session file should be removed, stat err = %v", err)
	}
	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
