// Package testutil provides shared test helpers for setting up databases and
// services.
package testutil

import (
	"os"
	"testing"

	"github.com/calder/jot/internal/noteservice"
	"github.com/calder/jot/internal/notestore"
)

// TestDB creates a temporary SQLite note store that is automatically cleaned
// up.
func TestDB(t *testing.T) *notestore.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "jot-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := notestore.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestService creates a note service over a temporary store.
func TestService(t *testing.T) *noteservice.Service {
	t.Helper()
	return noteservice.NewService(TestDB(t))
}
