// Package testutil provides shared test helpers for setting up term data
// directories.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lowerpower/www.mycal.net/internal/storage"
)

// TestDataDir creates a temporary term data directory with a storage.Provider.
func TestDataDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dataDir := t.TempDir()
	store, err := storage.NewFS(dataDir)
	if err != nil {
		t.Fatal(err)
	}
	return dataDir, store
}

// WriteTerm writes a term definition file named <slug>.json into dir.
func WriteTerm(t *testing.T, dir, slug string, fields map[string]any) {
	t.Helper()
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, slug+".json"), append(data, '\n'), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TermFields returns a minimal valid term definition that tests can extend.
func TermFields(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"date":        "2025-06-01",
		"description": name + " is a test concept.",
		"links": []map[string]string{
			{"url": "https://blog.mycal.net/" + name + "/", "label": "Origin"},
		},
	}
}
