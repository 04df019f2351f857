package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/langswitch/internal/catalog"
)

// SampleCatalogText is a small three-language catalog used across tests
const SampleCatalogText = "en,fr,de\n" +
	"Hello,Bonjour,Hallo\n" +
	"Quit,Quitter,Beenden\n" +
	"Settings,Paramètres,Einstellungen\n"

// ParseCatalog parses catalog text, failing the test on error
func ParseCatalog(t *testing.T, text string) *catalog.Table {
	t.Helper()

	table, err := catalog.Parse(text)
	if err != nil {
		t.Fatalf("Failed to parse test catalog: %v", err)
	}
	return table
}

// WriteCatalogFile writes catalog text into a temp file and returns its path
func WriteCatalogFile(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write test catalog file: %v", err)
	}
	return path
}
