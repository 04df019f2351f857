package processor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/langswitch/internal/catalog"
	"codeberg.org/snonux/langswitch/internal/cli"
	"codeberg.org/snonux/langswitch/internal/testutil"
)

// newTestProcessor creates a processor with captured output streams
func newTestProcessor(flags *cli.Flags) (*Processor, *bytes.Buffer, *bytes.Buffer) {
	p := NewProcessor(flags)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	p.out = out
	p.errOut = errOut
	return p, out, errOut
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.out == nil || p.errOut == nil {
		t.Error("Output streams not initialized")
	}
}

func TestLoadCatalog(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, testutil.SampleCatalogText)
	p, _, _ := newTestProcessor(flags)

	table, err := p.LoadCatalog(nil)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if table.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", table.Rows())
	}
}

func TestLoadCatalog_PositionalWins(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, "en\nfrom flag\n")
	positional := testutil.WriteCatalogFile(t, "en,fr\nfrom arg,par arg\n")
	p, _, _ := newTestProcessor(flags)

	table, err := p.LoadCatalog([]string{positional})
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(table.Languages()) != 2 {
		t.Errorf("Languages = %v, want the positional catalog", table.Languages())
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*cli.Flags, *testing.T)
		wantErr error
	}{
		{
			name:  "no catalog given",
			setup: func(f *cli.Flags, t *testing.T) {},
		},
		{
			name: "missing file",
			setup: func(f *cli.Flags, t *testing.T) {
				f.CatalogFile = filepath.Join(t.TempDir(), "nope.csv")
			},
		},
		{
			name: "empty file",
			setup: func(f *cli.Flags, t *testing.T) {
				f.CatalogFile = testutil.WriteCatalogFile(t, "")
			},
			wantErr: catalog.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cli.NewFlags()
			tt.setup(flags, t)
			p, _, _ := newTestProcessor(flags)

			_, err := p.LoadCatalog(nil)
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultLanguage(t *testing.T) {
	flags := cli.NewFlags()
	p, _, _ := newTestProcessor(flags)
	table := testutil.ParseCatalog(t, testutil.SampleCatalogText)

	// Falls back to the first catalog language
	if got := p.DefaultLanguage(table); got != "en" {
		t.Errorf("DefaultLanguage = %q, want en", got)
	}

	flags.Language = "de"
	if got := p.DefaultLanguage(table); got != "de" {
		t.Errorf("DefaultLanguage = %q, want de", got)
	}
}

func TestRun_List(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, "en,fr,x-custom\nHello,Bonjour,Zzz\n")
	flags.List = true
	p, out, _ := newTestProcessor(flags)

	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Got %d lines, want 3: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "en\t") || !strings.Contains(lines[0], "English") {
		t.Errorf("Line 0 = %q, want en with English display name", lines[0])
	}
	if !strings.HasPrefix(lines[1], "fr\t") || !strings.Contains(lines[1], "French") {
		t.Errorf("Line 1 = %q, want fr with French display name", lines[1])
	}
}

func TestRun_Translate(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, testutil.SampleCatalogText)
	flags.Translate = "Hello"
	flags.To = "fr"
	p, out, _ := newTestProcessor(flags)

	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Bonjour" {
		t.Errorf("Output = %q, want Bonjour", got)
	}
}

func TestRun_Translate_NoTarget(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, testutil.SampleCatalogText)
	flags.Translate = "Hello"
	p, _, _ := newTestProcessor(flags)

	if err := p.Run(nil); err == nil {
		t.Error("Expected error for missing --to")
	}
}

func TestRun_Batch(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, testutil.SampleCatalogText)
	flags.To = "de"

	batchPath := filepath.Join(t.TempDir(), "phrases.txt")
	if err := os.WriteFile(batchPath, []byte("Hello\nnot in catalog\nQuit\n"), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}
	flags.BatchFile = batchPath

	p, out, errOut := newTestProcessor(flags)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// The failing middle phrase must not abort the batch
	want := "Hallo\nBeenden\n"
	if out.String() != want {
		t.Errorf("Output = %q, want %q", out.String(), want)
	}
	if !strings.Contains(errOut.String(), "1 skipped") {
		t.Errorf("Expected skip count in warnings, got: %q", errOut.String())
	}
}

func TestRun_Check(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, "en,notalanguagetag\n\"a, b\",ok\n")
	flags.Check = true
	p, out, _ := newTestProcessor(flags)

	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "Languages: 2, rows: 1") {
		t.Errorf("Missing statistics in report: %q", report)
	}
	if !strings.Contains(report, "notalanguagetag") {
		t.Errorf("Missing tag warning in report: %q", report)
	}
	if !strings.Contains(report, "will not survive serialization") {
		t.Errorf("Missing round-trip warning in report: %q", report)
	}
}

func TestRun_Check_Clean(t *testing.T) {
	flags := cli.NewFlags()
	flags.CatalogFile = testutil.WriteCatalogFile(t, "en,fr\nHello,Bonjour\n")
	flags.Check = true
	p, out, _ := newTestProcessor(flags)

	if err := p.Run(nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "No problems found") {
		t.Errorf("Expected clean report, got: %q", out.String())
	}
}

func TestRun_ExportImportDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	exportFlags := cli.NewFlags()
	exportFlags.CatalogFile = testutil.WriteCatalogFile(t, "en,fr\nHello,Bonjour\n")
	exportFlags.ExportDB = dbPath
	p, _, _ := newTestProcessor(exportFlags)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Export run failed: %v", err)
	}

	importFlags := cli.NewFlags()
	importFlags.ImportDB = dbPath
	p, out, _ := newTestProcessor(importFlags)
	if err := p.Run(nil); err != nil {
		t.Fatalf("Import run failed: %v", err)
	}

	want := "en,fr\nHello,Bonjour\n"
	if out.String() != want {
		t.Errorf("Imported catalog = %q, want %q", out.String(), want)
	}
}

func TestHasAction(t *testing.T) {
	flags := cli.NewFlags()
	p, _, _ := newTestProcessor(flags)
	if p.HasAction() {
		t.Error("HasAction = true for empty flags")
	}

	flags.List = true
	if !p.HasAction() {
		t.Error("HasAction = false with --list")
	}
}
