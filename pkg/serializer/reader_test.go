package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.json", FormatJSON},
		{"CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"mystery.bin", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestReader_DeserializeJSON(t *testing.T) {
	reader, err := NewReader(FormatJSON, strings.NewReader(`{"name":"alpha","value":7}`))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var rec testRecord
	if err := reader.Deserialize(&rec); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if rec.Name != "alpha" || rec.Value != 7 {
		t.Errorf("Unexpected record: %+v", rec)
	}
}

func TestReader_DeserializeYAML(t *testing.T) {
	reader, err := NewReader(FormatYAML, strings.NewReader("name: alpha\nvalue: 7\n"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var rec testRecord
	if err := reader.Deserialize(&rec); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if rec.Name != "alpha" || rec.Value != 7 {
		t.Errorf("Unexpected record: %+v", rec)
	}
}

func TestNewReaderRejectsTable(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("x")); err == nil {
		t.Fatal("Expected error for table format")
	}
	if _, err := NewReader(Format("bogus"), strings.NewReader("x")); err == nil {
		t.Fatal("Expected error for unknown format")
	}
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.yaml")
	if err := os.WriteFile(path, []byte("name: beta\nvalue: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reader, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	defer reader.Close()

	var rec testRecord
	if err := reader.Deserialize(&rec); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if rec.Name != "beta" || rec.Value != 9 {
		t.Errorf("Unexpected record: %+v", rec)
	}

	if err := reader.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestNewFileReaderMissing(t *testing.T) {
	if _, err := NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	if err := os.WriteFile(path, []byte(`{"name":"gamma","value":11}`), 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := FromFile[testRecord](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if rec.Name != "gamma" || rec.Value != 11 {
		t.Errorf("Unexpected record: %+v", rec)
	}

	if _, err := FromFile[testRecord](filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestNilReader(t *testing.T) {
	var r *Reader
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}
	if err := r.Deserialize(&struct{}{}); err == nil {
		t.Error("Expected error deserializing with nil reader")
	}
}
