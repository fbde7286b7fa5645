package regfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testReg struct {
	Entries []string `json:"entries" yaml:"entries"`
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - one\n  - two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var reg testReg
	if err := Load(path, &reg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reg.Entries) != 2 || reg.Entries[0] != "one" {
		t.Fatalf("Entries = %v", reg.Entries)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.json")
	if err := os.WriteFile(path, []byte(`{"entries":["one"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var reg testReg
	if err := Load(path, &reg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reg.Entries) != 1 || reg.Entries[0] != "one" {
		t.Fatalf("Entries = %v", reg.Entries)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if err := Load("  ", &testReg{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &testReg{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeMalformed(t *testing.T) {
	err := Decode([]byte("entries: [unterminated"), ".yaml", &testReg{})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "YAML") {
		t.Fatalf("error should name the format, got %v", err)
	}
}
