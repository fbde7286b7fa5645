// Package regfile loads the small YAML/JSON registry files the watchdog is
// configured from (the watchlist and the publisher set).
package regfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the file at path and decodes it into out based on the file
// extension. An unknown extension falls back to trying YAML, which also
// accepts JSON input.
func Load(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("registry file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read registry file: %w", err)
	}

	return Decode(raw, filepath.Ext(path), out)
}

// Decode unmarshals registry data into out. YAML is a superset of JSON, so a
// single decoder covers both formats; the extension only sharpens the error
// message.
func Decode(data []byte, ext string, out any) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		format := "registry"
		switch strings.ToLower(strings.TrimSpace(ext)) {
		case ".yaml", ".yml":
			format = "YAML registry"
		case ".json":
			format = "JSON registry"
		}
		return fmt.Errorf("decode %s file: %w", format, err)
	}
	return nil
}
