package cli

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
)

// runJSON executes a subcommand with serialized output routed to a temp
// file and unmarshals the JSON result into out. Flags in rest must precede
// positional arguments.
func runJSON(t *testing.T, out any, sub string, rest ...string) error {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.json")
	args := append([]string{"csemver", sub, "--output", path}, rest...)

	if err := rootCmd().Run(t.Context(), args); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read command output: %v", err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		t.Fatalf("failed to unmarshal command output %q: %v", content, err)
	}
	return nil
}
