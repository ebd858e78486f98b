package cli

import "testing"

func TestCICmd(t *testing.T) {
	var result ciResult
	err := runJSON(t, &result, "ci",
		"--base", "1.2.3", "--index", "AB12", "--name", "BLD")
	if err != nil {
		t.Fatalf("ci failed: %v", err)
	}

	if result.Canonical != "1.2.4--ci.AB12.BLD" {
		t.Errorf("Canonical = %q", result.Canonical)
	}
	if result.Base != "1.2.3" {
		t.Errorf("Base = %q", result.Base)
	}
}

func TestCICmdZeroBase(t *testing.T) {
	var result ciResult
	err := runJSON(t, &result, "ci",
		"--base", "0.0.0", "--index", "42", "--name", "local")
	if err != nil {
		t.Fatalf("ci failed: %v", err)
	}
	if result.Canonical != "0.0.0--ci.42.local" {
		t.Errorf("Canonical = %q", result.Canonical)
	}
}

func TestCICmdStrictBuildMeta(t *testing.T) {
	var result ciResult
	err := runJSON(t, &result, "ci",
		"--base", "1.2.3+meta", "--index", "1", "--name", "b")
	if err != nil {
		t.Fatalf("ci failed: %v", err)
	}

	err = runJSON(t, &result, "ci", "--strict-build-meta",
		"--base", "1.2.3+meta", "--index", "1", "--name", "b")
	if err == nil {
		t.Error("expected error under strict build-metadata policy")
	}
}

func TestCICmdErrors(t *testing.T) {
	var out map[string]any
	err := runJSON(t, &out, "ci",
		"--base", "not-a-version", "--index", "1", "--name", "b")
	if err == nil {
		t.Error("expected error for invalid base")
	}

	err = runJSON(t, &out, "ci",
		"--base", "1.2.3", "--index", "a b", "--name", "b")
	if err == nil {
		t.Error("expected error for invalid index")
	}
}
