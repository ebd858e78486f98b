package semver

import (
	"errors"
	"strings"
	"testing"

	"lukechampine.com/uint128"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		major uint64
		minor uint64
		patch uint64
		pre   []string
		build []string
	}{
		{
			name:  "release",
			input: "1.2.3",
			major: 1, minor: 2, patch: 3,
		},
		{
			name:  "zero version",
			input: "0.0.0",
			major: 0, minor: 0, patch: 0,
		},
		{
			name:  "single prerelease identifier",
			input: "1.0.0-alpha",
			major: 1,
			pre:   []string{"alpha"},
		},
		{
			name:  "numeric prerelease identifier",
			input: "1.0.0-alpha.1",
			major: 1,
			pre:   []string{"alpha", "1"},
		},
		{
			name:  "zero numeric prerelease identifier",
			input: "1.0.0-0",
			major: 1,
			pre:   []string{"0"},
		},
		{
			name:  "hyphenated prerelease identifier",
			input: "1.0.0-x-y-z.--",
			major: 1,
			pre:   []string{"x-y-z", "--"},
		},
		{
			name:  "leading hyphen prerelease identifier",
			input: "1.2.4--ci.BLD.123",
			major: 1, minor: 2, patch: 4,
			pre: []string{"-ci", "BLD", "123"},
		},
		{
			name:  "build metadata only",
			input: "1.2.3+build.5",
			major: 1, minor: 2, patch: 3,
			build: []string{"build", "5"},
		},
		{
			name:  "build metadata with leading zeros",
			input: "1.2.3+001.02",
			major: 1, minor: 2, patch: 3,
			build: []string{"001", "02"},
		},
		{
			name:  "prerelease and build metadata",
			input: "1.2.3-beta.11+exp.sha.5114f85",
			major: 1, minor: 2, patch: 3,
			pre:   []string{"beta", "11"},
			build: []string{"exp", "sha", "5114f85"},
		},
		{
			name:  "large components",
			input: "99999.49999.9999",
			major: 99999, minor: 49999, patch: 9999,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input, CaseSensitive)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !v.Major.Equals64(tt.major) || !v.Minor.Equals64(tt.minor) || !v.Patch.Equals64(tt.patch) {
				t.Errorf("core: got %s.%s.%s, want %d.%d.%d",
					v.Major, v.Minor, v.Patch, tt.major, tt.minor, tt.patch)
			}
			pre := v.PreRelease()
			if len(pre) != len(tt.pre) {
				t.Fatalf("prerelease length: got %d, want %d", len(pre), len(tt.pre))
			}
			for i, want := range tt.pre {
				if pre[i].Value != want {
					t.Errorf("prerelease[%d]: got %q, want %q", i, pre[i].Value, want)
				}
			}
			build := v.Build()
			if len(build) != len(tt.build) {
				t.Fatalf("build length: got %d, want %d", len(build), len(tt.build))
			}
			for i, want := range tt.build {
				if build[i] != want {
					t.Errorf("build[%d]: got %q, want %q", i, build[i], want)
				}
			}
			if s := v.String(); s != tt.input {
				t.Errorf("String: got %q, want %q", s, tt.input)
			}
		})
	}
}

func TestParseNumericClassification(t *testing.T) {
	v := MustParse("1.0.0-rc.42.x64", CaseSensitive)
	pre := v.PreRelease()
	if pre[0].Numeric {
		t.Error("rc classified numeric")
	}
	if !pre[1].Numeric || !pre[1].Number.Equals64(42) {
		t.Errorf("42: got numeric=%v number=%v", pre[1].Numeric, pre[1].Number)
	}
	if pre[2].Numeric {
		t.Error("x64 classified numeric")
	}
}

func TestParseWideComponents(t *testing.T) {
	// Larger than uint64 but within 128 bits.
	const big = "340282366920938463463374607431768211455" // 2^128-1
	v, err := Parse(big+".0.1", CaseSensitive)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !v.Major.Equals(uint128.Max) {
		t.Errorf("major: got %v, want 2^128-1", v.Major)
	}
	if got := v.String(); got != big+".0.1" {
		t.Errorf("String: got %q", got)
	}

	// One past 2^128-1 must be rejected, not wrapped.
	if _, err := Parse("340282366920938463463374607431768211456.0.1", CaseSensitive); err == nil {
		t.Error("expected overflow rejection")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"leading zero major", "01.1.1"},
		{"leading zero minor", "1.01.1"},
		{"leading zero patch", "1.1.01"},
		{"leading zero numeric prerelease", "1.2.3-0123"},
		{"missing minor", "1"},
		{"missing patch", "1.2"},
		{"four components", "1.2.3.4"},
		{"only metadata", "+justmeta"},
		{"double metadata section", "9.8.7+meta+meta"},
		{"empty prerelease", "1.2.3-"},
		{"empty prerelease identifier", "1.2.3-a..b"},
		{"empty build", "1.2.3+"},
		{"empty build identifier", "1.2.3+a..b"},
		{"v prefix", "v1.2.3"},
		{"whitespace", " 1.2.3"},
		{"trailing whitespace", "1.2.3 "},
		{"negative", "-1.2.3"},
		{"underscore identifier", "1.2.3-a_b"},
		{"non ascii", "1.2.3-déjà"},
		{"trailing dot", "1.2.3-rc."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, CaseSensitive)
			if err == nil {
				t.Fatalf("Parse(%q) unexpectedly succeeded", tt.input)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %T: %v", err, err)
			}
			if fe.Offset < 0 || fe.Offset > len(tt.input) {
				t.Errorf("offset %d out of range for input %q", fe.Offset, tt.input)
			}
			if len(fe.Expected) == 0 {
				t.Error("expected-token set is empty")
			}
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	_, err := Parse("1.2.3-0123", CaseSensitive)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"1.2.3-0123", "offset", "leading zero"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestWithPreReleaseValidation(t *testing.T) {
	base := New(1, 2, 3, CaseSensitive)

	v, err := base.WithPreRelease("beta", "2")
	if err != nil {
		t.Fatalf("WithPreRelease failed: %v", err)
	}
	if v.String() != "1.2.3-beta.2" {
		t.Errorf("got %q", v.String())
	}

	if _, err := base.WithPreRelease("0123"); err == nil {
		t.Error("leading-zero numeric identifier accepted")
	}
	if _, err := base.WithPreRelease(""); err == nil {
		t.Error("empty identifier accepted")
	}
	if _, err := base.WithPreRelease("a b"); err == nil {
		t.Error("identifier with space accepted")
	}
}

func TestWithBuildValidation(t *testing.T) {
	base := New(1, 2, 3, CaseSensitive)

	v, err := base.WithBuild("001", "sha-5114f85")
	if err != nil {
		t.Fatalf("WithBuild failed: %v", err)
	}
	if v.String() != "1.2.3+001.sha-5114f85" {
		t.Errorf("got %q", v.String())
	}

	if _, err := base.WithBuild(""); err == nil {
		t.Error("empty build identifier accepted")
	}
	if _, err := base.WithBuild("a+b"); err == nil {
		t.Error("build identifier with '+' accepted")
	}
}
