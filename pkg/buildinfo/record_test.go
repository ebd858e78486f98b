package buildinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordVersion(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"zero value", Record{}, "0.0.0"},
		{"release", Record{BuildMajor: 20, BuildMinor: 1, BuildPatch: 4}, "20.1.4"},
		{
			"prerelease",
			Record{BuildMajor: 20, BuildMinor: 1, BuildPatch: 4, PreReleaseName: "beta"},
			"20.1.4-beta",
		},
		{
			"full prerelease",
			Record{BuildMajor: 1, BuildMinor: 2, BuildPatch: 3, PreReleaseName: "rc", PreReleaseNumber: 2, PreReleaseFix: 7},
			"1.2.3-rc.2.7",
		},
		{
			"name folds",
			Record{BuildMajor: 1, PreReleaseName: "PreRelease"},
			"1.0.0-pre",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.rec.Version()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestRecordVersionInvalid(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"major out of range", Record{BuildMajor: 100_000}},
		{"unknown prerelease name", Record{BuildMajor: 1, PreReleaseName: "preview"}},
		{"number without name", Record{BuildMajor: 1, PreReleaseNumber: 2}},
		{"fix without name", Record{BuildMajor: 1, PreReleaseFix: 1}},
		{"number out of range", Record{BuildMajor: 1, PreReleaseName: "beta", PreReleaseNumber: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rec.Version()
			assert.Error(t, err)
		})
	}
}

func TestRecordVersionAllViolationsReported(t *testing.T) {
	rec := Record{BuildMajor: 100_000, BuildMinor: 50_000, BuildPatch: 10_000}
	_, err := rec.Version()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "major")
	assert.Contains(t, msg, "minor")
	assert.Contains(t, msg, "patch")
}

func TestRecordVersionReportsCoreAndPrereleaseViolationsTogether(t *testing.T) {
	// A record edited by hand can be wrong in both groups; a bad core must
	// not hide the pre-release problems.
	rec := Record{BuildMajor: 200_000, PreReleaseName: "beta", PreReleaseNumber: 500}
	_, err := rec.Version()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "major")
	assert.Contains(t, msg, "prerelease number")

	rec = Record{BuildMajor: 200_000, PreReleaseNumber: 5}
	_, err = rec.Version()
	require.Error(t, err)
	msg = err.Error()
	assert.Contains(t, msg, "major")
	assert.Contains(t, msg, "without a pre-release name")
}

func TestFromVersionRoundTrip(t *testing.T) {
	for _, input := range []string{"0.0.0", "20.1.4", "1.2.3-rc.2.7"} {
		rec := FromVersion(mustVersion(t, input))
		v, err := rec.Version()
		require.NoError(t, err)
		assert.Equal(t, input, v.String())
	}
}

func TestLoadXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BuildVersion.xml")
	content := `<BuildVersionData BuildMajor="20" BuildMinor="1" BuildPatch="4" PreReleaseName="beta" PreReleaseNumber="1"/>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	v, err := rec.Version()
	require.NoError(t, err)
	assert.Equal(t, "20.1.4-beta.1", v.String())
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.json")
	content := `{"buildMajor":1,"buildMinor":2,"buildPatch":3,"preReleaseName":"rc"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	v, err := rec.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-rc", v.String())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.yaml")
	content := "buildMajor: 1\nbuildMinor: 2\nbuildPatch: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	v, err := rec.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<not-closed"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	rec := Record{BuildMajor: 20, BuildMinor: 1, BuildPatch: 4, PreReleaseName: "beta", PreReleaseNumber: 1}
	path := filepath.Join(t.TempDir(), "BuildVersion.xml")
	require.NoError(t, rec.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, rec.BuildMajor, loaded.BuildMajor)
	assert.Equal(t, rec.PreReleaseName, loaded.PreReleaseName)
	assert.Equal(t, rec.PreReleaseNumber, loaded.PreReleaseNumber)
}
