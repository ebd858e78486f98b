package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
)

func mustVersion(t *testing.T, input string) csemver.Version {
	t.Helper()
	v, err := csemver.Parse(input)
	require.NoError(t, err)
	return v
}

func TestRecordProperties(t *testing.T) {
	rec := Record{BuildMajor: 20, BuildMinor: 1, BuildPatch: 4, PreReleaseName: "beta"}
	p, err := rec.Properties()
	require.NoError(t, err)

	assert.Equal(t, "20.1.4-beta", p.Version)
	assert.Equal(t, "20.1.4-beta.0.0", p.Expanded)
	assert.Empty(t, p.CI)
	assert.Equal(t, uint64(800_010_800_340_005), p.Ordered)
	assert.Equal(t, uint64(800_010_800_340_005)<<1, p.FileVersionUint64)

	quad := csemver.QuadFromUint64(p.FileVersionUint64)
	assert.False(t, quad.IsCI())
	assert.Equal(t, quad.String(), p.FileVersion)
}

func TestRecordCIProperties(t *testing.T) {
	rec := Record{BuildMajor: 1, BuildMinor: 2, BuildPatch: 3}
	p, err := rec.CIProperties("AB12", "BLD")
	require.NoError(t, err)

	// Text identity stays the base; the quad and ordered value follow the
	// effective CI version.
	assert.Equal(t, "1.2.3", p.Version)
	assert.Equal(t, "1.2.4--ci.AB12.BLD", p.CI)
	assert.Equal(t, uint64(mustVersion(t, "1.2.4").Ordered()), p.Ordered)
	assert.True(t, csemver.QuadFromUint64(p.FileVersionUint64).IsCI())
}

func TestRecordCIPropertiesInvalid(t *testing.T) {
	rec := Record{BuildMajor: 1, BuildMinor: 2, BuildPatch: 3}
	_, err := rec.CIProperties("", "BLD")
	assert.Error(t, err)

	bad := Record{BuildMajor: 100_000}
	_, err = bad.CIProperties("1", "b")
	assert.Error(t, err)

	_, err = bad.Properties()
	assert.Error(t, err)
}
