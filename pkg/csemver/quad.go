package csemver

import (
	"strconv"
	"strings"

	"github.com/UbiquityDotNET/csemver-go/pkg/semver"
)

// FileVersionQuad is the four-field file version form consumable by native
// and interop callers: four unsigned 16-bit values whose concatenation is
// ordered<<1 | ciFlag. The low bit of Revision is the CI flag, and it is the
// only CI information that survives this projection; the CI index and name
// are lost.
type FileVersionQuad struct {
	Major    uint16
	Minor    uint16
	Build    uint16
	Revision uint16
}

// QuadFromUint64 splits a packed 64-bit file version into its four fields.
// The split is value-significant, not byte-order significant.
func QuadFromUint64(u uint64) FileVersionQuad {
	return FileVersionQuad{
		Major:    uint16(u >> 48),
		Minor:    uint16(u >> 32),
		Build:    uint16(u >> 16),
		Revision: uint16(u),
	}
}

// Uint64 packs the four fields back into their 64-bit form.
func (q FileVersionQuad) Uint64() uint64 {
	return uint64(q.Major)<<48 | uint64(q.Minor)<<32 | uint64(q.Build)<<16 | uint64(q.Revision)
}

// FileVersion produces the file version quad for v, marking it as a CI build
// when ci is set.
func (v Version) FileVersion(ci bool) FileVersionQuad {
	u := uint64(v.Ordered()) << 1
	if ci {
		u |= 1
	}
	return QuadFromUint64(u)
}

// IsCI reports whether the quad marks a continuous-integration build.
func (q FileVersionQuad) IsCI() bool {
	return q.Revision&1 == 1
}

// Ordered returns the ordered version encoded in the quad.
func (q FileVersionQuad) Ordered() OrderedVersion {
	return OrderedVersion(q.Uint64() >> 1)
}

// Version decodes the quad back into a CSemVer version. A CI quad cannot
// regenerate the CI index and name, so it is rejected here; callers holding
// a CI quad can still use Ordered and IsCI.
func (q FileVersionQuad) Version() (Version, error) {
	if q.IsCI() {
		return Version{}, &ShapeError{
			Input:  q.String(),
			Reason: "CI file version cannot be converted to a version (index and name are not recoverable)",
		}
	}
	return VersionFromOrdered(q.Ordered())
}

// Compare orders two quads. The ordered value decides; at equal ordered
// values the CI build ranks below the non-CI one, because a CI build is a
// post-release artifact leading up to the release that owns the slot. Note
// this is not plain 64-bit comparison of the packed form.
func (q FileVersionQuad) Compare(other FileVersionQuad) int {
	a, b := q.Ordered(), other.Ordered()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case q.IsCI() == other.IsCI():
		return 0
	case q.IsCI():
		return -1
	default:
		return 1
	}
}

// String renders the quad in dotted-decimal form
// "{major}.{minor}.{build}.{revision}".
func (q FileVersionQuad) String() string {
	var b strings.Builder
	b.Grow(23)
	b.WriteString(strconv.FormatUint(uint64(q.Major), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(q.Minor), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(q.Build), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(q.Revision), 10))
	return b.String()
}

// ParseQuad parses the dotted-decimal quad form: four unsigned 16-bit values
// separated by dots.
func ParseQuad(input string) (FileVersionQuad, error) {
	parts := strings.Split(input, ".")
	if len(parts) != 4 {
		return FileVersionQuad{}, &semver.FormatError{
			Input:    input,
			Offset:   0,
			Expected: []string{"four dot-separated 16-bit values"},
		}
	}
	var fields [4]uint16
	offset := 0
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return FileVersionQuad{}, &semver.FormatError{
				Input:    input,
				Offset:   offset,
				Expected: []string{"unsigned 16-bit value"},
			}
		}
		fields[i] = uint16(n)
		offset += len(part) + 1
	}
	return FileVersionQuad{Major: fields[0], Minor: fields[1], Build: fields[2], Revision: fields[3]}, nil
}
