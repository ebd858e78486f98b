package csemver

import (
	"errors"
	"strconv"
	"strings"
)

// Pre-release field bounds.
const (
	MaxPrereleaseIndex  = 7
	MaxPrereleaseNumber = 99
	MaxPrereleaseFix    = 99
)

// prereleaseNames is the closed CSemVer name table, in precedence order.
// Index positions are part of the ordered-integer encoding and must never be
// reordered.
var prereleaseNames = [8]string{
	"alpha", "beta", "delta", "epsilon", "gamma", "kappa", "pre", "rc",
}

// prereleaseAlias maps accepted long names onto canonical table entries.
var prereleaseAlias = map[string]string{
	"prerelease": "pre",
}

// PrereleaseNames returns the eight canonical pre-release names in precedence
// order.
func PrereleaseNames() []string {
	names := make([]string, len(prereleaseNames))
	copy(names, prereleaseNames[:])
	return names
}

// Prerelease identifies a CSemVer pre-release: one of the eight fixed names
// selected by index, refined by a number and fix. The zero value is
// "alpha" (alpha.0.0), the lowest pre-release.
type Prerelease struct {
	index  uint8
	number uint8
	fix    uint8
}

// NewPrerelease constructs a Prerelease from an index (0..7), number (0..99),
// and fix (0..99). All range violations are reported together.
func NewPrerelease(index, number, fix int) (Prerelease, error) {
	var errs []error
	if index < 0 || index > MaxPrereleaseIndex {
		errs = append(errs, rangeErr("prerelease index", int64(index), 0, MaxPrereleaseIndex))
	}
	if number < 0 || number > MaxPrereleaseNumber {
		errs = append(errs, rangeErr("prerelease number", int64(number), 0, MaxPrereleaseNumber))
	}
	if fix < 0 || fix > MaxPrereleaseFix {
		errs = append(errs, rangeErr("prerelease fix", int64(fix), 0, MaxPrereleaseFix))
	}
	if len(errs) > 0 {
		return Prerelease{}, errors.Join(errs...)
	}
	return Prerelease{index: uint8(index), number: uint8(number), fix: uint8(fix)}, nil
}

// PrereleaseFromName constructs a Prerelease from one of the eight fixed
// names (case-insensitive; "prerelease" is accepted as an alias of "pre")
// plus a number and fix in 0..99.
func PrereleaseFromName(name string, number, fix int) (Prerelease, error) {
	index, ok := prereleaseIndex(name)
	if !ok {
		return Prerelease{}, &ShapeError{
			Input:  name,
			Reason: "not a CSemVer pre-release name (expected one of " + strings.Join(prereleaseNames[:], ", ") + ")",
		}
	}
	p, err := NewPrerelease(index, number, fix)
	if err != nil {
		return Prerelease{}, err
	}
	return p, nil
}

// prereleaseIndex resolves a name (case-insensitive, alias-aware) to its
// table index.
func prereleaseIndex(name string) (int, bool) {
	folded := strings.ToLower(name)
	if canonical, ok := prereleaseAlias[folded]; ok {
		folded = canonical
	}
	for i, n := range prereleaseNames {
		if n == folded {
			return i, true
		}
	}
	return 0, false
}

// Index returns the position of the name in the fixed table (0..7).
func (p Prerelease) Index() int { return int(p.index) }

// Number returns the pre-release number (0..99).
func (p Prerelease) Number() int { return int(p.number) }

// Fix returns the pre-release fix (0..99).
func (p Prerelease) Fix() int { return int(p.fix) }

// Name returns the canonical pre-release name.
func (p Prerelease) Name() string { return prereleaseNames[p.index] }

// Compare orders pre-releases by index, then number, then fix. This matches
// both SemVer identifier precedence over the canonical rendering and the
// ordered-integer encoding.
func (p Prerelease) Compare(other Prerelease) int {
	if p.index != other.index {
		if p.index < other.index {
			return -1
		}
		return 1
	}
	if p.number != other.number {
		if p.number < other.number {
			return -1
		}
		return 1
	}
	if p.fix != other.fix {
		if p.fix < other.fix {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the canonical short rendering: the name alone when number
// and fix are zero, name.number when only the fix is zero, and
// name.number.fix otherwise.
func (p Prerelease) String() string {
	switch {
	case p.fix > 0:
		return p.Name() + "." + strconv.Itoa(int(p.number)) + "." + strconv.Itoa(int(p.fix))
	case p.number > 0:
		return p.Name() + "." + strconv.Itoa(int(p.number))
	default:
		return p.Name()
	}
}

// Expanded returns the full three-component rendering name.number.fix,
// regardless of trailing zeros. CSemVer-CI uses this form so the CI marker
// always appears at a fixed position.
func (p Prerelease) Expanded() string {
	return p.Name() + "." + strconv.Itoa(int(p.number)) + "." + strconv.Itoa(int(p.fix))
}

// identifiers returns the canonical short rendering as separate identifiers.
func (p Prerelease) identifiers() []string {
	switch {
	case p.fix > 0:
		return []string{p.Name(), strconv.Itoa(int(p.number)), strconv.Itoa(int(p.fix))}
	case p.number > 0:
		return []string{p.Name(), strconv.Itoa(int(p.number))}
	default:
		return []string{p.Name()}
	}
}

// expandedIdentifiers returns the three-component rendering as separate
// identifiers.
func (p Prerelease) expandedIdentifiers() []string {
	return []string{p.Name(), strconv.Itoa(int(p.number)), strconv.Itoa(int(p.fix))}
}

// ordinal returns the dense pre-release offset used by the ordered encoding:
// index*MulName + number*MulNum + fix, in [0, MulPatch-2].
func (p Prerelease) ordinal() uint64 {
	return uint64(p.index)*MulName + uint64(p.number)*MulNum + uint64(p.fix)
}
