package csemver

import (
	"math/bits"
)

// Multipliers of the dense ordered encoding. MulPatch reserves one slot for
// the release itself plus MulPatch-1 slots for the pre-releases below it.
const (
	MulNum   uint64 = 100
	MulName  uint64 = MulNum * 100
	MulPatch uint64 = MulName*8 + 1
	MulMinor uint64 = MulPatch * (MaxPatch + 1)
	MulMajor uint64 = MulMinor * (MaxMinor + 1)
)

// OrderedVersion is a 64-bit integer that uniquely and monotonically encodes
// a CSemVer version's precedence. Build metadata does not participate, so
// versions differing only in build metadata share an ordered value.
type OrderedVersion uint64

// Ordered value bounds: 1 encodes 0.0.0-alpha and MaxOrdered encodes the
// release 99999.49999.9999. Zero is not a valid encoding.
const (
	MinOrdered OrderedVersion = 1
	MaxOrdered OrderedVersion = OrderedVersion(MulMajor * (MaxMajor + 1))
)

// Ordered encodes the version. The encoding is total-order preserving:
// a.Compare(b) < 0 exactly when a.Ordered() < b.Ordered().
func (v Version) Ordered() OrderedVersion {
	var pre *Prerelease
	if v.hasPre {
		pre = &v.pre
	}
	// Fields are validated at construction, so the checked computation
	// cannot fail here.
	o, err := encodeOrdered(uint64(v.major), uint64(v.minor), uint64(v.patch), pre)
	if err != nil {
		panic(err)
	}
	return o
}

// EncodeOrdered computes the ordered value for an unvalidated field set,
// reporting every range violation together and guarding the 64-bit domain
// explicitly. pre may be nil for a release version.
func EncodeOrdered(major, minor, patch int, pre *Prerelease) (OrderedVersion, error) {
	v, err := New(major, minor, patch)
	if err != nil {
		return 0, err
	}
	if pre != nil {
		v = v.WithPrerelease(*pre)
	}
	return encodeOrdered(uint64(v.major), uint64(v.minor), uint64(v.patch), pre)
}

// encodeOrdered implements the multiplier chain with explicit overflow
// checks. For in-range fields the result is at most MaxOrdered, which leaves
// the top bit free for the file-version CI flag.
func encodeOrdered(major, minor, patch uint64, pre *Prerelease) (OrderedVersion, error) {
	o, err := mulAdd(0, major, MulMajor)
	if err != nil {
		return 0, err
	}
	if o, err = mulAdd(o, minor, MulMinor); err != nil {
		return 0, err
	}
	if o, err = mulAdd(o, patch+1, MulPatch); err != nil {
		return 0, err
	}
	if pre != nil {
		// The pre-release occupies the space directly below the release
		// slot: ordinal() is in [0, MulPatch-2].
		o -= MulPatch - 1
		o += pre.ordinal()
	}
	return OrderedVersion(o), nil
}

// mulAdd returns acc + a*b, failing on 64-bit overflow.
func mulAdd(acc, a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, &OverflowError{Op: "ordered version encoding"}
	}
	sum, carry := bits.Add64(acc, lo, 0)
	if carry != 0 {
		return 0, &OverflowError{Op: "ordered version encoding"}
	}
	return sum, nil
}

// VersionFromOrdered decodes an ordered value back into the version that
// produced it. Build metadata does not survive the encoding. Values outside
// [MinOrdered, MaxOrdered] fail with a RangeError.
func VersionFromOrdered(o OrderedVersion) (Version, error) {
	if o < MinOrdered || o > MaxOrdered {
		return Version{}, &RangeError{
			Field: "ordered version",
			Value: formatUint64(uint64(o)),
			Min:   int64(MinOrdered),
			Max:   int64(MaxOrdered),
		}
	}
	// Each major owns the half-open value range (major*MulMajor,
	// (major+1)*MulMajor]; shifting to zero-based makes the ranges align
	// with plain division. The same holds for minor within a major.
	x := uint64(o) - 1
	major := x / MulMajor
	x %= MulMajor
	minor := x / MulMinor
	x %= MulMinor
	patch := x / MulPatch
	t := x % MulPatch

	v := Version{major: uint32(major), minor: uint32(minor), patch: uint32(patch)}
	if t != MulPatch-1 {
		// t is the pre-release ordinal.
		v.pre = Prerelease{
			index:  uint8(t / MulName),
			number: uint8(t % MulName / MulNum),
			fix:    uint8(t % MulNum),
		}
		v.hasPre = true
	}
	return v, nil
}

func formatUint64(n uint64) string {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return string(buf[i:])
}
