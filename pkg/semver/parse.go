package semver

import (
	"lukechampine.com/uint128"
)

// Bounds used to detect 128-bit overflow while accumulating numeric
// identifiers digit by digit.
var (
	maxU128Div10, maxU128Mod10 = uint128.Max.QuoRem64(10)
)

// Parse parses a semantic version string that strictly conforms to SemVer
// 2.0.0 and declares it under the given comparison mode. On failure it
// returns a *FormatError identifying the failing offset and the set of
// admissible continuations.
func Parse(input string, mode CompareMode) (Version, error) {
	p := parser{input: input}
	v, err := p.version()
	if err != nil {
		return Version{}, err
	}
	v.mode = mode
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(input string, mode CompareMode) Version {
	v, err := Parse(input, mode)
	if err != nil {
		panic(err)
	}
	return v
}

// parser is a byte-level recursive-descent parser over a single input string.
type parser struct {
	input string
	pos   int
}

func (p *parser) fail(expected ...string) error {
	return &FormatError{Input: p.input, Offset: p.pos, Expected: expected}
}

func (p *parser) failAt(offset int, expected ...string) error {
	return &FormatError{Input: p.input, Offset: offset, Expected: expected}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

// version parses the full production: core ('-' prerelease)? ('+' buildmeta)?
// followed by end of input.
func (p *parser) version() (Version, error) {
	var v Version
	var err error
	if v.Major, err = p.numericIdentifier("major version"); err != nil {
		return Version{}, err
	}
	if err = p.expect('.', "'.' before minor version"); err != nil {
		return Version{}, err
	}
	if v.Minor, err = p.numericIdentifier("minor version"); err != nil {
		return Version{}, err
	}
	if err = p.expect('.', "'.' before patch version"); err != nil {
		return Version{}, err
	}
	if v.Patch, err = p.numericIdentifier("patch version"); err != nil {
		return Version{}, err
	}
	if !p.eof() && p.peek() == '-' {
		p.pos++
		if v.pre, err = p.preRelease(); err != nil {
			return Version{}, err
		}
	}
	if !p.eof() && p.peek() == '+' {
		p.pos++
		if v.build, err = p.buildMeta(); err != nil {
			return Version{}, err
		}
	}
	if !p.eof() {
		return Version{}, p.fail("end of input")
	}
	return v, nil
}

func (p *parser) expect(c byte, expected string) error {
	if p.eof() || p.peek() != c {
		return p.fail(expected)
	}
	p.pos++
	return nil
}

// numericIdentifier parses a core version number: '0' or [1-9][0-9]*.
func (p *parser) numericIdentifier(what string) (uint128.Uint128, error) {
	if p.eof() || !isDigit(p.peek()) {
		return uint128.Zero, p.fail(what + " digit")
	}
	if p.peek() == '0' {
		p.pos++
		if !p.eof() && isDigit(p.peek()) {
			return uint128.Zero, p.failAt(p.pos-1, what+" without leading zero")
		}
		return uint128.Zero, nil
	}
	start := p.pos
	var n uint128.Uint128
	for !p.eof() && isDigit(p.peek()) {
		digit := uint64(p.peek() - '0')
		if n.Cmp(maxU128Div10) > 0 || (n.Equals(maxU128Div10) && digit > maxU128Mod10) {
			return uint128.Zero, p.failAt(start, what+" within 128-bit range")
		}
		n = n.Mul64(10).Add64(digit)
		p.pos++
	}
	return n, nil
}

// preRelease parses a dot-separated list of pre-release identifiers.
func (p *parser) preRelease() ([]Identifier, error) {
	var ids []Identifier
	for {
		ident, err := p.preReleaseIdentifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, ident)
		if !p.eof() && p.peek() == '.' {
			p.pos++
			continue
		}
		return ids, nil
	}
}

// preReleaseIdentifier parses one identifier, classifying digits-only ones as
// numeric. A digits-only identifier with a leading zero is invalid unless it
// is exactly "0".
func (p *parser) preReleaseIdentifier() (Identifier, error) {
	start := p.pos
	numeric := true
	leadingZero := false
	digits := 0
	var number uint128.Uint128
	for !p.eof() {
		c := p.peek()
		if c == '.' || c == '+' {
			break
		}
		if !isAlphaNumHyphen(c) {
			return Identifier{}, p.fail("pre-release identifier character [0-9A-Za-z-]")
		}
		if isDigit(c) {
			if digits == 0 {
				leadingZero = c == '0'
			}
			digit := uint64(c - '0')
			if number.Cmp(maxU128Div10) > 0 || (number.Equals(maxU128Div10) && digit > maxU128Mod10) {
				return Identifier{}, p.failAt(start, "numeric pre-release identifier within 128-bit range")
			}
			number = number.Mul64(10).Add64(digit)
			digits++
		} else {
			numeric = false
		}
		p.pos++
	}
	if p.pos == start {
		return Identifier{}, p.fail("pre-release identifier")
	}
	ident := Identifier{Value: p.input[start:p.pos]}
	if numeric {
		if digits > 1 && leadingZero {
			return Identifier{}, p.failAt(start, "numeric pre-release identifier without leading zero")
		}
		ident.Numeric = true
		ident.Number = number
	}
	return ident, nil
}

// buildMeta parses a dot-separated list of build metadata identifiers.
// Digits-only identifiers may carry leading zeros here.
func (p *parser) buildMeta() ([]string, error) {
	var ids []string
	for {
		start := p.pos
		for !p.eof() {
			c := p.peek()
			if c == '.' {
				break
			}
			if !isAlphaNumHyphen(c) {
				return nil, p.fail("build metadata identifier character [0-9A-Za-z-]")
			}
			p.pos++
		}
		if p.pos == start {
			return nil, p.fail("build metadata identifier")
		}
		ids = append(ids, p.input[start:p.pos])
		if !p.eof() && p.peek() == '.' {
			p.pos++
			continue
		}
		return ids, nil
	}
}

// parsePreReleaseIdentifier validates and classifies a standalone pre-release
// identifier supplied programmatically (see Version.WithPreRelease).
func parsePreReleaseIdentifier(id string) (Identifier, error) {
	p := parser{input: id}
	ident, err := p.preReleaseIdentifier()
	if err != nil {
		return Identifier{}, err
	}
	if !p.eof() {
		return Identifier{}, p.fail("end of identifier")
	}
	return ident, nil
}

// validateBuildIdentifier validates a standalone build metadata identifier
// supplied programmatically (see Version.WithBuild).
func validateBuildIdentifier(id string) error {
	if id == "" {
		return &FormatError{Input: id, Offset: 0, Expected: []string{"build metadata identifier"}}
	}
	for i := 0; i < len(id); i++ {
		if !isAlphaNumHyphen(id[i]) {
			return &FormatError{Input: id, Offset: i, Expected: []string{"build metadata identifier character [0-9A-Za-z-]"}}
		}
	}
	return nil
}

// IsIdentifier reports whether s is a valid SemVer identifier: non-empty and
// restricted to [0-9A-Za-z-].
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlphaNumHyphen(s[i]) {
			return false
		}
	}
	return true
}

// IsPreReleaseIdentifier reports whether s is a valid SemVer pre-release
// identifier: non-empty, restricted to [0-9A-Za-z-], and, when digits-only,
// free of leading zeros.
func IsPreReleaseIdentifier(s string) bool {
	_, err := parsePreReleaseIdentifier(s)
	return err == nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumHyphen(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if c >= 'a' && c <= 'z' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return true
	}
	return c == '-'
}
