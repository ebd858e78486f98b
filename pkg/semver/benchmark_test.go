package semver

import "testing"

func BenchmarkParseRelease(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("10.20.30", CaseSensitive); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseFull(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("1.2.3-beta.11.x64+exp.sha.5114f85", CaseSensitive); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	x := MustParse("1.0.0-alpha.beta.7", CaseInsensitive)
	y := MustParse("1.0.0-ALPHA.beta.11", CaseInsensitive)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compare(x, y, CaseInsensitive)
	}
}

func BenchmarkString(b *testing.B) {
	v := MustParse("1.2.3-beta.11+exp.sha.5114f85", CaseSensitive)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}
