package buildinfo

import (
	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
)

// Properties is the derived-value set a build driver consumes: text forms
// for package identity, the ordered value for comparisons, and the
// file-version quad for binary resources.
type Properties struct {
	Version  string `json:"version" yaml:"version"`
	Expanded string `json:"expanded" yaml:"expanded"`
	CI       string `json:"ci,omitempty" yaml:"ci,omitempty"`

	Ordered uint64 `json:"ordered" yaml:"ordered"`

	FileVersion       string `json:"fileVersion" yaml:"fileVersion"`
	FileVersionUint64 uint64 `json:"fileVersionUint64" yaml:"fileVersionUint64"`
}

// Properties derives the release property set from the record.
func (r Record) Properties() (Properties, error) {
	v, err := r.Version()
	if err != nil {
		return Properties{}, err
	}
	return versionProperties(v), nil
}

// CIProperties derives the property set for a CI build of the record:
// everything Properties reports for the base, plus the CI text form, with
// the quad flagged as a CI build.
func (r Record) CIProperties(index, name string, opts ...csemver.CIOption) (Properties, error) {
	v, err := r.Version()
	if err != nil {
		return Properties{}, err
	}
	ci, err := csemver.NewCI(v, index, name, opts...)
	if err != nil {
		return Properties{}, err
	}

	p := versionProperties(v)
	p.CI = ci.String()
	quad := ci.FileVersion()
	p.Ordered = uint64(ci.Ordered())
	p.FileVersion = quad.String()
	p.FileVersionUint64 = quad.Uint64()
	return p, nil
}

func versionProperties(v csemver.Version) Properties {
	quad := v.FileVersion(false)
	return Properties{
		Version:           v.String(),
		Expanded:          v.ExpandedString(),
		Ordered:           uint64(v.Ordered()),
		FileVersion:       quad.String(),
		FileVersionUint64: quad.Uint64(),
	}
}
