package buildinfo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
	"github.com/UbiquityDotNET/csemver-go/pkg/serializer"
)

// Record is the persisted build-version source of truth for a repository.
// The zero value is the 0.0.0 release.
type Record struct {
	XMLName xml.Name `xml:"BuildVersionData" json:"-" yaml:"-"`

	BuildMajor int `xml:"BuildMajor,attr" json:"buildMajor" yaml:"buildMajor"`
	BuildMinor int `xml:"BuildMinor,attr" json:"buildMinor" yaml:"buildMinor"`
	BuildPatch int `xml:"BuildPatch,attr" json:"buildPatch" yaml:"buildPatch"`

	PreReleaseName   string `xml:"PreReleaseName,attr,omitempty" json:"preReleaseName,omitempty" yaml:"preReleaseName,omitempty"`
	PreReleaseNumber int    `xml:"PreReleaseNumber,attr,omitempty" json:"preReleaseNumber,omitempty" yaml:"preReleaseNumber,omitempty"`
	PreReleaseFix    int    `xml:"PreReleaseFix,attr,omitempty" json:"preReleaseFix,omitempty" yaml:"preReleaseFix,omitempty"`
}

// Version materializes the record as a constrained version. A hand-edited
// record may be wrong in several fields at once; every violation is
// reported, not just the first, across both the core and pre-release
// groups.
func (r Record) Version() (csemver.Version, error) {
	var errs []error

	v, err := csemver.New(r.BuildMajor, r.BuildMinor, r.BuildPatch)
	if err != nil {
		errs = append(errs, err)
	}

	var (
		pre    csemver.Prerelease
		hasPre bool
	)
	if r.PreReleaseName == "" {
		if r.PreReleaseNumber != 0 || r.PreReleaseFix != 0 {
			errs = append(errs, fmt.Errorf("pre-release number/fix set without a pre-release name"))
		}
	} else {
		pre, err = csemver.PrereleaseFromName(r.PreReleaseName, r.PreReleaseNumber, r.PreReleaseFix)
		if err != nil {
			errs = append(errs, err)
		} else {
			hasPre = true
		}
	}

	if len(errs) > 0 {
		return csemver.Version{}, errors.Join(errs...)
	}
	if hasPre {
		v = v.WithPrerelease(pre)
	}
	return v, nil
}

// FromVersion produces the record that round-trips to v. Build metadata is
// not persisted; it belongs to an individual build, not the repository.
func FromVersion(v csemver.Version) Record {
	r := Record{
		BuildMajor: v.Major(),
		BuildMinor: v.Minor(),
		BuildPatch: v.Patch(),
	}
	if pre, ok := v.Prerelease(); ok {
		r.PreReleaseName = pre.Name()
		r.PreReleaseNumber = pre.Number()
		r.PreReleaseFix = pre.Fix()
	}
	return r
}

// Load reads a persisted record, detecting the format from the file
// extension: .xml for the canonical form, .json/.yaml/.yml otherwise.
func Load(path string) (*Record, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xml") {
		return loadXML(path)
	}
	return serializer.FromFile[Record](path)
}

func loadXML(path string) (*Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read version file: %w", err)
	}
	var r Record
	if err := xml.Unmarshal(content, &r); err != nil {
		return nil, fmt.Errorf("failed to decode version file %q: %w", path, err)
	}
	return &r, nil
}

// Save writes the canonical XML form.
func (r Record) Save(path string) error {
	content, err := xml.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode version record: %w", err)
	}
	return serializer.WriteToFile(path, append(content, '\n'))
}
