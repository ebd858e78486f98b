// Package buildinfo bridges persisted build-version records and the version
// values used by build tooling.
//
// A repository stores its version as a small record of six fields (core
// triple plus optional pre-release name/number/fix). The canonical persisted
// form is an XML element:
//
//	<BuildVersionData
//	    BuildMajor="20"
//	    BuildMinor="1"
//	    BuildPatch="4"
//	    PreReleaseName="beta"
//	/>
//
// JSON and YAML forms are also accepted. Load detects the format from the
// file extension, and Record.Version validates every field at once so a
// hand-edited file reports all of its problems in a single pass.
//
// Properties renders the derived values a build driver needs: canonical and
// expanded text forms, the optional CI form, the ordered value, and the
// file-version quad.
package buildinfo
