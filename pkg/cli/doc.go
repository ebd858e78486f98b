// Package cli implements the csemver command surface.
//
// Commands:
//
//	parse    - parse a version string and emit its decomposition
//	compare  - compare two version strings (-1, 0, 1)
//	sort     - sort version strings into precedence order
//	encode   - encode a constrained version as its ordered number and quad
//	decode   - decode an ordered number or file-version quad into a version
//	ci       - construct a CI version from a base build and CI identity
//	build    - derive build properties from a persisted version record
//
// All commands share --output/--format for serialized results and
// --log-level for diagnostics. Results go to stdout (or the output file);
// logs go to stderr.
package cli
