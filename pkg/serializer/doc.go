// Package serializer provides encoding and decoding of version data in
// multiple formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format
//   - Table: flattened key/value output for terminals (write-only)
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(data); err != nil {
//		log.Fatal(err)
//	}
//
// Reading is format-detected from the file extension:
//
//	rec, err := serializer.FromFile[buildinfo.Record]("version.json")
//
// Writers buffer nothing and write directly; Close releases file handles
// for writers created with NewFileWriterOrStdout and is a no-op otherwise.
package serializer
