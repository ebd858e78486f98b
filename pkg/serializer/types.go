package serializer

// Serializer is the encoding half of the package: implementations render a
// value in their configured format.
type Serializer interface {
	Serialize(v any) error
}

// Closer is an optional interface for Serializers holding resources such as
// file handles.
type Closer interface {
	Close() error
}
