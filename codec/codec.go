// Package codec centralizes value encoding for persisted matchgo data.
//
// Persisted files record the codec name in their header, so a file written
// with one codec can be opened later by selecting the same codec by name.
package codec

// Codec encodes and decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
//
// This only affects newly written files; existing files name their codec in
// the header and are opened with that codec.
var Default Codec = GoJSON{}
