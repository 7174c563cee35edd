// Package codec centralizes JSON encoding of point sets and clustering results.
//
// Two interchangeable codecs are provided: the standard library codec and a
// faster codec backed by github.com/goccy/go-json. Both produce identical
// bytes for the types exchanged by the kmeans CLI.
package codec

// Codec encodes/decodes values.
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

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json"}
}
