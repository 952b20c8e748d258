package codec

import "encoding/json"

// JSON serializes values with encoding/json. Struct-field ordering is
// stable, so refs are stable for map-free value types.
type JSON[V any] struct{}

func (JSON[V]) Name() string { return "json" }

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
