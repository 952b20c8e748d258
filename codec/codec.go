// Package codec provides value (de)serializers for the typed
// content-addressed store. Because refs are derived from encoded
// bytes, codecs used for content addressing should be deterministic:
// the CBOR codec defaults to RFC 8949 core deterministic encoding for
// exactly that reason. JSON and msgpack make no canonical-bytes
// promise for maps; use them when refs are carried out-of-band.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	// Name identifies the codec in diagnostics and hook events. It is
	// not stored on the wire; entries are addressed by content, not by
	// codec.
	Name() string

	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
