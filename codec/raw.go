package codec

// Bytes is an identity codec for []byte values. Useful when the value
// is already a raw byte slice and only the store's framing,
// compression and digest verification are wanted.
type Bytes struct{}

func (Bytes) Name() string { return "bytes" }

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String is a trivial codec for Go string values. Assumes UTF-8 by
// convention and performs no validation.
type String struct{}

func (String) Name() string { return "string" }

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
