package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes generated proto messages. Construct with
// NewProtobuf and a message constructor, e.g.
// NewProtobuf(func() *mypb.Blob { return &mypb.Blob{} }).
//
// proto.Marshal output is not guaranteed canonical across library
// versions; treat protobuf-derived refs like msgpack ones.
type Protobuf[T proto.Message] struct {
	new func() T
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (Protobuf[T]) Name() string { return "protobuf" }

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
