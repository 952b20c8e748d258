package bytekit

import "fmt"

// Data is the read contract shared by Buffer and View. Every transform
// entry point in this module accepts a Data rather than a concrete
// type, so views flow through without copying.
type Data interface {
	// Bytes returns the underlying bytes. Callers MUST NOT mutate the
	// returned slice; buffers are immutable after construction and the
	// transform paths rely on that.
	Bytes() []byte

	// Len returns the size in bytes.
	Len() int
}

// Buffer is an owned, fixed-size, contiguous byte region. The length
// never changes after construction and there is no byte-level write
// API: a Buffer is produced whole (allocation, copy, or transform
// output) and read until released.
type Buffer struct {
	data     []byte
	released bool
}

var _ Data = (*Buffer)(nil)

// Allocate returns a zero-filled buffer of the given size. A negative
// size fails with ErrInvalidArgument. Allocation exhaustion follows Go
// runtime semantics (panic), which is the fatal AllocationFailure case.
func Allocate(size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative buffer size %d", ErrInvalidArgument, size)
	}
	return &Buffer{data: make([]byte, size)}, nil
}

// FromBytes copies b into a new buffer. The caller keeps ownership of
// the input slice; later writes to it do not affect the buffer.
func FromBytes(b []byte) *Buffer {
	c := make([]byte, len(b))
	copy(c, b)
	return &Buffer{data: c}
}

// FromString copies s into a new buffer.
func FromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Bytes returns the buffer's storage, or nil after Release.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer size in bytes (0 after Release).
func (b *Buffer) Len() int { return len(b.data) }

// String returns the bytes interpreted as a string.
func (b *Buffer) String() string { return string(b.data) }

// ByteSlice returns a copy of the contents, safe for the caller to
// mutate.
func (b *Buffer) ByteSlice() []byte {
	c := make([]byte, len(b.data))
	copy(c, b.data)
	return c
}

// Clone copies the subrange [offset, offset+size) into a new buffer.
func (b *Buffer) Clone(offset, size int) (*Buffer, error) {
	if b.released {
		return nil, ErrReleased
	}
	if err := checkRange(offset, size, len(b.data)); err != nil {
		return nil, err
	}
	return FromBytes(b.data[offset : offset+size]), nil
}

// View returns a non-owning reference to the subrange
// [offset, offset+size). Bounds are validated here, at construction:
// offset < 0, size < 0, or offset+size > Len fail with ErrOutOfRange.
func (b *Buffer) View(offset, size int) (*View, error) {
	if b.released {
		return nil, ErrReleased
	}
	if err := checkRange(offset, size, len(b.data)); err != nil {
		return nil, err
	}
	return &View{parent: b, data: b.data[offset : offset+size], offset: offset}, nil
}

// Release detaches the buffer from its storage. Further operations on
// the buffer fail with ErrReleased. Views created before the release
// stay valid: each view holds its own slice of the underlying array,
// which keeps the storage reachable for the view's lifetime.
func (b *Buffer) Release() {
	b.released = true
	b.data = nil
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool { return b.released }

// View is a non-owning bounded reference into a Buffer. The invariant
// offset+len <= parent.Len held at construction time; the view's slice
// keeps the parent storage alive even if the parent is released.
type View struct {
	parent *Buffer
	data   []byte
	offset int
}

var _ Data = (*View)(nil)

// Bytes returns the viewed bytes without copying. Callers MUST NOT
// mutate the returned slice.
func (v *View) Bytes() []byte { return v.data }

// Len returns the view length in bytes.
func (v *View) Len() int { return len(v.data) }

// Offset returns the view's offset within its parent buffer.
func (v *View) Offset() int { return v.offset }

// Parent returns the buffer the view was created from.
func (v *View) Parent() *Buffer { return v.parent }

// String returns the viewed bytes interpreted as a string.
func (v *View) String() string { return string(v.data) }

// Clone copies the viewed bytes into an independent buffer.
func (v *View) Clone() *Buffer { return FromBytes(v.data) }

// checkRange validates [offset, offset+size) against a total length.
// Written addition-free on the upper bound so offset+size cannot
// overflow.
func checkRange(offset, size, total int) error {
	if offset < 0 || size < 0 || offset > total || size > total-offset {
		return fmt.Errorf("%w: offset=%d size=%d len=%d", ErrOutOfRange, offset, size, total)
	}
	return nil
}
