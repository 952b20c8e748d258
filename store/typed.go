package store

import (
	"context"
	"time"

	"github.com/unkn0wn-root/bytekit"
	"github.com/unkn0wn-root/bytekit/codec"
)

// Typed wraps a Store with a value codec so callers work with Go
// values instead of raw bytes. Refs address the ENCODED bytes: two
// values are interchangeable exactly when the codec renders them to
// the same bytes, so a deterministic codec (codec.MustCBOR with
// deterministic=true) is recommended when refs are compared or shared.
type Typed[V any] struct {
	s *Store
	c codec.Codec[V]
}

// NewTyped binds a codec to a store. The store may be shared by
// several Typed instances with different codecs; refs keep them apart.
func NewTyped[V any](s *Store, c codec.Codec[V]) *Typed[V] {
	return &Typed[V]{s: s, c: c}
}

// Store returns the underlying byte-level store.
func (t *Typed[V]) Store() *Store { return t.s }

// PutValue encodes v and stores the bytes under their digest.
func (t *Typed[V]) PutValue(ctx context.Context, v V, ttl time.Duration) (Ref, error) {
	raw, err := t.c.Encode(v)
	if err != nil {
		return Ref{}, err
	}
	return t.s.Put(ctx, bytekit.FromBytes(raw), ttl)
}

// GetValue resolves a ref and decodes it. A decode failure is an
// error, not a self-heal: the stored bytes already passed digest
// verification, so the mismatch is between codec and caller, and
// deleting the entry would destroy valid data.
func (t *Typed[V]) GetValue(ctx context.Context, ref Ref) (V, bool, error) {
	var zero V
	raw, ok, err := t.s.Get(ctx, ref)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := t.c.Decode(raw)
	if err != nil {
		t.s.hooks.DecodeError(ref.String(), err)
		t.s.log.Warn("decode failed for verified entry", bytekit.Fields{
			"ref":   ref.String(),
			"codec": t.c.Name(),
			"err":   err,
		})
		return zero, false, err
	}
	return v, true, nil
}

// RefOfValue computes the ref PutValue would assign, without storing.
func (t *Typed[V]) RefOfValue(v V) (Ref, error) {
	raw, err := t.c.Encode(v)
	if err != nil {
		return Ref{}, err
	}
	return t.s.RefOf(bytekit.FromBytes(raw))
}
