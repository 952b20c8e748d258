// Package store is a content-addressed blob store over pluggable
// providers. Every entry is keyed by the digest of its own
// uncompressed bytes, so entries are immutable: a ref either resolves
// to exactly the bytes it names or to a miss. Reads verify the digest;
// anything that fails validation (foreign write, truncation, bit rot)
// is deleted on sight and reported as a miss.
package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/bytekit"
	"github.com/unkn0wn-root/bytekit/compress"
	"github.com/unkn0wn-root/bytekit/digest"
	"github.com/unkn0wn-root/bytekit/internal/util"
	"github.com/unkn0wn-root/bytekit/internal/wire"
	pr "github.com/unkn0wn-root/bytekit/provider"
)

// SetCostFunc computes the cost passed to the provider on Set.
// raw is the framed entry (envelope + payload).
type SetCostFunc func(ref string, raw []byte) int64

// Ref names a blob by the digest of its uncompressed content.
type Ref struct {
	Algorithm digest.Algorithm
	Sum       []byte
}

// String renders the canonical "<algorithm>:<hex>" form.
func (r Ref) String() string {
	return util.FormatRef(string(r.Algorithm), r.Sum)
}

// Equal reports whether two refs name the same content.
func (r Ref) Equal(o Ref) bool {
	return r.Algorithm == o.Algorithm && bytes.Equal(r.Sum, o.Sum)
}

// ParseRef parses the canonical form, validating the digest length
// against the named algorithm.
func ParseRef(s string) (Ref, error) {
	alg, sum, err := util.ParseRef(s)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %v", bytekit.ErrInvalidArgument, err)
	}
	size, err := digest.Size(digest.Algorithm(alg))
	if err != nil {
		return Ref{}, err
	}
	if len(sum) != size {
		return Ref{}, fmt.Errorf("%w: ref digest is %d bytes, %s wants %d",
			bytekit.ErrInvalidArgument, len(sum), alg, size)
	}
	return Ref{Algorithm: digest.Algorithm(alg), Sum: sum}, nil
}

// Options tune the store. Only Namespace and Provider are required;
// others have sensible defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions, e.g. "assets"
	Provider  pr.Provider

	Algorithm   digest.Algorithm // content-addressing hash; "" => sha256
	Compression compress.Format  // "" => stored uncompressed
	// CompressLevel is the level for Compression, -1..9; 0 is treated
	// as "codec default" so the zero value of Options behaves sanely.
	CompressLevel int
	// MinCompressSize skips compression for payloads below this many
	// bytes; 0 => 128.
	MinCompressSize int

	Logger         bytekit.Logger // nil => NopLogger
	Hooks          bytekit.Hooks  // nil => NopHooks
	DefaultTTL     time.Duration  // 0 => no expiry
	ComputeSetCost SetCostFunc    // default: framed entry size
	Disabled       bool           // default false (enabled)
}

// Store is the content-addressed blob store.
type Store struct {
	ns       string
	provider pr.Provider
	alg      digest.Algorithm
	comp     compress.Format
	level    int
	minComp  int
	log      bytekit.Logger
	hooks    bytekit.Hooks
	ttl      time.Duration
	cost     SetCostFunc
	enabled  bool
}

// New validates options and builds a store.
func New(opts Options) (*Store, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("%w: provider is required", bytekit.ErrInvalidArgument)
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("%w: namespace is required", bytekit.ErrInvalidArgument)
	}

	alg := bytekit.Coalesce(opts.Algorithm, digest.SHA256)
	if _, err := digest.Size(alg); err != nil {
		return nil, err
	}
	level := bytekit.Coalesce(opts.CompressLevel, compress.DefaultLevel)
	if opts.Compression != "" {
		if _, err := compTag(opts.Compression); err != nil {
			return nil, err
		}
		if level < -1 || level > 9 {
			return nil, fmt.Errorf("%w: compression level %d outside -1..9", bytekit.ErrInvalidArgument, level)
		}
	}

	s := &Store{
		ns:       opts.Namespace,
		provider: opts.Provider,
		alg:      alg,
		comp:     opts.Compression,
		level:    level,
		minComp:  bytekit.Coalesce(opts.MinCompressSize, 128),
		log:      bytekit.Coalesce[bytekit.Logger](opts.Logger, bytekit.NopLogger{}),
		hooks:    bytekit.Coalesce[bytekit.Hooks](opts.Hooks, bytekit.NopHooks{}),
		ttl:      opts.DefaultTTL,
		enabled:  !opts.Disabled,
	}

	if opts.ComputeSetCost != nil {
		s.cost = opts.ComputeSetCost
	} else {
		s.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return s, nil
}

// Enabled reports whether the store accepts operations.
func (s *Store) Enabled() bool { return s.enabled }

// Close releases the provider.
func (s *Store) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

// RefOf computes the ref Put would assign to data, without storing.
func (s *Store) RefOf(data bytekit.Data) (Ref, error) {
	sum, err := digest.SumBytes(s.alg, data.Bytes())
	if err != nil {
		return Ref{}, err
	}
	return Ref{Algorithm: s.alg, Sum: sum}, nil
}

// Put stores data under its own digest and returns the ref. ttl=0
// uses the store default. When the store is disabled the ref is still
// computed (content addressing is pure) but nothing is written.
func (s *Store) Put(ctx context.Context, data bytekit.Data, ttl time.Duration) (Ref, error) {
	ref, err := s.RefOf(data)
	if err != nil {
		return Ref{}, err
	}
	if !s.enabled {
		return ref, nil
	}
	if ttl == 0 {
		ttl = s.ttl
	}

	plain := data.Bytes()
	payload := plain
	tag := compNone
	if s.comp != "" && len(plain) >= s.minComp {
		if enc, ok := s.tryCompress(data); ok {
			payload = enc
			tag, _ = compTag(s.comp)
		}
	}

	raw := wire.Encode(wire.Entry{
		Comp:    tag,
		Digest:  ref.Sum,
		Ulen:    uint32(len(plain)),
		Payload: payload,
	})

	key := s.key(ref)
	ok, err := s.provider.Set(ctx, key, raw, s.cost(ref.String(), raw), ttl)
	if err != nil {
		return Ref{}, err
	}
	if !ok {
		s.hooks.ProviderSetRejected(ref.String())
		s.log.Debug("put rejected by provider (pressure)", bytekit.Fields{"ref": ref.String()})
	}
	return ref, nil
}

// tryCompress compresses with the configured codec and reports
// whether the result is actually smaller. Incompressible data falls
// back to uncompressed storage.
func (s *Store) tryCompress(data bytekit.Data) ([]byte, bool) {
	p, err := compress.Compress(s.comp, data, s.level)
	if err != nil {
		// Level and format were validated in New; treat any residual
		// failure as incompressible rather than failing the Put.
		s.log.Warn("compression failed, storing uncompressed", bytekit.Fields{"err": err})
		return nil, false
	}
	if p.Data.Len() >= data.Len() {
		return nil, false
	}
	return p.Data.Bytes(), true
}

// Get resolves a ref. Corrupt, undecompressable, or digest-mismatched
// entries are deleted (self-heal) and reported as a miss; the caller
// re-derives and re-Puts, same as any miss.
func (s *Store) Get(ctx context.Context, ref Ref) ([]byte, bool, error) {
	if !s.enabled {
		return nil, false, nil
	}
	key := s.key(ref)
	raw, ok, err := s.provider.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	entry, err := wire.Decode(raw)
	if err != nil {
		s.selfHeal(ctx, key, ref, "corrupt")
		return nil, false, nil
	}
	// The stored digest must match the requested ref before any
	// decompression work happens.
	if !bytes.Equal(entry.Digest, ref.Sum) {
		s.selfHeal(ctx, key, ref, "digest_mismatch")
		return nil, false, nil
	}

	plain := entry.Payload
	if entry.Comp != compNone {
		f, err := compFormat(entry.Comp)
		if err != nil {
			s.selfHeal(ctx, key, ref, "corrupt")
			return nil, false, nil
		}
		buf, err := compress.DecompressRaw(f, bytekit.FromBytes(entry.Payload))
		if err != nil {
			s.selfHeal(ctx, key, ref, "decompress")
			return nil, false, nil
		}
		plain = buf.Bytes()
	}

	if len(plain) != int(entry.Ulen) {
		s.selfHeal(ctx, key, ref, "corrupt")
		return nil, false, nil
	}
	sum, err := digest.SumBytes(ref.Algorithm, plain)
	if err != nil {
		return nil, false, err
	}
	if !bytes.Equal(sum, ref.Sum) {
		s.selfHeal(ctx, key, ref, "digest_mismatch")
		return nil, false, nil
	}

	return plain, true, nil
}

// GetBuffer is Get returning an immutable buffer.
func (s *Store) GetBuffer(ctx context.Context, ref Ref) (*bytekit.Buffer, bool, error) {
	b, ok, err := s.Get(ctx, ref)
	if err != nil || !ok {
		return nil, ok, err
	}
	return bytekit.FromBytes(b), true, nil
}

// Del removes a ref (best-effort).
func (s *Store) Del(ctx context.Context, ref Ref) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.key(ref))
}

func (s *Store) selfHeal(ctx context.Context, key string, ref Ref, reason string) {
	_ = s.provider.Del(ctx, key)
	s.hooks.SelfHeal(ref.String(), reason)
	s.log.Debug("deleted invalid entry on read", bytekit.Fields{"ref": ref.String(), "reason": reason})
}

func (s *Store) key(ref Ref) string {
	// isolate by namespace
	return "blob:" + s.ns + ":" + ref.String()
}

// Compression tags stored in the entry envelope. Protocol constants;
// changing them breaks stored entries.
const (
	compNone    byte = 0
	compLZ4     byte = 1
	compDeflate byte = 2
	compZlib    byte = 3
	compGzip    byte = 4
	compZstd    byte = 5
)

func compTag(f compress.Format) (byte, error) {
	switch f {
	case compress.LZ4:
		return compLZ4, nil
	case compress.Deflate:
		return compDeflate, nil
	case compress.Zlib:
		return compZlib, nil
	case compress.Gzip:
		return compGzip, nil
	case compress.Zstd:
		return compZstd, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression format %q", bytekit.ErrInvalidArgument, f)
	}
}

func compFormat(tag byte) (compress.Format, error) {
	switch tag {
	case compLZ4:
		return compress.LZ4, nil
	case compDeflate:
		return compress.Deflate, nil
	case compZlib:
		return compress.Zlib, nil
	case compGzip:
		return compress.Gzip, nil
	case compZstd:
		return compress.Zstd, nil
	default:
		return "", fmt.Errorf("%w: unknown compression tag %d", bytekit.ErrCorruptData, tag)
	}
}
