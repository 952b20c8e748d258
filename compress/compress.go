// Package compress implements the format-tagged compression codecs:
// lz4 block compression, the DEFLATE family (raw deflate, zlib, gzip),
// and zstd. Each call processes one complete in-memory payload; there
// is no streaming contract at this layer.
//
// The codec table is built once at package init and never mutated, so
// all functions are safe for unsynchronized concurrent use.
package compress

import (
	"fmt"

	"github.com/unkn0wn-root/bytekit"
)

// Format selects a compression codec. The tag travels with the
// compressed bytes (Payload) and must match the codec used to
// decompress.
type Format string

const (
	// LZ4 is block-mode LZ4 inside a minimal container: a 4-byte
	// little-endian uncompressed size, a stored/compressed flag byte,
	// then either the LZ4 block or the original bytes (stored fallback
	// for incompressible input).
	LZ4 Format = "lz4"

	// Deflate is a raw DEFLATE stream with no header or checksum.
	Deflate Format = "deflate"

	// Zlib is DEFLATE with the zlib header and Adler-32 checksum.
	Zlib Format = "zlib"

	// Gzip is DEFLATE with the gzip header and CRC-32 checksum.
	Gzip Format = "gzip"

	// Zstd is a zstandard frame.
	Zstd Format = "zstd"
)

// DefaultLevel selects each codec's own default compression level.
const DefaultLevel = -1

// Payload is a compressed byte sequence tagged with the format that
// produced it.
type Payload struct {
	Format Format
	Data   *bytekit.Buffer
}

// codec is one registered algorithm. compress receives a validated
// level in -1..9; decompress must never read past its input and must
// report corruption instead of trusting embedded lengths.
type codec interface {
	compress(src []byte, level int) ([]byte, error)
	decompress(src []byte) ([]byte, error)
}

// codecs is the read-only format registry, populated here and never
// written again.
var codecs = map[Format]codec{
	LZ4:     lz4Codec{},
	Deflate: deflateCodec{},
	Zlib:    zlibCodec{},
	Gzip:    gzipCodec{},
	Zstd:    zstdCodec{},
}

// Formats returns the registered format tags.
func Formats() []Format {
	out := make([]Format, 0, len(codecs))
	for f := range codecs {
		out = append(out, f)
	}
	return out
}

// Compress compresses src with the selected format. level ranges -1..9
// inclusive; -1 means the codec default. Levels outside the range are
// rejected with ErrInvalidArgument (not clamped), so a caller bug in
// level arithmetic fails loudly instead of silently changing ratios.
func Compress(f Format, src bytekit.Data, level int) (Payload, error) {
	c, ok := codecs[f]
	if !ok {
		return Payload{}, fmt.Errorf("%w: unknown compression format %q", bytekit.ErrInvalidArgument, f)
	}
	if level < -1 || level > 9 {
		return Payload{}, fmt.Errorf("%w: compression level %d outside -1..9", bytekit.ErrInvalidArgument, level)
	}
	out, err := c.compress(src.Bytes(), level)
	if err != nil {
		return Payload{}, fmt.Errorf("compress %s: %w", f, err)
	}
	return Payload{Format: f, Data: bytekit.FromBytes(out)}, nil
}

// Decompress reverses Compress using the payload's own format tag.
func Decompress(p Payload) (*bytekit.Buffer, error) {
	if p.Data == nil {
		return nil, fmt.Errorf("%w: payload has no data", bytekit.ErrInvalidArgument)
	}
	return DecompressRaw(p.Format, p.Data)
}

// DecompressRaw decompresses bytes known to be in the given format.
// Headers are validated before any embedded length is trusted; corrupt
// or truncated input fails with ErrCorruptData.
func DecompressRaw(f Format, src bytekit.Data) (*bytekit.Buffer, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: unknown compression format %q", bytekit.ErrInvalidArgument, f)
	}
	out, err := c.decompress(src.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", f, err)
	}
	return bytekit.FromBytes(out), nil
}
