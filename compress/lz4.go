package compress

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/unkn0wn-root/bytekit"
)

// lz4 container layout:
//
//	ulen(u32 le) | stored(1) | body
//
// stored=0 means body is a single LZ4 block of ulen decompressed
// bytes; stored=1 means body is the original ulen bytes verbatim
// (block compression did not shrink the input).
const (
	lz4HeaderSize = 4 + 1

	lz4Compressed byte = 0
	lz4Stored     byte = 1

	// lz4MaxSize caps the declared uncompressed size. A corrupt or
	// hostile header must not make us allocate unbounded memory.
	lz4MaxSize = 1 << 30
)

// hcLevels maps levels 1..9 to LZ4 HC depths. Levels -1 and 0 use the
// fast block compressor.
var hcLevels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

type lz4Codec struct{}

func (lz4Codec) compress(src []byte, level int) ([]byte, error) {
	if len(src) > lz4MaxSize {
		return nil, fmt.Errorf("%w: input of %d bytes exceeds lz4 limit", bytekit.ErrInvalidArgument, len(src))
	}

	bound := lz4.CompressBlockBound(len(src))
	out := make([]byte, lz4HeaderSize+bound)
	binary.LittleEndian.PutUint32(out[:4], uint32(len(src)))

	var (
		written int
		err     error
	)
	if level <= 0 {
		written, err = lz4.CompressBlock(src, out[lz4HeaderSize:], nil)
	} else {
		written, err = lz4.CompressBlockHC(src, out[lz4HeaderSize:], hcLevels[level-1], nil, nil)
	}
	if err != nil {
		return nil, err
	}

	// CompressBlock returns 0 for incompressible input. Store the
	// original bytes so decompression stays format-uniform.
	if written == 0 || written >= len(src) {
		out[4] = lz4Stored
		return append(out[:lz4HeaderSize], src...), nil
	}
	out[4] = lz4Compressed
	return out[:lz4HeaderSize+written], nil
}

func (lz4Codec) decompress(src []byte) ([]byte, error) {
	if len(src) < lz4HeaderSize {
		return nil, fmt.Errorf("%w: lz4 container shorter than header", bytekit.ErrCorruptData)
	}
	ulen := binary.LittleEndian.Uint32(src[:4])
	if ulen > lz4MaxSize {
		return nil, fmt.Errorf("%w: lz4 declared size %d exceeds limit", bytekit.ErrCorruptData, ulen)
	}
	body := src[lz4HeaderSize:]

	switch src[4] {
	case lz4Stored:
		if len(body) != int(ulen) {
			return nil, fmt.Errorf("%w: lz4 stored body is %d bytes, header says %d", bytekit.ErrCorruptData, len(body), ulen)
		}
		out := make([]byte, ulen)
		copy(out, body)
		return out, nil

	case lz4Compressed:
		out := make([]byte, ulen)
		read, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bytekit.ErrCorruptData, err)
		}
		if read != int(ulen) {
			return nil, fmt.Errorf("%w: lz4 block decoded to %d bytes, header says %d", bytekit.ErrCorruptData, read, ulen)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: lz4 container flag %#x", bytekit.ErrCorruptData, src[4])
	}
}
