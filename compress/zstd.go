package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/unkn0wn-root/bytekit"
)

// Encoders and the decoder are created once and shared: zstd.Encoder
// and zstd.Decoder are safe for concurrent use, and per-call
// construction is the dominant cost for small payloads. One encoder
// exists per level bucket (-1..9 collapse onto zstd's speed tiers).
var (
	zstdEncoders [11]*zstd.Encoder // index = level + 1
	zstdDecoder  *zstd.Decoder
)

func init() {
	for level := -1; level <= 9; level++ {
		el := zstd.SpeedDefault
		if level >= 0 {
			el = zstd.EncoderLevelFromZstd(level)
		}
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(el))
		if err != nil {
			panic("bytekit/compress: zstd encoder initialization failed: " + err.Error())
		}
		zstdEncoders[level+1] = enc
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic("bytekit/compress: zstd decoder initialization failed: " + err.Error())
	}
	zstdDecoder = dec
}

type zstdCodec struct{}

func (zstdCodec) compress(src []byte, level int) ([]byte, error) {
	return zstdEncoders[level+1].EncodeAll(src, nil), nil
}

func (zstdCodec) decompress(src []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bytekit.ErrCorruptData, err)
	}
	return out, nil
}
