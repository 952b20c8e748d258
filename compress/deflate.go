package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/unkn0wn-root/bytekit"
)

// The DEFLATE family shares one stream body and differs only in
// framing: deflate is headerless, zlib adds a 2-byte header and
// Adler-32 trailer, gzip adds a 10-byte header and CRC-32 trailer.
// Levels -1..9 map directly onto the flate levels.

type deflateCodec struct{}

func (deflateCodec) compress(src []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	return finishStream(&buf, w, src)
}

func (deflateCodec) decompress(src []byte) ([]byte, error) {
	return readStream(flate.NewReader(bytes.NewReader(src)), nil)
}

type zlibCodec struct{}

func (zlibCodec) compress(src []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	return finishStream(&buf, w, src)
}

func (zlibCodec) decompress(src []byte) ([]byte, error) {
	// NewReader validates the zlib header before any data is read;
	// a bad method/check field fails here, not mid-stream.
	r, err := zlib.NewReader(bytes.NewReader(src))
	return readStream(r, err)
}

type gzipCodec struct{}

func (gzipCodec) compress(src []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	return finishStream(&buf, w, src)
}

func (gzipCodec) decompress(src []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	return readStream(r, err)
}

// finishStream writes src through a framing writer and returns the
// framed bytes.
func finishStream(buf *bytes.Buffer, w io.WriteCloser, src []byte) ([]byte, error) {
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readStream drains a framing reader, mapping every failure (bad
// header, truncated stream, checksum mismatch) to ErrCorruptData.
func readStream(r io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bytekit.ErrCorruptData, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bytekit.ErrCorruptData, err)
	}
	return out, nil
}
