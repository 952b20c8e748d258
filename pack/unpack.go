package pack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/unkn0wn-root/bytekit"
)

// Unpack decodes values from src according to the format string,
// starting at the given 1-based position. Negative positions count
// from the end of the buffer (-1 is the last byte). It returns the
// decoded values and the 1-based position just past the last consumed
// byte; a field that would read past the end fails with ErrOutOfRange.
func Unpack(format string, src bytekit.Data, pos int) ([]Value, int, error) {
	s, err := ParseSpec(format)
	if err != nil {
		return nil, 0, err
	}
	return s.Unpack(src, pos)
}

// Unpack is the method form for a pre-parsed spec.
func (s *Spec) Unpack(src bytekit.Data, pos int) ([]Value, int, error) {
	data := src.Bytes()

	off, err := startOffset(pos, len(data))
	if err != nil {
		return nil, 0, err
	}

	values := make([]Value, 0, s.NumValues())
	for i, f := range s.fields {
		switch f.kind {
		case fieldPad:
			if err := need(data, off, 1); err != nil {
				return nil, 0, fieldErr(i, f, err)
			}
			off++

		case fieldInt, fieldUint:
			if err := need(data, off, f.width); err != nil {
				return nil, 0, fieldErr(i, f, err)
			}
			raw := getUint(data[off:off+f.width], f.order)
			off += f.width
			if f.kind == fieldInt {
				values = append(values, Int(signExtend(raw, f.width)))
			} else {
				values = append(values, Uint(raw))
			}

		case fieldFloat:
			if err := need(data, off, f.width); err != nil {
				return nil, 0, fieldErr(i, f, err)
			}
			raw := getUint(data[off:off+f.width], f.order)
			off += f.width
			if f.width == 4 {
				values = append(values, Float(float64(math.Float32frombits(uint32(raw)))))
			} else {
				values = append(values, Float(math.Float64frombits(raw)))
			}

		case fieldFixedText:
			if err := need(data, off, f.width); err != nil {
				return nil, 0, fieldErr(i, f, err)
			}
			values = append(values, Text(string(data[off:off+f.width])))
			off += f.width

		case fieldZeroText:
			end := bytes.IndexByte(data[off:], 0)
			if end < 0 {
				return nil, 0, fieldErr(i, f, fmt.Errorf("%w: unterminated string", bytekit.ErrOutOfRange))
			}
			values = append(values, Text(string(data[off:off+end])))
			off += end + 1

		case fieldLenText:
			if err := need(data, off, f.width); err != nil {
				return nil, 0, fieldErr(i, f, err)
			}
			ln := getUint(data[off:off+f.width], f.order)
			off += f.width
			if ln > uint64(len(data)-off) {
				return nil, 0, fieldErr(i, f, fmt.Errorf("%w: declared string length %d exceeds remaining %d bytes",
					bytekit.ErrOutOfRange, ln, len(data)-off))
			}
			values = append(values, Text(string(data[off:off+int(ln)])))
			off += int(ln)
		}
	}

	return values, off + 1, nil
}

// startOffset translates a 1-based (possibly negative) position into a
// 0-based offset. Valid positions are 1..len+1 after normalization;
// len+1 is legal and means "at the end" (only zero-size formats can
// succeed from there).
func startOffset(pos, length int) (int, error) {
	p := pos
	if p < 0 {
		p = length + p + 1
	}
	if p < 1 || p > length+1 {
		return 0, fmt.Errorf("%w: start position %d in a %d-byte buffer", bytekit.ErrOutOfRange, pos, length)
	}
	return p - 1, nil
}

// need checks that w more bytes exist at off.
func need(data []byte, off, w int) error {
	if w > len(data)-off {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", bytekit.ErrOutOfRange, w, off, len(data)-off)
	}
	return nil
}

// getUint reads len(b) bytes (1, 2, 4 or 8) in the given order.
func getUint(b []byte, order binary.ByteOrder) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	default:
		return order.Uint64(b)
	}
}

// signExtend interprets the low w bytes of raw as a signed two's
// complement integer.
func signExtend(raw uint64, w int) int64 {
	if w >= 8 {
		return int64(raw)
	}
	shift := 64 - 8*w
	return int64(raw<<shift) >> shift
}
