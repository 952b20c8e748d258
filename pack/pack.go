package pack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/unkn0wn-root/bytekit"
)

// FieldError reports which field of a format a pack/unpack call failed
// on. Index is the zero-based field position (padding fields count);
// Desc is the field descriptor as written, e.g. "i4" or "z".
type FieldError struct {
	Index int
	Desc  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d (%s): %v", e.Index, e.Desc, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(i int, f field, err error) error {
	return &FieldError{Index: i, Desc: f.desc(), Err: err}
}

// desc renders the descriptor letter (plus width where the grammar
// carries one) for diagnostics.
func (f field) desc() string {
	switch f.kind {
	case fieldInt:
		switch f.width {
		case 1:
			return "b"
		case 2:
			return "h"
		case 8:
			return "l"
		default:
			return fmt.Sprintf("i%d", f.width)
		}
	case fieldUint:
		switch f.width {
		case 1:
			return "B"
		case 2:
			return "H"
		case 8:
			return "L"
		default:
			return fmt.Sprintf("I%d", f.width)
		}
	case fieldFloat:
		if f.width == 4 {
			return "f"
		}
		return "d"
	case fieldFixedText:
		return fmt.Sprintf("c%d", f.width)
	case fieldZeroText:
		return "z"
	case fieldLenText:
		return fmt.Sprintf("s%d", f.width)
	case fieldPad:
		return "x"
	default:
		return "?"
	}
}

// Pack encodes values according to the format string and returns the
// encoded bytes as a buffer. The value count must match the format's
// field count exactly (ErrArityMismatch); each value's kind must match
// its field descriptor and fit the field width (ErrTypeMismatch,
// wrapped in a FieldError naming the position).
func Pack(format string, values ...Value) (*bytekit.Buffer, error) {
	s, err := ParseSpec(format)
	if err != nil {
		return nil, err
	}
	return s.Pack(values...)
}

// Pack is the method form for a pre-parsed spec.
func (s *Spec) Pack(values ...Value) (*bytekit.Buffer, error) {
	if want := s.NumValues(); len(values) != want {
		return nil, fmt.Errorf("%w: format %q wants %d values, got %d",
			bytekit.ErrArityMismatch, s.format, want, len(values))
	}

	var out bytes.Buffer
	out.Grow(s.fixedSize)

	vi := 0
	var scratch [8]byte
	for i, f := range s.fields {
		if f.kind == fieldPad {
			out.WriteByte(0)
			continue
		}
		v := values[vi]
		vi++

		switch f.kind {
		case fieldInt, fieldUint:
			raw, err := integerBits(f, v)
			if err != nil {
				return nil, fieldErr(i, f, err)
			}
			putUint(scratch[:f.width], f.order, raw)
			out.Write(scratch[:f.width])

		case fieldFloat:
			fv, err := floatValue(v)
			if err != nil {
				return nil, fieldErr(i, f, err)
			}
			if f.width == 4 {
				putUint(scratch[:4], f.order, uint64(math.Float32bits(float32(fv))))
			} else {
				putUint(scratch[:8], f.order, math.Float64bits(fv))
			}
			out.Write(scratch[:f.width])

		case fieldFixedText:
			if v.kind != KindText {
				return nil, fieldErr(i, f, kindErr(KindText, v))
			}
			if len(v.text) > f.width {
				return nil, fieldErr(i, f, fmt.Errorf("%w: string of %d bytes in a %d-byte field",
					bytekit.ErrTypeMismatch, len(v.text), f.width))
			}
			out.WriteString(v.text)
			for p := len(v.text); p < f.width; p++ {
				out.WriteByte(0)
			}

		case fieldZeroText:
			if v.kind != KindText {
				return nil, fieldErr(i, f, kindErr(KindText, v))
			}
			if strings.IndexByte(v.text, 0) >= 0 {
				return nil, fieldErr(i, f, fmt.Errorf("%w: zero-terminated string contains a zero byte",
					bytekit.ErrTypeMismatch))
			}
			out.WriteString(v.text)
			out.WriteByte(0)

		case fieldLenText:
			if v.kind != KindText {
				return nil, fieldErr(i, f, kindErr(KindText, v))
			}
			if f.width < 8 && uint64(len(v.text)) > maxUint(f.width) {
				return nil, fieldErr(i, f, fmt.Errorf("%w: string of %d bytes does not fit a %d-byte length prefix",
					bytekit.ErrTypeMismatch, len(v.text), f.width))
			}
			putUint(scratch[:f.width], f.order, uint64(len(v.text)))
			out.Write(scratch[:f.width])
			out.WriteString(v.text)
		}
	}

	return bytekit.FromBytes(out.Bytes()), nil
}

func kindErr(want Kind, got Value) error {
	return fmt.Errorf("%w: field wants %s, value is %s", bytekit.ErrTypeMismatch, want, got.kind)
}

// integerBits validates an integer value against a field descriptor
// and returns its two's-complement bit pattern, ready to truncate to
// the field width.
func integerBits(f field, v Value) (uint64, error) {
	switch v.kind {
	case KindInt:
		n := v.AsInt()
		if f.kind == fieldUint {
			if n < 0 {
				return 0, fmt.Errorf("%w: negative value %d in unsigned field", bytekit.ErrTypeMismatch, n)
			}
			if f.width < 8 && uint64(n) > maxUint(f.width) {
				return 0, rangeErr(v, f)
			}
			return uint64(n), nil
		}
		if f.width < 8 && (n < minInt(f.width) || n > maxInt(f.width)) {
			return 0, rangeErr(v, f)
		}
		return uint64(n), nil

	case KindUint:
		u := v.AsUint()
		var limit uint64
		if f.kind == fieldUint {
			limit = maxUint(f.width)
		} else {
			limit = uint64(math.MaxInt64)
			if f.width < 8 {
				limit = uint64(maxInt(f.width))
			}
		}
		if u > limit {
			return 0, rangeErr(v, f)
		}
		return u, nil

	default:
		return 0, fmt.Errorf("%w: field wants an integer, value is %s", bytekit.ErrTypeMismatch, v.kind)
	}
}

// floatValue accepts Float directly and widens Int/Uint; everything
// else is a kind mismatch.
func floatValue(v Value) (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.AsFloat(), nil
	case KindInt:
		return float64(v.AsInt()), nil
	case KindUint:
		return float64(v.AsUint()), nil
	default:
		return 0, fmt.Errorf("%w: field wants a float, value is %s", bytekit.ErrTypeMismatch, v.kind)
	}
}

func rangeErr(v Value, f field) error {
	return fmt.Errorf("%w: value %s does not fit field %s", bytekit.ErrTypeMismatch, v, f.desc())
}

// maxUint/maxInt/minInt give the value range of a w-byte field,
// w in 1..8.
func maxUint(w int) uint64 {
	if w >= 8 {
		return math.MaxUint64
	}
	return 1<<(8*w) - 1
}

func maxInt(w int) int64 { return int64(1)<<(8*w-1) - 1 }
func minInt(w int) int64 { return -(int64(1) << (8*w - 1)) }

// putUint writes the low w bytes of v into dst (len(dst) = w) in the
// given byte order. Widths are 1, 2, 4 or 8 by construction.
func putUint(dst []byte, order binary.ByteOrder, v uint64) {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		order.PutUint16(dst, uint16(v))
	case 4:
		order.PutUint32(dst, uint32(v))
	case 8:
		order.PutUint64(dst, v)
	}
}
