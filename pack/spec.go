package pack

import (
	"encoding/binary"
	"fmt"

	"github.com/unkn0wn-root/bytekit"
)

// fieldKind classifies a parsed field descriptor.
type fieldKind uint8

const (
	fieldInt fieldKind = iota + 1
	fieldUint
	fieldFloat
	fieldFixedText // cN
	fieldZeroText  // z
	fieldLenText   // sN
	fieldPad       // x
)

// field is one descriptor from a format string. width is the byte
// width for integers and floats, the exact length for cN, and the
// length-prefix width for sN.
type field struct {
	kind  fieldKind
	width int
	order binary.ByteOrder
}

// takesValue reports whether the field consumes one caller value on
// pack and yields one on unpack. Padding does neither.
func (f field) takesValue() bool { return f.kind != fieldPad }

// Spec is a parsed format string: an ordered field sequence. Purely
// descriptive, carries no data, safe to reuse concurrently.
type Spec struct {
	format string
	fields []field

	fixedSize int
	variable  bool // contains z or s fields
}

// Format returns the source format string.
func (s *Spec) Format() string { return s.format }

// NumValues returns how many values Pack consumes (and Unpack yields)
// for this spec.
func (s *Spec) NumValues() int {
	n := 0
	for _, f := range s.fields {
		if f.takesValue() {
			n++
		}
	}
	return n
}

// ParseSpec parses a format string. Unknown letters, bad widths, and
// malformed counts fail with ErrInvalidFormat.
func ParseSpec(format string) (*Spec, error) {
	s := &Spec{format: format}
	order := binary.ByteOrder(binary.NativeEndian)

	for i := 0; i < len(format); {
		c := format[i]
		i++
		switch c {
		case ' ':
			// separator, ignored
		case '<':
			order = binary.LittleEndian
		case '>':
			order = binary.BigEndian
		case '=':
			order = binary.NativeEndian

		case 'b', 'B':
			s.add(field{kind: intKind(c == 'b'), width: 1, order: order})
		case 'h', 'H':
			s.add(field{kind: intKind(c == 'h'), width: 2, order: order})
		case 'l', 'L':
			s.add(field{kind: intKind(c == 'l'), width: 8, order: order})

		case 'i', 'I':
			n, rest, err := optionalWidth(format, i, 4)
			if err != nil {
				return nil, err
			}
			i = rest
			s.add(field{kind: intKind(c == 'i'), width: n, order: order})

		case 'f':
			s.add(field{kind: fieldFloat, width: 4, order: order})
		case 'd', 'n':
			s.add(field{kind: fieldFloat, width: 8, order: order})

		case 'c':
			n, rest, ok := digits(format, i)
			if !ok {
				return nil, fmt.Errorf("%w: 'c' needs an explicit size in %q", bytekit.ErrInvalidFormat, format)
			}
			if n > maxFixedText {
				return nil, fmt.Errorf("%w: 'c%d' exceeds the fixed-string limit", bytekit.ErrInvalidFormat, n)
			}
			i = rest
			s.add(field{kind: fieldFixedText, width: n, order: order})

		case 'z':
			s.add(field{kind: fieldZeroText, order: order})

		case 's':
			n, rest, err := optionalWidth(format, i, 8)
			if err != nil {
				return nil, err
			}
			i = rest
			s.add(field{kind: fieldLenText, width: n, order: order})

		case 'x':
			s.add(field{kind: fieldPad, width: 1, order: order})

		default:
			return nil, fmt.Errorf("%w: unknown format character %q in %q", bytekit.ErrInvalidFormat, string(c), format)
		}
	}
	return s, nil
}

// maxFixedText caps cN sizes so a typo cannot demand a gigabyte field.
const maxFixedText = 1 << 24

func intKind(signed bool) fieldKind {
	if signed {
		return fieldInt
	}
	return fieldUint
}

func (s *Spec) add(f field) {
	s.fields = append(s.fields, f)
	switch f.kind {
	case fieldZeroText, fieldLenText:
		s.variable = true
	default:
		s.fixedSize += f.width
	}
}

// digits reads a decimal run starting at i. ok is false when there is
// none.
func digits(format string, i int) (n, next int, ok bool) {
	start := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		n = n*10 + int(format[i]-'0')
		if n > maxFixedText {
			// keep consuming digits; caller rejects the size
			n = maxFixedText + 1
		}
		i++
	}
	return n, i, i > start
}

// optionalWidth reads an optional integer width (1, 2, 4 or 8) after
// an i/I/s letter, returning def when absent.
func optionalWidth(format string, i, def int) (n, next int, err error) {
	n, next, ok := digits(format, i)
	if !ok {
		return def, i, nil
	}
	switch n {
	case 1, 2, 4, 8:
		return n, next, nil
	default:
		return 0, 0, fmt.Errorf("%w: integer width %d (want 1, 2, 4 or 8) in %q", bytekit.ErrInvalidFormat, n, format)
	}
}

// PackedSize returns the exact byte length a format encodes to,
// without needing values. Formats with variable-size fields (z, sN)
// have no data-independent size and fail with ErrInvalidFormat.
func PackedSize(format string) (int, error) {
	s, err := ParseSpec(format)
	if err != nil {
		return 0, err
	}
	return s.PackedSize()
}

// PackedSize is the method form for a pre-parsed spec.
func (s *Spec) PackedSize() (int, error) {
	if s.variable {
		return 0, fmt.Errorf("%w: %q contains variable-size fields", bytekit.ErrInvalidFormat, s.format)
	}
	return s.fixedSize, nil
}
