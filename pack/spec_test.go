package pack

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/bytekit"
)

func TestPackedSize(t *testing.T) {
	cases := []struct {
		format string
		want   int
	}{
		{"", 0},
		{"b", 1},
		{"B", 1},
		{"h", 2},
		{"H", 2},
		{"l", 8},
		{"L", 8},
		{"i", 4},
		{"i1", 1},
		{"i2", 2},
		{"i4", 4},
		{"i8", 8},
		{"I4", 4},
		{"f", 4},
		{"d", 8},
		{"n", 8},
		{"x", 1},
		{"c5", 5},
		{"i4i4", 8},
		{"<i4 >i4", 8},
		{"bhlx c3", 1 + 2 + 8 + 1 + 3},
		{"=i2I2f", 2 + 2 + 4},
	}
	for _, tc := range cases {
		got, err := PackedSize(tc.format)
		if err != nil {
			t.Fatalf("PackedSize(%q): %v", tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("PackedSize(%q) = %d, want %d", tc.format, got, tc.want)
		}
	}
}

func TestPackedSizeVariable(t *testing.T) {
	for _, format := range []string{"z", "s", "s4", "i4z", "c2s1"} {
		if _, err := PackedSize(format); !errors.Is(err, bytekit.ErrInvalidFormat) {
			t.Fatalf("PackedSize(%q) err = %v, want ErrInvalidFormat", format, err)
		}
	}
}

func TestParseSpecRejects(t *testing.T) {
	cases := []struct {
		name   string
		format string
	}{
		{"unknown letter", "q"},
		{"bad int width", "i3"},
		{"bad int width 16", "i16"},
		{"bad prefix width", "s3"},
		{"c without size", "c"},
		{"c oversized", "c99999999"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSpec(tc.format); !errors.Is(err, bytekit.ErrInvalidFormat) {
				t.Fatalf("ParseSpec(%q) err = %v, want ErrInvalidFormat", tc.format, err)
			}
		})
	}
}

func TestNumValues(t *testing.T) {
	cases := []struct {
		format string
		want   int
	}{
		{"", 0},
		{"x", 0},
		{"i4", 1},
		{"i4xz", 2},
		{"bhl fdn c2 z s4", 8},
	}
	for _, tc := range cases {
		s, err := ParseSpec(tc.format)
		if err != nil {
			t.Fatalf("ParseSpec(%q): %v", tc.format, err)
		}
		if got := s.NumValues(); got != tc.want {
			t.Fatalf("NumValues(%q) = %d, want %d", tc.format, got, tc.want)
		}
	}
}

func TestSpecReuse(t *testing.T) {
	s, err := ParseSpec("<i4")
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	if s.Format() != "<i4" {
		t.Fatalf("Format = %q", s.Format())
	}
	for i := 0; i < 3; i++ {
		b, err := s.Pack(Int(7))
		if err != nil {
			t.Fatalf("Pack: %v", err)
		}
		vs, _, err := s.Unpack(b, 1)
		if err != nil {
			t.Fatalf("Unpack: %v", err)
		}
		if vs[0].AsInt() != 7 {
			t.Fatalf("round trip = %d", vs[0].AsInt())
		}
	}
}
