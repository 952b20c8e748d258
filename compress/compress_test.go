package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/unkn0wn-root/bytekit"
)

// compressible but not trivially so
func testPayload() []byte {
	var b bytes.Buffer
	for i := 0; i < 200; i++ {
		b.WriteString("the quick brown fox jumps over the lazy dog ")
		b.WriteByte(byte(i))
	}
	return b.Bytes()
}

func TestRoundTripAllFormats(t *testing.T) {
	src := testPayload()
	for _, f := range Formats() {
		for level := -1; level <= 9; level++ {
			p, err := Compress(f, bytekit.FromBytes(src), level)
			if err != nil {
				t.Fatalf("%s level %d: Compress: %v", f, level, err)
			}
			if p.Format != f {
				t.Fatalf("%s: payload tagged %q", f, p.Format)
			}
			out, err := Decompress(p)
			if err != nil {
				t.Fatalf("%s level %d: Decompress: %v", f, level, err)
			}
			if !bytes.Equal(out.Bytes(), src) {
				t.Fatalf("%s level %d: round trip mismatch", f, level)
			}
		}
	}
}

func TestRoundTripEmpty(t *testing.T) {
	for _, f := range Formats() {
		p, err := Compress(f, bytekit.FromBytes(nil), DefaultLevel)
		if err != nil {
			t.Fatalf("%s: Compress empty: %v", f, err)
		}
		out, err := Decompress(p)
		if err != nil {
			t.Fatalf("%s: Decompress empty: %v", f, err)
		}
		if out.Len() != 0 {
			t.Fatalf("%s: empty round trip yielded %d bytes", f, out.Len())
		}
	}
}

func TestCompressLevelRejected(t *testing.T) {
	src := bytekit.FromString("data")
	for _, level := range []int{-2, 10, 100} {
		if _, err := Compress(Zlib, src, level); !errors.Is(err, bytekit.ErrInvalidArgument) {
			t.Fatalf("level %d err = %v, want ErrInvalidArgument", level, err)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := Compress(Format("snappy"), bytekit.FromString("x"), -1); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("Compress unknown err = %v", err)
	}
	if _, err := DecompressRaw(Format("snappy"), bytekit.FromString("x")); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("DecompressRaw unknown err = %v", err)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	junk := bytekit.FromBytes([]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02})
	for _, f := range []Format{Zlib, Gzip, Zstd} {
		if _, err := DecompressRaw(f, junk); !errors.Is(err, bytekit.ErrCorruptData) {
			t.Fatalf("%s junk err = %v, want ErrCorruptData", f, err)
		}
	}
}

func TestDecompressTruncated(t *testing.T) {
	src := testPayload()
	for _, f := range Formats() {
		p, err := Compress(f, bytekit.FromBytes(src), DefaultLevel)
		if err != nil {
			t.Fatalf("%s: Compress: %v", f, err)
		}
		enc := p.Data.Bytes()
		cut := bytekit.FromBytes(enc[:len(enc)/2])
		if _, err := DecompressRaw(f, cut); !errors.Is(err, bytekit.ErrCorruptData) {
			t.Fatalf("%s truncated err = %v, want ErrCorruptData", f, err)
		}
	}
}

func TestLZ4StoredFallback(t *testing.T) {
	// 16 random-ish bytes cannot be shrunk by lz4; the container must
	// fall back to stored mode and still round trip.
	src := []byte{9, 41, 250, 3, 77, 128, 200, 15, 6, 90, 31, 240, 99, 1, 182, 55}
	p, err := Compress(LZ4, bytekit.FromBytes(src), 9)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	out, err := Decompress(p)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(out.Bytes(), src) {
		t.Fatalf("stored fallback mismatch: %v", out.Bytes())
	}
}

func TestLZ4HeaderValidation(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{"too short", []byte{1, 0, 0}},
		{"bad flag", []byte{4, 0, 0, 0, 9, 'a', 'b', 'c', 'd'}},
		{"stored length mismatch", []byte{4, 0, 0, 0, 1, 'a', 'b'}},
		{"declared size too large", []byte{0xff, 0xff, 0xff, 0x7f, 0, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecompressRaw(LZ4, bytekit.FromBytes(tc.in)); !errors.Is(err, bytekit.ErrCorruptData) {
				t.Fatalf("err = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestViewCompresses(t *testing.T) {
	// Transforms accept views without copying through a buffer first.
	b := bytekit.FromBytes(testPayload())
	v, err := b.View(10, 500)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	p, err := Compress(Gzip, v, DefaultLevel)
	if err != nil {
		t.Fatalf("Compress view: %v", err)
	}
	out, err := Decompress(p)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(out.Bytes(), v.Bytes()) {
		t.Fatalf("view round trip mismatch")
	}
}
