package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/unkn0wn-root/bytekit"
)

func TestBase64RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte{0x00, 0xff, 0x10, 0x80},
	}
	for _, src := range cases {
		text, err := Encode(Base64, bytekit.FromBytes(src), 0)
		if err != nil {
			t.Fatalf("Encode(%q): %v", src, err)
		}
		out, err := Decode(Base64, text)
		if err != nil {
			t.Fatalf("Decode(%q): %v", text, err)
		}
		if !bytes.Equal(out.Bytes(), src) {
			t.Fatalf("round trip %q -> %q -> %q", src, text, out.Bytes())
		}
	}
}

func TestBase64KnownVector(t *testing.T) {
	text, err := Encode(Base64, bytekit.FromString("foobar"), 0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if text != "Zm9vYmFy" {
		t.Fatalf("Encode = %q, want Zm9vYmFy", text)
	}
}

func TestBase64LineWrapping(t *testing.T) {
	src := bytes.Repeat([]byte("a"), 100) // 136 base64 chars
	text, err := Encode(Base64, bytekit.FromBytes(src), 76)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i, line := range strings.Split(text, "\n") {
		if len(line) > 76 {
			t.Fatalf("line %d is %d chars", i, len(line))
		}
	}
	out, err := Decode(Base64, text)
	if err != nil {
		t.Fatalf("Decode wrapped: %v", err)
	}
	if !bytes.Equal(out.Bytes(), src) {
		t.Fatalf("wrapped round trip mismatch")
	}
}

func TestEncodeNegativeLineLength(t *testing.T) {
	if _, err := Encode(Base64, bytekit.FromString("x"), -1); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestBase64BadInput(t *testing.T) {
	for _, in := range []string{"!!!!", "Zm9v YmFy", "Zm9"} {
		if _, err := Decode(Base64, in); !errors.Is(err, bytekit.ErrMalformedInput) {
			t.Fatalf("Decode(%q) err = %v, want ErrMalformedInput", in, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	src := []byte{0x00, 0x01, 0xab, 0xff}
	text, err := Encode(Hex, bytekit.FromBytes(src), 0)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if text != "0001abff" {
		t.Fatalf("Encode = %q, want 0001abff", text)
	}
	out, err := Decode(Hex, text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), src) {
		t.Fatalf("round trip mismatch: %v", out.Bytes())
	}
}

func TestHexUppercaseAccepted(t *testing.T) {
	out, err := Decode(Hex, "ABFF")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out.Bytes(), []byte{0xab, 0xff}) {
		t.Fatalf("Decode = %v", out.Bytes())
	}
}

func TestHexBadInput(t *testing.T) {
	for _, in := range []string{"abc", "zz", "0g"} {
		if _, err := Decode(Hex, in); !errors.Is(err, bytekit.ErrMalformedInput) {
			t.Fatalf("Decode(%q) err = %v, want ErrMalformedInput", in, err)
		}
	}
}

func TestUnknownEncodingFormat(t *testing.T) {
	if _, err := Encode(Format("base32"), bytekit.FromString("x"), 0); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("Encode err = %v", err)
	}
	if _, err := Decode(Format("base32"), "x"); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("Decode err = %v", err)
	}
}
