// Package encode implements reversible binary-to-text transforms:
// standard base64 (with optional line wrapping) and lowercase hex.
//
// Round-trip law: Decode(f, Encode(f, b, 0)) returns b for every byte
// sequence b and both formats.
package encode

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/unkn0wn-root/bytekit"
)

// Format selects a text encoding.
type Format string

const (
	// Base64 is standard (RFC 4648) base64 with padding.
	Base64 Format = "base64"

	// Hex is lowercase hexadecimal, two characters per byte.
	Hex Format = "hex"
)

// Encode renders src as text. lineLength > 0 inserts a newline every
// lineLength characters of base64 output; 0 disables wrapping. The
// parameter has no meaning for hex and is ignored there. Negative
// lineLength fails with ErrInvalidArgument.
func Encode(f Format, src bytekit.Data, lineLength int) (string, error) {
	if lineLength < 0 {
		return "", fmt.Errorf("%w: negative line length %d", bytekit.ErrInvalidArgument, lineLength)
	}
	switch f {
	case Base64:
		return wrap(base64.StdEncoding.EncodeToString(src.Bytes()), lineLength), nil
	case Hex:
		return hex.EncodeToString(src.Bytes()), nil
	default:
		return "", fmt.Errorf("%w: unknown encoding format %q", bytekit.ErrInvalidArgument, f)
	}
}

// Decode reverses Encode. Characters outside the format's alphabet and
// odd-length hex fail with ErrMalformedInput. Base64 input may contain
// the line breaks Encode inserts.
func Decode(f Format, text string) (*bytekit.Buffer, error) {
	switch f {
	case Base64:
		// Strip the wrapping Encode may have added; anything else
		// foreign still fails below.
		clean := strings.NewReplacer("\n", "", "\r", "").Replace(text)
		b, err := base64.StdEncoding.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bytekit.ErrMalformedInput, err)
		}
		return bytekit.FromBytes(b), nil

	case Hex:
		if len(text)%2 != 0 {
			return nil, fmt.Errorf("%w: odd-length hex string", bytekit.ErrMalformedInput)
		}
		b, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", bytekit.ErrMalformedInput, err)
		}
		return bytekit.FromBytes(b), nil

	default:
		return nil, fmt.Errorf("%w: unknown encoding format %q", bytekit.ErrInvalidArgument, f)
	}
}

// wrap inserts a newline every n characters. n=0 returns s unchanged.
func wrap(s string, n int) string {
	if n == 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for len(s) > n {
		b.WriteString(s[:n])
		b.WriteByte('\n')
		s = s[n:]
	}
	b.WriteString(s)
	return b.String()
}
