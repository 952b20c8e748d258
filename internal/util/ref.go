package util

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FormatRef renders a content reference as "<algorithm>:<hex digest>",
// the canonical form used in keys, logs and hook events.
func FormatRef(algorithm string, sum []byte) string {
	return algorithm + ":" + hex.EncodeToString(sum)
}

// ParseRef splits a "<algorithm>:<hex digest>" reference. Digest
// length is not validated here; the store checks it against the
// algorithm's documented size.
func ParseRef(ref string) (algorithm string, sum []byte, err error) {
	algorithm, hexSum, ok := strings.Cut(ref, ":")
	if !ok || algorithm == "" || hexSum == "" {
		return "", nil, fmt.Errorf("malformed ref %q", ref)
	}
	sum, err = hex.DecodeString(hexSum)
	if err != nil {
		return "", nil, fmt.Errorf("malformed ref %q: %v", ref, err)
	}
	return algorithm, sum, nil
}
