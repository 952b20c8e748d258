// Package digest computes fixed-size one-way hashes over byte data.
//
// The classic set (md5, sha1, sha2 family) matches the public
// specifications byte for byte; sha3 and blake3 extend it for
// content-addressing use. Every function is pure: same input, same
// output, no state between calls. The algorithm table is built at init
// and read-only afterwards.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/unkn0wn-root/bytekit"
)

// Algorithm selects a hash function.
type Algorithm string

const (
	MD5    Algorithm = "md5"    // 16 bytes
	SHA1   Algorithm = "sha1"   // 20 bytes
	SHA224 Algorithm = "sha224" // 28 bytes
	SHA256 Algorithm = "sha256" // 32 bytes
	SHA384 Algorithm = "sha384" // 48 bytes
	SHA512 Algorithm = "sha512" // 64 bytes

	SHA3_256 Algorithm = "sha3-256" // 32 bytes
	SHA3_512 Algorithm = "sha3-512" // 64 bytes
	BLAKE3   Algorithm = "blake3"   // 32 bytes
)

type entry struct {
	size int
	sum  func([]byte) []byte
}

// algorithms is the read-only registry. MD5 and SHA-1 are provided for
// interoperability with formats that mandate them, not for new
// integrity designs.
var algorithms = map[Algorithm]entry{
	MD5: {md5.Size, func(b []byte) []byte {
		s := md5.Sum(b)
		return s[:]
	}},
	SHA1: {sha1.Size, func(b []byte) []byte {
		s := sha1.Sum(b)
		return s[:]
	}},
	SHA224: {sha256.Size224, func(b []byte) []byte {
		s := sha256.Sum224(b)
		return s[:]
	}},
	SHA256: {sha256.Size, func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}},
	SHA384: {sha512.Size384, func(b []byte) []byte {
		s := sha512.Sum384(b)
		return s[:]
	}},
	SHA512: {sha512.Size, func(b []byte) []byte {
		s := sha512.Sum512(b)
		return s[:]
	}},
	SHA3_256: {32, func(b []byte) []byte {
		s := sha3.Sum256(b)
		return s[:]
	}},
	SHA3_512: {64, func(b []byte) []byte {
		s := sha3.Sum512(b)
		return s[:]
	}},
	BLAKE3: {32, func(b []byte) []byte {
		s := blake3.Sum256(b)
		return s[:]
	}},
}

// Sum returns the digest of src. Unknown algorithms fail with
// ErrInvalidArgument.
func Sum(a Algorithm, src bytekit.Data) ([]byte, error) {
	e, ok := algorithms[a]
	if !ok {
		return nil, fmt.Errorf("%w: unknown digest algorithm %q", bytekit.ErrInvalidArgument, a)
	}
	return e.sum(src.Bytes()), nil
}

// SumBytes is Sum over a raw slice, for callers that have no Buffer.
func SumBytes(a Algorithm, src []byte) ([]byte, error) {
	e, ok := algorithms[a]
	if !ok {
		return nil, fmt.Errorf("%w: unknown digest algorithm %q", bytekit.ErrInvalidArgument, a)
	}
	return e.sum(src), nil
}

// Size returns the fixed digest length in bytes for an algorithm.
func Size(a Algorithm) (int, error) {
	e, ok := algorithms[a]
	if !ok {
		return 0, fmt.Errorf("%w: unknown digest algorithm %q", bytekit.ErrInvalidArgument, a)
	}
	return e.size, nil
}

// Algorithms returns the registered algorithm names, sorted.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(algorithms))
	for a := range algorithms {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
