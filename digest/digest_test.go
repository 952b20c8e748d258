package digest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/unkn0wn-root/bytekit"
)

// Published test vectors from the algorithm specifications.
func TestKnownVectors(t *testing.T) {
	cases := []struct {
		alg  Algorithm
		in   string
		want string
	}{
		{MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{SHA3_256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{BLAKE3, "", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}
	for _, tc := range cases {
		sum, err := Sum(tc.alg, bytekit.FromString(tc.in))
		if err != nil {
			t.Fatalf("%s: %v", tc.alg, err)
		}
		if got := hex.EncodeToString(sum); got != tc.want {
			t.Fatalf("%s(%q) = %s, want %s", tc.alg, tc.in, got, tc.want)
		}
	}
}

func TestSizes(t *testing.T) {
	want := map[Algorithm]int{
		MD5:      16,
		SHA1:     20,
		SHA224:   28,
		SHA256:   32,
		SHA384:   48,
		SHA512:   64,
		SHA3_256: 32,
		SHA3_512: 64,
		BLAKE3:   32,
	}
	for alg, size := range want {
		got, err := Size(alg)
		if err != nil {
			t.Fatalf("Size(%s): %v", alg, err)
		}
		if got != size {
			t.Fatalf("Size(%s) = %d, want %d", alg, got, size)
		}
		sum, err := Sum(alg, bytekit.FromString("payload"))
		if err != nil {
			t.Fatalf("Sum(%s): %v", alg, err)
		}
		if len(sum) != size {
			t.Fatalf("Sum(%s) returned %d bytes, want %d", alg, len(sum), size)
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, alg := range Algorithms() {
		a, err := Sum(alg, bytekit.FromString("same input"))
		if err != nil {
			t.Fatalf("Sum(%s): %v", alg, err)
		}
		b, _ := SumBytes(alg, []byte("same input"))
		if !bytes.Equal(a, b) {
			t.Fatalf("%s: Sum and SumBytes disagree", alg)
		}
		c, _ := SumBytes(alg, []byte("other input"))
		if bytes.Equal(a, c) {
			t.Fatalf("%s: distinct inputs collided", alg)
		}
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if _, err := Sum(Algorithm("whirlpool"), bytekit.FromString("x")); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("Sum err = %v", err)
	}
	if _, err := Size(Algorithm("whirlpool")); !errors.Is(err, bytekit.ErrInvalidArgument) {
		t.Fatalf("Size err = %v", err)
	}
}

func TestAlgorithmsSorted(t *testing.T) {
	algs := Algorithms()
	if len(algs) != 9 {
		t.Fatalf("Algorithms returned %d entries, want 9", len(algs))
	}
	for i := 1; i < len(algs); i++ {
		if algs[i-1] >= algs[i] {
			t.Fatalf("Algorithms not sorted at %d: %s >= %s", i, algs[i-1], algs[i])
		}
	}
}
