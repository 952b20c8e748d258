// Package wire frames stored blob entries. The envelope is validated
// strictly on decode: bad magic, bad version, impossible lengths and
// trailing bytes are all ErrCorrupt, so a foreign or truncated write
// in the store's keyspace surfaces as corruption instead of garbage
// data.
package wire

import (
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("bytekit: corrupt store entry")
	magic4     = [...]byte{'B', 'K', 'I', 'T'}
)

// Entry is one stored blob.
//
//	magic(4) | ver(1) | comp(1) | dlen(u8) | digest(dlen) |
//	ulen(u32 be) | plen(u32 be) | payload(plen)
//
// comp is the store's compression tag (opaque at this layer). ulen is
// the uncompressed size, used to pre-validate before decompression.
type Entry struct {
	Comp    byte
	Digest  []byte
	Ulen    uint32
	Payload []byte
}

const fixedHeader = 4 + 1 + 1 + 1 + 4 + 4

func hasMagic(b []byte) bool {
	return len(b) >= 4 && b[0] == magic4[0] && b[1] == magic4[1] && b[2] == magic4[2] && b[3] == magic4[3]
}

// Encode frames an entry. Panics on digests longer than 255 bytes;
// every registered algorithm is far below that.
func Encode(e Entry) []byte {
	if len(e.Digest) == 0 || len(e.Digest) > 0xFF {
		panic("wire: invalid digest length")
	}

	out := make([]byte, 0, fixedHeader+len(e.Digest)+len(e.Payload))
	out = append(out, magic4[:]...)
	out = append(out, version, e.Comp, byte(len(e.Digest)))
	out = append(out, e.Digest...)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], e.Ulen)
	out = append(out, u4[:]...)
	binary.BigEndian.PutUint32(u4[:], uint32(len(e.Payload)))
	out = append(out, u4[:]...)

	return append(out, e.Payload...)
}

// Decode parses and validates a framed entry. The digest and payload
// slices alias b.
func Decode(b []byte) (Entry, error) {
	if len(b) < fixedHeader || !hasMagic(b) || b[4] != version {
		return Entry{}, ErrCorrupt
	}

	comp := b[5]
	dlen := int(b[6])
	off := 7

	if dlen == 0 || dlen > len(b)-off {
		return Entry{}, ErrCorrupt
	}
	dig := b[off : off+dlen]
	off += dlen

	if off+8 > len(b) {
		return Entry{}, ErrCorrupt
	}
	ulen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4

	// plen must account for exactly the rest; trailing bytes are
	// corruption, not slack.
	if plen < 0 || plen != len(b)-off {
		return Entry{}, ErrCorrupt
	}

	return Entry{Comp: comp, Digest: dig, Ulen: ulen, Payload: b[off : off+plen]}, nil
}
