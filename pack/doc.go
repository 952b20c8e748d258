// Package pack implements a format-string driven binary serializer
// for primitive scalar values, mirroring the Lua 5.3 string.pack
// mini-language.
//
// Format grammar (spaces are ignored):
//
//	<        little-endian for following fields
//	>        big-endian for following fields
//	=        native endianness (the default)
//	b  B     signed/unsigned 1-byte integer
//	h  H     signed/unsigned 2-byte integer
//	i[n] I[n] signed/unsigned integer of n bytes (n in 1,2,4,8; default 4)
//	l  L     signed/unsigned 8-byte integer
//	f        IEEE 754 single-precision float
//	d  n     IEEE 754 double-precision float
//	cN       fixed-size string of exactly N bytes (zero-padded on pack)
//	z        zero-terminated string
//	s[n]     string preceded by an n-byte unsigned length (default 8)
//	x        one zero padding byte (consumes no value)
//
// PackedSize computes the exact encoded size of a format without any
// values; formats containing variable-size fields (z, s) have no
// data-independent size and fail with ErrInvalidFormat.
//
// Unpack positions follow the Lua convention: 1-based, negative
// counts from the end of the buffer (-1 is the last byte), and the
// returned next position is the 1-based index just past the last
// consumed byte, so sequential unpacks chain naturally.
package pack
