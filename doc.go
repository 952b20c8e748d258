// Package bytekit implements a small binary data core: immutable byte
// buffers with bounded views, format-tagged compression, text-safe
// encodings, fixed-size digests, and a C-style struct pack engine.
//
// Components:
//   - Buffer / View: owned contiguous bytes and non-owning bounded
//     references into them. Immutable once constructed.
//   - compress: lz4 block and DEFLATE-family (deflate/zlib/gzip) codecs
//     plus zstd, behind one Compress/Decompress contract.
//   - encode: base64 and hex with optional line wrapping.
//   - digest: md5/sha1/sha2 family plus sha3 and blake3.
//   - pack: format-string driven binary pack/unpack with exact size
//     computation (PackedSize) before any encoding happens.
//   - store: content-addressed blob store over pluggable providers
//     (memory, BigCache, Ristretto, Redis); entries are verified
//     against their own digest on read.
//
// Every transform is a pure function over a complete in-memory input:
// no streaming, no I/O, no retained state beyond the read-only
// algorithm registries built at init. Concurrent calls on distinct
// buffers need no coordination; concurrent reads of the same buffer or
// view are safe because buffers never mutate after construction.
//
// Errors are returned to the immediate caller and wrap the sentinel
// taxonomy in errors.go (ErrOutOfRange, ErrCorruptData, ...); nothing
// is swallowed or logged inside the transform paths.
package bytekit
