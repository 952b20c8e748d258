package bytekit

import "errors"

// Sentinel errors shared across bytekit and its subpackages. Callers
// match with errors.Is; returned errors wrap these with context.
var (
	// ErrOutOfRange reports an offset/length/position outside the
	// valid bounds of a buffer or view.
	ErrOutOfRange = errors.New("bytekit: out of range")

	// ErrInvalidArgument reports a bad selector or parameter (unknown
	// format tag, compression level outside -1..9, negative size).
	ErrInvalidArgument = errors.New("bytekit: invalid argument")

	// ErrCorruptData reports untrusted compressed or stored input that
	// failed validation (bad header, truncated stream, absurd length).
	ErrCorruptData = errors.New("bytekit: corrupt data")

	// ErrMalformedInput reports text that is not valid in the selected
	// encoding (foreign characters, odd-length hex).
	ErrMalformedInput = errors.New("bytekit: malformed input")

	// ErrTypeMismatch reports a pack value whose kind does not match
	// the field descriptor at its position (or does not fit its width).
	ErrTypeMismatch = errors.New("bytekit: type mismatch")

	// ErrArityMismatch reports a pack call whose value count differs
	// from the format's field count.
	ErrArityMismatch = errors.New("bytekit: arity mismatch")

	// ErrInvalidFormat reports an unparseable pack format string, or a
	// PackedSize call on a format with variable-size fields.
	ErrInvalidFormat = errors.New("bytekit: invalid format")

	// ErrReleased reports an operation on a buffer after Release.
	ErrReleased = errors.New("bytekit: buffer released")
)
