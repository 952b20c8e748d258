package bytekit

// Coalesce returns def when v is the zero value of T - otherwise v.
// Shared by Options plumbing across subpackages.
func Coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
