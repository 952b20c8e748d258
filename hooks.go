package bytekit

// Hooks are lightweight callbacks for high-signal store events.
// Implementations MUST be cheap and non-blocking; the store calls them
// on hot paths. Wrap with hooks/async to decouple slow sinks.
type Hooks interface {
	// An entry was deleted by the store on read.
	// reason ∈ {"corrupt", "digest_mismatch", "decompress"}
	SelfHeal(ref, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(ref string)

	// A typed-store value failed to decode after digest verification
	// passed (codec/schema drift, not data corruption).
	DecodeError(ref string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)    {}
func (NopHooks) ProviderSetRejected(string) {}
func (NopHooks) DecodeError(string, error)  {}
