package encrypt

// capabilityRegistry classifies configured algorithm instances by the query
// capabilities they provide. One instance may appear under several
// capabilities. The registry is populated during rule construction and
// read-only afterwards, so lookups need no locking.
type capabilityRegistry struct {
	ciphers      map[string]CipherAlgorithm
	assisted     map[string]AssistedQueryAlgorithm
	like         map[string]LikeQueryAlgorithm
	capabilities map[string]Capability
}

func newCapabilityRegistry() *capabilityRegistry {
	return &capabilityRegistry{
		ciphers:      make(map[string]CipherAlgorithm),
		assisted:     make(map[string]AssistedQueryAlgorithm),
		like:         make(map[string]LikeQueryAlgorithm),
		capabilities: make(map[string]Capability),
	}
}

// classify records alg under name in every capability mapping it provides
// and remembers the full capability set for diagnostics.
func (r *capabilityRegistry) classify(name string, alg Algorithm) Capability {
	caps := CapabilitiesOf(alg)
	if cipher, ok := alg.(CipherAlgorithm); ok {
		r.ciphers[name] = cipher
	}
	if assisted, ok := alg.(AssistedQueryAlgorithm); ok {
		r.assisted[name] = assisted
	}
	if like, ok := alg.(LikeQueryAlgorithm); ok {
		r.like[name] = like
	}
	r.capabilities[name] = caps
	return caps
}

func (r *capabilityRegistry) cipher(name string) (CipherAlgorithm, bool) {
	alg, ok := r.ciphers[name]
	return alg, ok
}

func (r *capabilityRegistry) assistedQuery(name string) (AssistedQueryAlgorithm, bool) {
	alg, ok := r.assisted[name]
	return alg, ok
}

func (r *capabilityRegistry) likeQuery(name string) (LikeQueryAlgorithm, bool) {
	alg, ok := r.like[name]
	return alg, ok
}

// capabilitiesOf returns the capability set recorded for a configured
// encryptor name, or the empty set if the name was never configured.
func (r *capabilityRegistry) capabilitiesOf(name string) Capability {
	return r.capabilities[name]
}
