package encrypt

import "strings"

// Capability identifies one query capability an algorithm can provide.
// Values combine as a bit set.
type Capability uint8

const (
	// CapabilityCipher marks algorithms that produce reversible ciphertext.
	CapabilityCipher Capability = 1 << iota
	// CapabilityAssistedQuery marks algorithms that produce equality-search
	// tokens.
	CapabilityAssistedQuery
	// CapabilityLikeQuery marks algorithms that produce partial-match search
	// tokens.
	CapabilityLikeQuery
)

// Has reports whether every capability in capability is present in c.
func (c Capability) Has(capability Capability) bool {
	return c&capability == capability
}

// String returns the capability names joined by "|", or "NONE" for the empty
// set.
func (c Capability) String() string {
	if c == 0 {
		return "NONE"
	}
	names := make([]string, 0, 3)
	if c.Has(CapabilityCipher) {
		names = append(names, "CIPHER")
	}
	if c.Has(CapabilityAssistedQuery) {
		names = append(names, "ASSIST_QUERY")
	}
	if c.Has(CapabilityLikeQuery) {
		names = append(names, "LIKE_QUERY")
	}
	return strings.Join(names, "|")
}

// CapabilitiesOf reports the capabilities alg provides. An algorithm declares
// a capability by implementing the corresponding interface; one type may
// provide several. The result is inspected once while a rule is built, never
// during dispatch.
func CapabilitiesOf(alg Algorithm) Capability {
	var caps Capability
	if _, ok := alg.(CipherAlgorithm); ok {
		caps |= CapabilityCipher
	}
	if _, ok := alg.(AssistedQueryAlgorithm); ok {
		caps |= CapabilityAssistedQuery
	}
	if _, ok := alg.(LikeQueryAlgorithm); ok {
		caps |= CapabilityLikeQuery
	}
	return caps
}
