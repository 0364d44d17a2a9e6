package encrypt

// Context identifies the column an algorithm invocation applies to. A fresh
// Context is built for every dispatched call; algorithms must not retain it.
type Context struct {
	DatabaseName string
	SchemaName   string
	TableName    string
	ColumnName   string
}

// Properties carries the construction properties of an algorithm as declared
// in the rule configuration, for example a key identifier or a digest salt.
type Properties map[string]string

// Algorithm is the contract every encrypt algorithm satisfies, independent of
// which query capabilities it provides.
type Algorithm interface {
	// Type returns the algorithm type name the implementation is registered
	// under, for example "AES".
	Type() string
}

// CipherAlgorithm produces a reversible encrypted representation of a column
// value. Capabilities are declared structurally: implementing this interface
// is what makes an algorithm usable as a cipher encryptor.
type CipherAlgorithm interface {
	Algorithm

	// Encrypt returns the encrypted representation of value. A nil value is
	// passed through to the algorithm; how an encrypted NULL is represented
	// is the algorithm's decision, not the rule layer's.
	Encrypt(value any, ctx Context) (any, error)

	// EncryptValues encrypts a batch of values for the same column. The
	// slice is handed over as-is, nil elements included.
	EncryptValues(values []any, ctx Context) ([]any, error)

	// Decrypt inverts Encrypt for a stored cipher value.
	Decrypt(cipherValue any, ctx Context) (any, error)
}

// AssistedQueryAlgorithm derives a token that makes equality search possible
// over encrypted storage. The token does not need to be reversible.
type AssistedQueryAlgorithm interface {
	Algorithm

	// AssistedQueryValue returns the equality-search token for value.
	AssistedQueryValue(value any, ctx Context) (any, error)
}

// LikeQueryAlgorithm derives a token that makes LIKE-style partial matching
// possible over encrypted storage.
type LikeQueryAlgorithm interface {
	Algorithm

	// LikeQueryValue returns the partial-match search token for value.
	LikeQueryValue(value any, ctx Context) (any, error)
}
