package encrypt

// Column binds one logical column to its resolved encrypt algorithms and
// storage columns. A Column is immutable once its Table is built.
type Column struct {
	name           string
	cipherColumn   string
	cipher         CipherAlgorithm
	assistedColumn string
	assisted       AssistedQueryAlgorithm
	likeColumn     string
	like           LikeQueryAlgorithm
}

// newColumn resolves a column's encryptor references against the registry.
// Each reference must name an encryptor providing the capability its role
// requires; the first violation fails the build.
func newColumn(config ColumnRuleConfig, registry *capabilityRegistry) (*Column, error) {
	cipher, ok := registry.cipher(config.Cipher.EncryptorName)
	if !ok {
		return nil, newMismatchedAlgorithmTypeError("Cipher", config.Cipher.EncryptorName,
			CapabilityCipher, registry.capabilitiesOf(config.Cipher.EncryptorName))
	}
	column := &Column{
		name:         config.LogicalName,
		cipherColumn: config.Cipher.Name,
		cipher:       cipher,
	}
	if config.AssistedQuery != nil {
		assisted, ok := registry.assistedQuery(config.AssistedQuery.EncryptorName)
		if !ok {
			return nil, newMismatchedAlgorithmTypeError("Assisted query", config.AssistedQuery.EncryptorName,
				CapabilityAssistedQuery, registry.capabilitiesOf(config.AssistedQuery.EncryptorName))
		}
		column.assisted = assisted
		column.assistedColumn = config.AssistedQuery.Name
	}
	if config.LikeQuery != nil {
		like, ok := registry.likeQuery(config.LikeQuery.EncryptorName)
		if !ok {
			return nil, newMismatchedAlgorithmTypeError("Like query", config.LikeQuery.EncryptorName,
				CapabilityLikeQuery, registry.capabilitiesOf(config.LikeQuery.EncryptorName))
		}
		column.like = like
		column.likeColumn = config.LikeQuery.Name
	}
	return column, nil
}

// Name returns the logical column name in its configured spelling.
func (c *Column) Name() string {
	return c.name
}

// Cipher returns the cipher algorithm. Every column of a built rule has one.
func (c *Column) Cipher() CipherAlgorithm {
	return c.cipher
}

// CipherColumn returns the storage column holding the ciphertext.
func (c *Column) CipherColumn() string {
	return c.cipherColumn
}

// FindAssistedQueryEncryptor returns the assisted-query algorithm, if the
// column is configured with one.
func (c *Column) FindAssistedQueryEncryptor() (AssistedQueryAlgorithm, bool) {
	return c.assisted, c.assisted != nil
}

// FindAssistedQueryColumn returns the storage column holding the
// assisted-query token, if configured.
func (c *Column) FindAssistedQueryColumn() (string, bool) {
	return c.assistedColumn, c.assisted != nil
}

// FindLikeQueryEncryptor returns the like-query algorithm, if the column is
// configured with one.
func (c *Column) FindLikeQueryEncryptor() (LikeQueryAlgorithm, bool) {
	return c.like, c.like != nil
}

// FindLikeQueryColumn returns the storage column holding the like-query
// token, if configured.
func (c *Column) FindLikeQueryColumn() (string, bool) {
	return c.likeColumn, c.like != nil
}
