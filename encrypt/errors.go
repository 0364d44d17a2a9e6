package encrypt

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedAlgorithmType is returned by NewRule when a column
	// references an encryptor that does not provide the capability its role
	// requires. The rule is not built.
	ErrMismatchedAlgorithmType = errors.New("encrypt: mismatched algorithm type")

	// ErrTableNotFound is returned when the referenced logical table is not
	// part of the rule.
	ErrTableNotFound = errors.New("encrypt: table not found")

	// ErrColumnNotFound is returned when the referenced logical column is not
	// configured for encryption on its table.
	ErrColumnNotFound = errors.New("encrypt: column not found")

	// ErrMissingEncryptor is returned when an assisted-query or like-query
	// operation targets a column that has no encryptor for that query type.
	ErrMissingEncryptor = errors.New("encrypt: missing encryptor")

	// ErrUnknownAlgorithmType is returned by the default algorithm factory
	// when no constructor is registered for the configured type name.
	ErrUnknownAlgorithmType = errors.New("encrypt: unknown algorithm type")

	// ErrInvalidConfig is returned when a rule configuration document cannot
	// be parsed or fails structural validation.
	ErrInvalidConfig = errors.New("encrypt: invalid rule configuration")
)

// newMismatchedAlgorithmTypeError reports a column reference whose encryptor
// lacks the required capability. role names the configured item the
// reference came from ("Cipher", "Assisted query" or "Like query").
func newMismatchedAlgorithmTypeError(role, encryptorName string, required, provided Capability) error {
	return fmt.Errorf("%w: %s encryptor %q must provide %s, provides %s",
		ErrMismatchedAlgorithmType, role, encryptorName, required, provided)
}

func newTableNotFoundError(tableName string) error {
	return fmt.Errorf("%w: %q", ErrTableNotFound, tableName)
}

func newColumnNotFoundError(tableName, columnName string) error {
	return fmt.Errorf("%w: %q in table %q", ErrColumnNotFound, columnName, tableName)
}

// newMissingEncryptorError names the query type the column has no encryptor
// for, ASSIST_QUERY or LIKE_QUERY.
func newMissingEncryptorError(tableName, columnName string, queryType Capability) error {
	return fmt.Errorf("%w: no %s encryptor for column %q in table %q",
		ErrMissingEncryptor, queryType, columnName, tableName)
}

func newUnknownAlgorithmTypeError(typeName string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAlgorithmType, typeName)
}
