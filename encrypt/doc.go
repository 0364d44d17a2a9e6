// Package encrypt implements the rule layer of column-level encryption for a
// SQL middleware. Given a declarative configuration of named algorithms and
// encrypted columns, it builds a validated, immutable Rule and dispatches
// encrypt, decrypt and search-token requests from the SQL rewriting layer to
// the right algorithm instance.
//
// The package owns no cryptography. Algorithms are opaque plugins resolved
// through an AlgorithmFactory; the rule layer classifies them, validates the
// configuration against their capabilities and routes values to them.
//
// # Capability Model
//
// An algorithm declares its query capabilities structurally, by implementing
// the corresponding interfaces:
//
//   - CipherAlgorithm produces reversible ciphertext for storage.
//   - AssistedQueryAlgorithm produces deterministic tokens for equality
//     search over encrypted data.
//   - LikeQueryAlgorithm produces tokens for LIKE-style partial matching.
//
// One type may implement several interfaces and then serves any of those
// roles. Classification happens once, when the rule is built.
//
// # Building a Rule
//
// Algorithm implementations register a constructor under their type name,
// usually from init:
//
//	encrypt.RegisterAlgorithm("AES", newAESAlgorithm)
//
// A Rule is then built from a configuration snapshot:
//
//	config, err := encrypt.LoadConfig("encrypt-rule.yaml")
//	if err != nil {
//		return err
//	}
//	rule, err := encrypt.NewRule(config)
//	if err != nil {
//		return err
//	}
//
// Construction fails fast. Every encryptor is resolved and every column
// reference is checked against the capability its role requires; a cipher
// reference to an algorithm that only produces search tokens fails with
// ErrMismatchedAlgorithmType and no Rule is returned.
//
// # Dispatch
//
// The rewriting layer addresses values by database, schema, table and
// column. Table names are matched case-insensitively, column names exactly:
//
//	encrypted, err := rule.Encrypt("sharding_db", "public", "t_user", "phone", value)
//	token, err := rule.AssistedQueryValue("sharding_db", "public", "t_user", "phone", value)
//
// Batch variants exist for multi-row statements. Assisted-query and
// like-query calls on a column without that capability fail with
// ErrMissingEncryptor.
//
// # NULL Handling
//
// Cipher operations never short-circuit NULL: nil values reach the
// algorithm, which decides how an encrypted NULL is represented. Search
// token derivation is the opposite: a nil value yields a nil token without
// invoking the algorithm, and the single-value forms return before the
// table is even resolved. Batch forms resolve the encryptor first and then
// map nil to nil position by position.
//
// # Concurrency
//
// A Rule is immutable after construction and safe for concurrent use. To
// apply a configuration change, build a new Rule and swap the reference.
package encrypt
