package encrypt

import (
	"fmt"
	"sort"
	"strings"
)

// RuleType identifies this rule kind to the surrounding rule framework.
const RuleType = "ENCRYPT"

// Rule is the validated, immutable binding between logical columns and the
// algorithms that encrypt them. A Rule is built once from a configuration
// snapshot and is safe for concurrent use. Configuration changes are handled
// outside this package by building a new Rule and swapping it atomically.
type Rule struct {
	config     RuleConfig
	registry   *capabilityRegistry
	tables     map[string]*Table // keyed by lower-cased table name
	tableNames *TableNameIndex
}

// NewRule builds a Rule from a configuration snapshot. Every configured
// encryptor is resolved through the algorithm factory and classified by
// capability, then every column reference is checked against the capability
// its role requires. Construction is atomic: on any failure no Rule is
// returned.
func NewRule(config RuleConfig, opts ...Option) (*Rule, error) {
	options := defaultRuleOptions()
	for _, opt := range opts {
		opt(options)
	}

	r := &Rule{
		config:     config,
		registry:   newCapabilityRegistry(),
		tables:     make(map[string]*Table, len(config.Tables)),
		tableNames: newTableNameIndex(),
	}

	// Resolve in sorted name order so factory failures surface deterministically.
	names := make([]string, 0, len(config.Encryptors))
	for name := range config.Encryptors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		encryptorConfig := config.Encryptors[name]
		algorithm, err := options.factory.Resolve(encryptorConfig.Type, encryptorConfig.Props)
		if err != nil {
			return nil, fmt.Errorf("encrypt: encryptor %q: %w", name, err)
		}
		r.registry.classify(name, algorithm)
	}

	// Last declaration of a duplicate table name wins; the first keeps its
	// enumeration position.
	for _, tableConfig := range config.Tables {
		table, err := newTable(tableConfig, r.registry)
		if err != nil {
			return nil, err
		}
		r.tables[strings.ToLower(tableConfig.Name)] = table
		r.tableNames.add(tableConfig.Name)
	}
	return r, nil
}

// NewRuleFromCompatible builds a Rule from the legacy configuration shape.
// The shape is normalized first; construction and validation are shared with
// NewRule.
//
// Deprecated: build new rules with NewRule.
func NewRuleFromCompatible(config CompatibleRuleConfig, opts ...Option) (*Rule, error) {
	return NewRule(config.Convert(), opts...)
}

// FindTable returns the encrypt table for a logical table name. Lookup is
// case-insensitive.
func (r *Rule) FindTable(tableName string) (*Table, bool) {
	table, ok := r.tables[strings.ToLower(tableName)]
	return table, ok
}

// GetTable is FindTable failing with ErrTableNotFound when the table is not
// part of the rule.
func (r *Rule) GetTable(tableName string) (*Table, error) {
	table, ok := r.FindTable(tableName)
	if !ok {
		return nil, newTableNotFoundError(tableName)
	}
	return table, nil
}

// IsEncryptTable reports whether the logical table has encrypt columns,
// ignoring case.
func (r *Rule) IsEncryptTable(tableName string) bool {
	_, ok := r.FindTable(tableName)
	return ok
}

// Encrypt encrypts one value through the column's cipher algorithm. The
// value is handed to the algorithm unchanged. In particular a nil value is
// not short-circuited: the algorithm decides how an encrypted NULL is
// represented.
func (r *Rule) Encrypt(databaseName, schemaName, tableName, columnName string, value any) (any, error) {
	column, err := r.getColumn(tableName, columnName)
	if err != nil {
		return nil, err
	}
	return column.Cipher().Encrypt(value, newContext(databaseName, schemaName, tableName, columnName))
}

// EncryptValues encrypts a batch of values for one column through its cipher
// algorithm. The slice is handed over as-is, nil elements included; batch
// null handling is the algorithm's responsibility.
func (r *Rule) EncryptValues(databaseName, schemaName, tableName, columnName string, values []any) ([]any, error) {
	column, err := r.getColumn(tableName, columnName)
	if err != nil {
		return nil, err
	}
	return column.Cipher().EncryptValues(values, newContext(databaseName, schemaName, tableName, columnName))
}

// Decrypt decrypts one stored cipher value through the column's cipher
// algorithm. Like Encrypt, a nil value is not short-circuited.
func (r *Rule) Decrypt(databaseName, schemaName, tableName, columnName string, cipherValue any) (any, error) {
	column, err := r.getColumn(tableName, columnName)
	if err != nil {
		return nil, err
	}
	return column.Cipher().Decrypt(cipherValue, newContext(databaseName, schemaName, tableName, columnName))
}

// AssistedQueryValue returns the equality-search token for one value. A nil
// value returns nil immediately, before the table or encryptor is even
// resolved: NULL has no meaningful search token.
func (r *Rule) AssistedQueryValue(databaseName, schemaName, tableName, columnName string, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	encryptor, err := r.assistedQueryEncryptor(tableName, columnName)
	if err != nil {
		return nil, err
	}
	return encryptor.AssistedQueryValue(value, newContext(databaseName, schemaName, tableName, columnName))
}

// AssistedQueryValues returns equality-search tokens for a batch of values.
// The encryptor is resolved once before iterating, so a missing table or
// encryptor fails even for an all-nil batch. Nil elements map to nil at the
// same position without invoking the encryptor; the result has the same
// length and order as values.
func (r *Rule) AssistedQueryValues(databaseName, schemaName, tableName, columnName string, values []any) ([]any, error) {
	encryptor, err := r.assistedQueryEncryptor(tableName, columnName)
	if err != nil {
		return nil, err
	}
	ctx := newContext(databaseName, schemaName, tableName, columnName)
	result := make([]any, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		token, err := encryptor.AssistedQueryValue(value, ctx)
		if err != nil {
			return nil, err
		}
		result[i] = token
	}
	return result, nil
}

// LikeQueryValue returns the partial-match search token for one value. Nil
// handling matches AssistedQueryValue.
func (r *Rule) LikeQueryValue(databaseName, schemaName, tableName, columnName string, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	encryptor, err := r.likeQueryEncryptor(tableName, columnName)
	if err != nil {
		return nil, err
	}
	return encryptor.LikeQueryValue(value, newContext(databaseName, schemaName, tableName, columnName))
}

// LikeQueryValues returns partial-match search tokens for a batch of values.
// Resolution and nil handling match AssistedQueryValues.
func (r *Rule) LikeQueryValues(databaseName, schemaName, tableName, columnName string, values []any) ([]any, error) {
	encryptor, err := r.likeQueryEncryptor(tableName, columnName)
	if err != nil {
		return nil, err
	}
	ctx := newContext(databaseName, schemaName, tableName, columnName)
	result := make([]any, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		token, err := encryptor.LikeQueryValue(value, ctx)
		if err != nil {
			return nil, err
		}
		result[i] = token
	}
	return result, nil
}

// LogicalTableNames returns the index of logical table names covered by this
// rule.
func (r *Rule) LogicalTableNames() *TableNameIndex {
	return r.tableNames
}

// ActualTableNames is always empty: encryption never renames tables.
func (r *Rule) ActualTableNames() *TableNameIndex {
	return newTableNameIndex()
}

// DistributedTableNames is always empty: encryption never distributes tables
// across storage nodes.
func (r *Rule) DistributedTableNames() *TableNameIndex {
	return newTableNameIndex()
}

// EnhancedTableNames matches LogicalTableNames: every table with encrypt
// columns is rewritten by this rule.
func (r *Rule) EnhancedTableNames() *TableNameIndex {
	return r.LogicalTableNames()
}

// Configuration returns the configuration snapshot the rule was built from.
func (r *Rule) Configuration() RuleConfig {
	return r.config
}

// Type returns RuleType.
func (r *Rule) Type() string {
	return RuleType
}

func (r *Rule) getColumn(tableName, columnName string) (*Column, error) {
	table, err := r.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	return table.GetColumn(columnName)
}

func (r *Rule) assistedQueryEncryptor(tableName, columnName string) (AssistedQueryAlgorithm, error) {
	table, err := r.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	encryptor, ok := table.FindAssistedQueryEncryptor(columnName)
	if !ok {
		return nil, newMissingEncryptorError(tableName, columnName, CapabilityAssistedQuery)
	}
	return encryptor, nil
}

func (r *Rule) likeQueryEncryptor(tableName, columnName string) (LikeQueryAlgorithm, error) {
	table, err := r.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	encryptor, ok := table.FindLikeQueryEncryptor(columnName)
	if !ok {
		return nil, newMissingEncryptorError(tableName, columnName, CapabilityLikeQuery)
	}
	return encryptor, nil
}

func newContext(databaseName, schemaName, tableName, columnName string) Context {
	return Context{
		DatabaseName: databaseName,
		SchemaName:   schemaName,
		TableName:    tableName,
		ColumnName:   columnName,
	}
}
