package encrypt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hengadev/errsx"
)

// AlgorithmConfig declares a named algorithm: the registered type to
// instantiate and its construction properties.
type AlgorithmConfig struct {
	Type  string     `yaml:"type"`
	Props Properties `yaml:"props,omitempty"`
}

// ColumnItemConfig binds one storage column to a named encryptor. Name is the
// physical column that stores the item's output, ciphertext or search token.
type ColumnItemConfig struct {
	Name          string `yaml:"name"`
	EncryptorName string `yaml:"encryptorName"`
}

// ColumnRuleConfig configures encryption for one logical column. Cipher is
// mandatory; AssistedQuery and LikeQuery are optional and nil when absent.
type ColumnRuleConfig struct {
	LogicalName   string            `yaml:"logicalName"`
	Cipher        ColumnItemConfig  `yaml:"cipher"`
	AssistedQuery *ColumnItemConfig `yaml:"assistedQuery,omitempty"`
	LikeQuery     *ColumnItemConfig `yaml:"likeQuery,omitempty"`
}

// TableRuleConfig configures encryption for one logical table. Column order
// is preserved through to Table enumeration.
type TableRuleConfig struct {
	Name    string             `yaml:"name"`
	Columns []ColumnRuleConfig `yaml:"columns"`
}

// RuleConfig is the configuration snapshot a Rule is built from. Callers must
// not mutate a RuleConfig after handing it to NewRule.
type RuleConfig struct {
	Encryptors map[string]AlgorithmConfig `yaml:"encryptors"`
	Tables     []TableRuleConfig          `yaml:"tables"`
}

// CompatibleRuleConfig is the legacy configuration shape still carried by
// older deployments. It holds the same fields as RuleConfig under a different
// document key and is normalized at the boundary.
//
// Deprecated: declare new rules as RuleConfig.
type CompatibleRuleConfig RuleConfig

// Convert normalizes the legacy shape to the current RuleConfig.
func (c CompatibleRuleConfig) Convert() RuleConfig {
	return RuleConfig(c)
}

// Validate reports every structural violation in the configuration at once,
// keyed by location. It checks shape only: names are non-empty, table and
// column declarations do not collide, and every column item references a
// declared encryptor. Whether a reference resolves to an algorithm with the
// right capability is decided by NewRule, which does not call Validate.
func (c RuleConfig) Validate() error {
	var errs errsx.Map

	for name, encryptor := range c.Encryptors {
		if strings.TrimSpace(name) == "" {
			errs.Set("encryptors", errors.New("encryptor name must not be empty"))
		}
		if strings.TrimSpace(encryptor.Type) == "" {
			errs.Set(fmt.Sprintf("encryptors.%s", name), errors.New("type must not be empty"))
		}
	}

	seenTables := make(map[string]struct{}, len(c.Tables))
	for i, table := range c.Tables {
		tableKey := fmt.Sprintf("tables[%d]", i)
		if strings.TrimSpace(table.Name) == "" {
			errs.Set(tableKey+".name", errors.New("table name must not be empty"))
		}
		lower := strings.ToLower(table.Name)
		if _, dup := seenTables[lower]; dup {
			errs.Set(tableKey, fmt.Errorf("duplicate table name %q", table.Name))
		}
		seenTables[lower] = struct{}{}

		seenColumns := make(map[string]struct{}, len(table.Columns))
		for j, column := range table.Columns {
			columnKey := fmt.Sprintf("%s.columns[%d]", tableKey, j)
			if strings.TrimSpace(column.LogicalName) == "" {
				errs.Set(columnKey+".logicalName", errors.New("logical column name must not be empty"))
			}
			if _, dup := seenColumns[column.LogicalName]; dup {
				errs.Set(columnKey, fmt.Errorf("duplicate logical column %q", column.LogicalName))
			}
			seenColumns[column.LogicalName] = struct{}{}

			c.validateItem(&errs, columnKey+".cipher", column.Cipher)
			if column.AssistedQuery != nil {
				c.validateItem(&errs, columnKey+".assistedQuery", *column.AssistedQuery)
			}
			if column.LikeQuery != nil {
				c.validateItem(&errs, columnKey+".likeQuery", *column.LikeQuery)
			}
		}
	}

	if err := errs.AsError(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c RuleConfig) validateItem(errs *errsx.Map, key string, item ColumnItemConfig) {
	if strings.TrimSpace(item.EncryptorName) == "" {
		errs.Set(key, errors.New("encryptorName must not be empty"))
		return
	}
	if _, ok := c.Encryptors[item.EncryptorName]; !ok {
		errs.Set(key, fmt.Errorf("references undeclared encryptor %q", item.EncryptorName))
	}
}
