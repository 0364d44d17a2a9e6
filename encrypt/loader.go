package encrypt

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configDocument is the YAML envelope of a rule configuration file. Exactly
// one of the two keys must be present.
type configDocument struct {
	Encrypt           *RuleConfig           `yaml:"encrypt"`
	CompatibleEncrypt *CompatibleRuleConfig `yaml:"compatibleEncrypt"`
}

// ParseConfig parses a YAML rule configuration document. Decoding is strict:
// unknown fields are rejected rather than ignored. A legacy compatibleEncrypt
// document is normalized to the current shape before returning. Failures
// wrap ErrInvalidConfig.
func ParseConfig(data []byte) (RuleConfig, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc configDocument
	if err := decoder.Decode(&doc); err != nil {
		return RuleConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch {
	case doc.Encrypt != nil && doc.CompatibleEncrypt != nil:
		return RuleConfig{}, fmt.Errorf("%w: document declares both encrypt and compatibleEncrypt", ErrInvalidConfig)
	case doc.Encrypt != nil:
		return *doc.Encrypt, nil
	case doc.CompatibleEncrypt != nil:
		return doc.CompatibleEncrypt.Convert(), nil
	default:
		return RuleConfig{}, fmt.Errorf("%w: document declares neither encrypt nor compatibleEncrypt", ErrInvalidConfig)
	}
}

// LoadConfig reads and parses a YAML rule configuration file.
func LoadConfig(path string) (RuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleConfig{}, fmt.Errorf("encrypt: read config: %w", err)
	}
	return ParseConfig(data)
}
