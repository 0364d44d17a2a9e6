package encrypt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	doc := `
encrypt:
  encryptors:
    aes_encryptor:
      type: AES
      props:
        aes-key-value: "123456abc"
  tables:
    - name: t_user
      columns:
        - logicalName: phone
          cipher:
            name: phone_cipher
            encryptorName: aes_encryptor
`
	config, err := ParseConfig([]byte(doc))
	require.NoError(t, err)

	require.Equal(t, RuleConfig{
		Encryptors: map[string]AlgorithmConfig{
			"aes_encryptor": {Type: "AES", Props: Properties{"aes-key-value": "123456abc"}},
		},
		Tables: []TableRuleConfig{{
			Name: "t_user",
			Columns: []ColumnRuleConfig{{
				LogicalName: "phone",
				Cipher:      ColumnItemConfig{Name: "phone_cipher", EncryptorName: "aes_encryptor"},
			}},
		}},
	}, config)
}

func TestParseConfig_CompatibleDocument(t *testing.T) {
	doc := `
compatibleEncrypt:
  encryptors:
    aes_encryptor:
      type: AES
  tables:
    - name: t_order
      columns:
        - logicalName: card_no
          cipher:
            name: card_no_cipher
            encryptorName: aes_encryptor
`
	config, err := ParseConfig([]byte(doc))
	require.NoError(t, err)
	require.Len(t, config.Tables, 1)
	require.Equal(t, "t_order", config.Tables[0].Name)
	require.Equal(t, "AES", config.Encryptors["aes_encryptor"].Type)
}

func TestParseConfig_BothDocumentsRejected(t *testing.T) {
	doc := `
encrypt:
  encryptors: {}
compatibleEncrypt:
  encryptors: {}
`
	_, err := ParseConfig([]byte(doc))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, "both")
}

func TestParseConfig_NeitherDocumentRejected(t *testing.T) {
	_, err := ParseConfig([]byte("{}\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, "neither")
}

func TestParseConfig_EmptyInput(t *testing.T) {
	_, err := ParseConfig(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseConfig_UnknownFieldRejected(t *testing.T) {
	doc := `
encrypt:
  encryptors: {}
  tabels:
    - name: t_user
`
	_, err := ParseConfig([]byte(doc))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, "tabels")
}

func TestParseConfig_MalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("encrypt: [unclosed"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(filepath.Join("testdata", "encrypt-rule.yaml"))
	require.NoError(t, err)

	require.Equal(t, RuleConfig{
		Encryptors: map[string]AlgorithmConfig{
			"aes_encryptor":    {Type: "AES", Props: Properties{"aes-key-value": "123456abc"}},
			"assist_encryptor": {Type: "MD5"},
		},
		Tables: []TableRuleConfig{{
			Name: "t_user",
			Columns: []ColumnRuleConfig{
				{
					LogicalName:   "phone",
					Cipher:        ColumnItemConfig{Name: "phone_cipher", EncryptorName: "aes_encryptor"},
					AssistedQuery: &ColumnItemConfig{Name: "phone_assisted", EncryptorName: "assist_encryptor"},
				},
				{
					LogicalName: "email",
					Cipher:      ColumnItemConfig{Name: "email_cipher", EncryptorName: "aes_encryptor"},
				},
			},
		}},
	}, config)
	require.NoError(t, config.Validate())
}

func TestLoadConfig_CompatibleFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join("testdata", "compatible-encrypt-rule.yaml"))
	require.NoError(t, err)
	require.Equal(t, "t_order", config.Tables[0].Name)
	require.NoError(t, config.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "no-such-file.yaml"))
	require.Error(t, err)
	require.ErrorContains(t, err, "read config")
}

func TestLoadConfig_BuildsWorkingRule(t *testing.T) {
	config, err := LoadConfig(filepath.Join("testdata", "encrypt-rule.yaml"))
	require.NoError(t, err)

	cipher := &stubCipher{typeName: "AES"}
	rule, err := NewRule(config, WithAlgorithmFactory(stubFactory{
		"AES": cipher,
		"MD5": &stubAssisted{typeName: "MD5"},
	}))
	require.NoError(t, err)

	encrypted, err := rule.Encrypt("sharding_db", "public", "t_user", "phone", "13800000000")
	require.NoError(t, err)
	require.Equal(t, "cipher:13800000000", encrypted)

	token, err := rule.AssistedQueryValue("sharding_db", "public", "T_USER", "phone", "13800000000")
	require.NoError(t, err)
	require.Equal(t, "assist:13800000000", token)
}
