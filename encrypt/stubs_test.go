package encrypt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test algorithms. Each stub implements exactly the capabilities its name
// says, so classification and dispatch can be observed precisely. Call
// counters make "the algorithm was (not) invoked" assertions direct.

// stubEncryptedNull is what the cipher stubs return for a nil input. The
// distinct sentinel proves nil reached the algorithm instead of being
// short-circuited by the rule layer.
const stubEncryptedNull = "cipher:<null>"

func stubEncrypt(value any) string {
	if value == nil {
		return stubEncryptedNull
	}
	return fmt.Sprintf("cipher:%v", value)
}

type stubCipher struct {
	typeName     string
	encryptCalls int
	batchCalls   int
	decryptCalls int
	lastValues   []any
	lastContext  Context
}

func (s *stubCipher) Type() string { return s.typeName }

func (s *stubCipher) Encrypt(value any, ctx Context) (any, error) {
	s.encryptCalls++
	s.lastContext = ctx
	return stubEncrypt(value), nil
}

func (s *stubCipher) EncryptValues(values []any, ctx Context) ([]any, error) {
	s.batchCalls++
	s.lastContext = ctx
	s.lastValues = values
	result := make([]any, len(values))
	for i, value := range values {
		result[i] = stubEncrypt(value)
	}
	return result, nil
}

func (s *stubCipher) Decrypt(cipherValue any, ctx Context) (any, error) {
	s.decryptCalls++
	s.lastContext = ctx
	str, ok := cipherValue.(string)
	if !ok {
		return nil, fmt.Errorf("stub cipher: unexpected cipher value %v", cipherValue)
	}
	return strings.TrimPrefix(str, "cipher:"), nil
}

type stubAssisted struct {
	typeName    string
	calls       int
	lastContext Context
}

func (s *stubAssisted) Type() string { return s.typeName }

func (s *stubAssisted) AssistedQueryValue(value any, ctx Context) (any, error) {
	s.calls++
	s.lastContext = ctx
	return fmt.Sprintf("assist:%v", value), nil
}

type stubLike struct {
	typeName    string
	calls       int
	lastContext Context
}

func (s *stubLike) Type() string { return s.typeName }

func (s *stubLike) LikeQueryValue(value any, ctx Context) (any, error) {
	s.calls++
	s.lastContext = ctx
	return fmt.Sprintf("like:%v", value), nil
}

// stubAllCapabilities provides all three capabilities from one instance.
type stubAllCapabilities struct {
	typeName string
}

func (s *stubAllCapabilities) Type() string { return s.typeName }

func (s *stubAllCapabilities) Encrypt(value any, _ Context) (any, error) {
	return stubEncrypt(value), nil
}

func (s *stubAllCapabilities) EncryptValues(values []any, _ Context) ([]any, error) {
	result := make([]any, len(values))
	for i, value := range values {
		result[i] = stubEncrypt(value)
	}
	return result, nil
}

func (s *stubAllCapabilities) Decrypt(cipherValue any, _ Context) (any, error) {
	return strings.TrimPrefix(cipherValue.(string), "cipher:"), nil
}

func (s *stubAllCapabilities) AssistedQueryValue(value any, _ Context) (any, error) {
	return fmt.Sprintf("assist:%v", value), nil
}

func (s *stubAllCapabilities) LikeQueryValue(value any, _ Context) (any, error) {
	return fmt.Sprintf("like:%v", value), nil
}

// stubOpaque satisfies Algorithm but provides no query capability.
type stubOpaque struct {
	typeName string
}

func (s *stubOpaque) Type() string { return s.typeName }

// failingAssisted fails on one specific value, for batch error propagation.
type failingAssisted struct {
	typeName string
	failOn   any
}

func (s *failingAssisted) Type() string { return s.typeName }

func (s *failingAssisted) AssistedQueryValue(value any, _ Context) (any, error) {
	if value == s.failOn {
		return nil, fmt.Errorf("stub assisted: refusing %v", value)
	}
	return fmt.Sprintf("assist:%v", value), nil
}

// stubFactory resolves pre-built instances by type name, so tests keep a
// handle on the exact algorithm a rule dispatches to.
type stubFactory map[string]Algorithm

func (f stubFactory) Resolve(typeName string, _ Properties) (Algorithm, error) {
	alg, ok := f[typeName]
	if !ok {
		return nil, newUnknownAlgorithmTypeError(typeName)
	}
	return alg, nil
}

// phoneRuleConfig is the canonical single-table fixture: t_user.phone has a
// cipher and an assisted-query encryptor but no like-query encryptor, and
// t_user.email has only a cipher.
func phoneRuleConfig() RuleConfig {
	return RuleConfig{
		Encryptors: map[string]AlgorithmConfig{
			"aes_encryptor":    {Type: "AES", Props: Properties{"aes-key-value": "123456abc"}},
			"assist_encryptor": {Type: "ASSIST_MD5"},
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
	}
}

// newPhoneRule builds the canonical fixture with fresh counting stubs.
func newPhoneRule(t *testing.T) (*Rule, *stubCipher, *stubAssisted) {
	t.Helper()
	cipher := &stubCipher{typeName: "AES"}
	assisted := &stubAssisted{typeName: "ASSIST_MD5"}
	rule, err := NewRule(phoneRuleConfig(), WithAlgorithmFactory(stubFactory{
		"AES":        cipher,
		"ASSIST_MD5": assisted,
	}))
	require.NoError(t, err)
	return rule, cipher, assisted
}
