package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	valid := []string{"a", "alice", "Alice99", "abcdefghij12345"}
	for _, v := range valid {
		assert.Nil(t, Username(v), "expected %q to be valid", v)
	}

	invalid := []string{"", "with space", "too_long_username", "abcdefghij123456", "名前", "a-b"}
	for _, v := range invalid {
		assert.NotNil(t, Username(v), "expected %q to be rejected", v)
	}
}

func TestPassword(t *testing.T) {
	valid := []string{"secret1", "123456", "aVeryLongPass!20"}
	for _, v := range valid {
		assert.Nil(t, Password(v), "expected %q to be valid", v)
	}

	invalid := []string{"", "short", "has space1", "thispasswordiswaytoolong!"}
	for _, v := range invalid {
		assert.NotNil(t, Password(v), "expected %q to be rejected", v)
	}
}

func TestCredentials(t *testing.T) {
	assert.NoError(t, Credentials("alice", "secret1"))

	err := Credentials("", "")
	assert.Error(t, err)
	errs, ok := err.(Errs)
	assert.True(t, ok)
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}
