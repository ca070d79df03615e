package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("RECAPD_TEST_TOKEN", "s3cr3t")

	out := ExpandEnv([]byte("token: {{.RECAPD_TEST_TOKEN}}"))
	assert.Equal(t, "token: s3cr3t", string(out))
}

func TestExpandEnv_UnsetVariableExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte("token: {{.RECAPD_DEFINITELY_UNSET}}"))
	assert.Equal(t, "token: ", string(out))
}

func TestExpandEnv_MalformedTemplateIsReturnedUnchanged(t *testing.T) {
	in := []byte("value: {{.unterminated")
	assert.Equal(t, in, ExpandEnv(in))
}

func TestExpandEnv_PlainYAMLPassesThrough(t *testing.T) {
	in := []byte("server:\n  port: 8080\n")
	assert.Equal(t, in, ExpandEnv(in))
}
