package redact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRedactsGoogleAPIKey(t *testing.T) {
	key := "AIza" + strings.Repeat("a", 35)
	out := String("call failed for key " + key)

	assert.NotContains(t, out, key)
	assert.Contains(t, out, RedactedKeyPlaceholder)
}

func TestStringRedactsKeyQueryParam(t *testing.T) {
	out := String("GET https://generativelanguage.googleapis.com/v1beta/models?key=supersecret123 failed")

	assert.NotContains(t, out, "supersecret123")
	assert.Contains(t, out, "?key="+RedactedKeyPlaceholder)
}

func TestStringRedactsGenericAssignments(t *testing.T) {
	out := String(`api_key="abcdefgh12345678" rejected`)
	assert.NotContains(t, out, "abcdefgh12345678")
}

func TestStringLeavesOrdinaryTextAlone(t *testing.T) {
	in := "connection reset by peer"
	assert.Equal(t, in, String(in))
	assert.Empty(t, String(""))
}

func TestError(t *testing.T) {
	assert.Empty(t, Error(nil))

	key := "AIza" + strings.Repeat("b", 35)
	out := Error(errors.New("denied: " + key))
	assert.NotContains(t, out, key)
}
