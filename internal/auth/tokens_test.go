package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key")

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sess-1", "acct-1", time.Hour, testKey)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "acct-1", claims.AccountID)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := GenerateSessionToken("sess-1", "acct-1", -time.Minute, testKey)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, testKey)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongKey(t *testing.T) {
	token, err := GenerateSessionToken("sess-1", "acct-1", time.Hour, testKey)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, []byte("other-key"))
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token", testKey)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, ComparePassword("correct horse battery", hash))
	assert.False(t, ComparePassword("wrong password", hash))
}
