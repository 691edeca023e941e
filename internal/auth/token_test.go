package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute)
	userID := uuid.New()

	token, err := issuer.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute)
	other := NewTokenIssuer("another-secret", 15*time.Minute)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -1*time.Minute)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestTokenIssuer_Verify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute)

	_, err := issuer.Verify("not-a-token")
	assert.Error(t, err)
}
