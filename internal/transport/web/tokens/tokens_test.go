package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	token, err := signer.Issue("user1", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user1", userID)
}

func TestSigner_RejectsExpiredToken(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	token, err := signer.Issue("user1", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.Error(t, err)
}

func TestSigner_RejectsWrongSecret(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)
	other := NewSigner("other-secret", time.Hour)

	token, err := signer.Issue("user1", time.Now())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestSigner_RejectsGarbage(t *testing.T) {
	signer := NewSigner("test-secret", time.Hour)

	_, err := signer.Verify("not-a-token")
	assert.Error(t, err)
}
