package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager("test-secret", "fuelapi", "fuelapi-clients", ttl)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := newTestManager(time.Hour)

	tok, err := m.Issue(42, "operator1")
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "operator1", claims.Username)
	assert.Equal(t, "fuelapi", claims.Issuer)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	m := newTestManager(-time.Minute)

	tok, err := m.Issue(1, "operator1")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestManager(time.Hour).Issue(1, "operator1")
	require.NoError(t, err)

	other := NewManager("other-secret", "fuelapi", "fuelapi-clients", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongIssuer(t *testing.T) {
	t.Parallel()

	issued := NewManager("test-secret", "someone-else", "fuelapi-clients", time.Hour)
	tok, err := issued.Issue(1, "operator1")
	require.NoError(t, err)

	_, err = newTestManager(time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongAudience(t *testing.T) {
	t.Parallel()

	issued := NewManager("test-secret", "fuelapi", "other-audience", time.Hour)
	tok, err := issued.Issue(1, "operator1")
	require.NoError(t, err)

	_, err = newTestManager(time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	_, err := newTestManager(time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
