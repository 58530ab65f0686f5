package services

import (
	"errors"
	"testing"
	"time"

	"github.com/accuransi/website-api/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-unit-tests-32ch!"

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "admin",
		Role:     models.RoleAdmin,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, expiresAt, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.WithinDuration(t, time.Now().Add(TokenLifetime), expiresAt, 2*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenService_VerifyExpiry(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := NewTokenService(testSecret)
	svc.now = func() time.Time { return issuedAt }

	token, expiresAt, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.Equal(t, issuedAt.Add(TokenLifetime), expiresAt)

	t.Run("valid until just before expiry", func(t *testing.T) {
		svc.now = func() time.Time { return expiresAt.Add(-time.Second) }
		_, err := svc.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("expired at expiry", func(t *testing.T) {
		svc.now = func() time.Time { return expiresAt.Add(time.Second) }
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestTokenService_VerifyRejectsTampering(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, _, err := svc.Issue(testUser())
	require.NoError(t, err)

	t.Run("flipped payload byte", func(t *testing.T) {
		tampered := []byte(token)
		// Flip a character in the middle of the payload segment.
		i := len(tampered) / 2
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}
		_, err := svc.Verify(string(tampered))
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("another-secret-for-unit-tests-32!")
		_, err := other.Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestTokenService_ExpiredAndInvalidAreDistinctSentinels(t *testing.T) {
	// The guard collapses both into one response; the sentinels still must
	// not alias each other.
	if errors.Is(ErrTokenExpired, ErrTokenInvalid) {
		t.Fatal("ErrTokenExpired must not match ErrTokenInvalid")
	}
}
