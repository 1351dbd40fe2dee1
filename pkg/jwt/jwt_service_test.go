package jwt

import (
	"Recipe-Share-API/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestInvalidToken(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestForeignSignature(t *testing.T) {
	service := NewJWTService()
	token := service.GenerateTokenUser("user-123", domain.RoleUser)

	_, _, err := service.GetUserIDByToken(token + "tampered")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
