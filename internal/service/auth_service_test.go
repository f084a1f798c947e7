package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLogin(t *testing.T) {
	svc := NewAuthService("666", "test-secret")

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "correct password", password: "666"},
		{name: "wrong password", password: "667", wantErr: ErrBadCredentials},
		{name: "empty password", password: "", wantErr: ErrBadCredentials},
		{name: "case matters", password: "666 ", wantErr: ErrBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestAuthServiceVerify(t *testing.T) {
	svc := NewAuthService("666", "test-secret")

	t.Run("token from login verifies as admin", func(t *testing.T) {
		token, err := svc.Login("666")
		require.NoError(t, err)

		role, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, role)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(RoleAdmin, -time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewAuthService("666", "other-secret")
		token, err := other.Login("666")
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
