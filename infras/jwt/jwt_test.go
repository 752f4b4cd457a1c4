package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpay/config"
	"rentpay/infras/jwt"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "rentpay"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg)
}

func TestService_RoundTrip(t *testing.T) {
	svc := newService("secret", 15)

	token, err := svc.GenerateAccessToken("renter-1", "renter@example.com", "user")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "renter-1", claims.UserID)
	assert.Equal(t, "renter@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
}

func TestService_ValidateToken(t *testing.T) {
	issuer := newService("secret", 15)
	expired := newService("secret", -5)
	other := newService("other-secret", 15)

	valid, err := issuer.GenerateAccessToken("renter-1", "renter@example.com", "user")
	require.NoError(t, err)

	stale, err := expired.GenerateAccessToken("renter-1", "renter@example.com", "user")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: valid},
		{name: "expired", token: stale, wantErr: jwt.ErrExpiredToken},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.ValidateToken(tt.token, jwt.AccessToken)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		_, err := other.ValidateToken(valid, jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
