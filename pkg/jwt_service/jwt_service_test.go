package jwtservice_test

import (
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/steadyapp/steady/internal/error_values"
	"github.com/steadyapp/steady/pkg/entity"
	jwtservice "github.com/steadyapp/steady/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("test_secret", "steady-api", "steady-clients")
	user := &entity.User{
		ID:   uuid.New(),
		Name: "test_user",
	}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
	assert.Equal(t, "steady-api", claims.Issuer)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	s := jwtservice.New("test_secret", "steady-api", "steady-clients")
	user := &entity.User{
		ID:   uuid.New(),
		Name: "test_user",
	}
	t.Run("wrong secret", func(t *testing.T) {
		other := jwtservice.New("other_secret", "steady-api", "steady-clients")
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		other := jwtservice.New("test_secret", "someone-else", "steady-clients")
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("wrong audience", func(t *testing.T) {
		other := jwtservice.New("test_secret", "steady-api", "someone-else")
		token, err := other.GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
