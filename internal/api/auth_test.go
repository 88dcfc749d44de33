package api

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/jlundholm/activity-finder/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestAccountId(t *testing.T) {
	tcases := []struct {
		name      string
		ctx       context.Context
		accountId int64
		expected  bool
	}{
		{
			name:     "no account ID",
			ctx:      context.Background(),
			expected: false,
		},
		{
			name:      "account ID set",
			ctx:       WithAccountId(context.Background(), 42),
			accountId: 42,
			expected:  true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			accountId, ok := AccountId(tc.ctx)
			assert.Equal(t, tc.expected, ok, "expected AccountId to return %v", tc.expected)
			assert.Equal(t, tc.accountId, accountId, "expected AccountId to return %d", tc.accountId)
		})
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	app := newTestApp(t, nil, nil)

	token, err := app.createAccessToken(7)
	assert.NoError(t, err, "expected access token to be signed")

	accountId, err := app.parseAccessToken(token)
	assert.NoError(t, err, "expected access token to verify")
	assert.Equal(t, int64(7), accountId)
}

func TestParseAccessToken_Invalid(t *testing.T) {
	app := newTestApp(t, nil, nil)

	t.Run("garbage token", func(t *testing.T) {
		_, err := app.parseAccessToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := newTestApp(t, nil, nil)
		other.accessKey = []byte("a-different-key")

		token, err := other.createAccessToken(7)
		assert.NoError(t, err)

		_, err = app.parseAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("id token is not an access token", func(t *testing.T) {
		token, err := app.createIdToken(database.Account{Id: 7, Username: "alice"})
		assert.NoError(t, err)

		_, err = app.parseAccessToken(token)
		assert.Error(t, err)
	})
}

func TestCreateIdToken_Claims(t *testing.T) {
	app := newTestApp(t, nil, nil)

	tokenString, err := app.createIdToken(database.Account{Id: 3, Username: "alice"})
	assert.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return app.idKey, nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok, "expected map claims")
	assert.Equal(t, float64(3), claims[subjectClaim])
	assert.Equal(t, "alice", claims[preferredUsernameClaim])
}
