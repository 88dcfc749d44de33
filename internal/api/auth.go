package api

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt"
	"github.com/jlundholm/activity-finder/internal/database"
)

const (
	accountIdClaim         = "accountId"
	subjectClaim           = "sub"
	preferredUsernameClaim = "preferred_username"
)

type contextKey string

const accountIdKey contextKey = "account-id"

// WithAccountId returns a context carrying the verified caller identity.
func WithAccountId(ctx context.Context, accountId int64) context.Context {
	return context.WithValue(ctx, accountIdKey, accountId)
}

// AccountId reports the caller identity established by the bearer
// middleware, if any.
func AccountId(ctx context.Context) (int64, bool) {
	accountId, ok := ctx.Value(accountIdKey).(int64)

	return accountId, ok
}

// createAccessToken signs the token a client presents on subsequent requests.
func (s *FinderApp) createAccessToken(accountId int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		accountIdClaim: accountId,
	})

	return token.SignedString(s.accessKey)
}

// createIdToken signs the display-oriented identity token. It is never
// accepted as a credential.
func (s *FinderApp) createIdToken(account database.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		subjectClaim:           account.Id,
		preferredUsernameClaim: account.Username,
	})

	return token.SignedString(s.idKey)
}

func (s *FinderApp) parseAccessToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.accessKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	accountId, ok := claims[accountIdClaim].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid account id claim")
	}

	return int64(accountId), nil
}
