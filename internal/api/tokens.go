package api

import (
	"encoding/json"
	"net/http"

	"github.com/jlundholm/activity-finder/internal/types"
)

const passwordGrantType = "password"

type TokenRequest struct {
	GrantType *string `json:"grant_type"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
}

func (r *TokenRequest) complete() bool {
	return r.GrantType != nil && r.Username != nil && r.Password != nil
}

// GrantError follows the OAuth-style error body of the token endpoint.
type GrantError struct {
	Error string `json:"error"`
}

func (s *FinderApp) createToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.complete() {
		s.writeJson(w, http.StatusBadRequest, GrantError{Error: "invalid_request"})
		return
	}

	if *req.GrantType != passwordGrantType {
		s.writeJson(w, http.StatusBadRequest, GrantError{Error: "unsupported_grant_type"})
		return
	}

	account, err := s.db.GetAccountByUsername(*req.Username)
	if err != nil {
		s.log.Printf("get account by username: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if account == nil || account.Password != *req.Password {
		s.writeJson(w, http.StatusBadRequest, GrantError{Error: "invalid_grant"})
		return
	}

	accessToken, err := s.createAccessToken(account.Id)
	if err != nil {
		s.log.Printf("sign access token: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	idToken, err := s.createIdToken(*account)
	if err != nil {
		s.log.Printf("sign id token: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.writeJson(w, http.StatusOK, types.TokenResponse{
		TokenType:   "Bearer",
		AccessToken: accessToken,
		IdToken:     idToken,
	})
}
