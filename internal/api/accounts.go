package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jlundholm/activity-finder/internal/database"
	"github.com/jlundholm/activity-finder/internal/stats"
	"github.com/jlundholm/activity-finder/internal/types"
	"github.com/jlundholm/activity-finder/internal/validation"
)

// NewAccountRequest uses pointer fields so a missing property is
// distinguishable from a zero value, a shape violation either way.
type NewAccountRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r *NewAccountRequest) complete() bool {
	return r.Username != nil && r.Password != nil
}

func pathId(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

func (s *FinderApp) getAccounts(w http.ResponseWriter, _ *http.Request) {
	accounts, err := s.db.GetAllAccounts()
	if err != nil {
		s.log.Printf("get all accounts: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := make([]types.Account, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, types.Account{
			Id:       a.Id,
			Username: a.Username,
		})
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *FinderApp) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	account, err := s.db.GetAccountById(id)
	if err != nil {
		s.log.Printf("get account: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if account == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.writeJson(w, http.StatusOK, types.Account{
		Id:       account.Id,
		Username: account.Username,
	})
}

func (s *FinderApp) createAccount(w http.ResponseWriter, r *http.Request) {
	var req NewAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.complete() {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	if codes := validation.NewAccount(*req.Username, *req.Password); len(codes) > 0 {
		s.writeJson(w, http.StatusBadRequest, codes)
		return
	}

	id, err := s.db.CreateAccount(database.CreateAccountParams{
		Username: *req.Username,
		Password: *req.Password,
	})
	if err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			s.writeJson(w, http.StatusBadRequest, []string{"usernameTaken"})
			return
		}

		s.log.Printf("create account: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.stats.Incr(stats.AccountsCreated)
	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", id))
	w.WriteHeader(http.StatusCreated)
}
