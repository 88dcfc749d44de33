package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jlundholm/activity-finder/internal/database"
	"github.com/jlundholm/activity-finder/internal/stats"
	"github.com/jlundholm/activity-finder/internal/types"
	"github.com/jlundholm/activity-finder/internal/validation"
)

type ActivityRequest struct {
	Id          *int64   `json:"id"`
	AccountId   *int64   `json:"accountId"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	StartTime   *int64   `json:"startTime"`
	EndTime     *int64   `json:"endTime"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// complete reports whether every property an activity write needs is
// present. Updates additionally embed the resource id in the body.
func (r *ActivityRequest) complete(requireId bool) bool {
	if requireId && r.Id == nil {
		return false
	}

	return r.AccountId != nil &&
		r.Title != nil &&
		r.Description != nil &&
		r.StartTime != nil &&
		r.EndTime != nil &&
		r.Latitude != nil &&
		r.Longitude != nil
}

func (r *ActivityRequest) content() validation.ActivityContent {
	return validation.ActivityContent{
		Title:       *r.Title,
		Description: *r.Description,
		StartTime:   *r.StartTime,
		EndTime:     *r.EndTime,
	}
}

func (r *ActivityRequest) params() database.ActivityParams {
	return database.ActivityParams{
		AccountId:   *r.AccountId,
		Title:       *r.Title,
		Description: *r.Description,
		StartTime:   *r.StartTime,
		EndTime:     *r.EndTime,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
	}
}

func activityResponse(a database.Activity) types.Activity {
	return types.Activity{
		Id:          a.Id,
		AccountId:   a.AccountId,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
	}
}

func (s *FinderApp) getActivities(w http.ResponseWriter, r *http.Request) {
	var (
		activities []database.Activity
		err        error
	)

	if accountIdStr := r.URL.Query().Get("accountId"); accountIdStr != "" {
		accountId, parseErr := strconv.ParseInt(accountIdStr, 10, 64)
		if parseErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		activities, err = s.db.GetActivitiesByAccountId(accountId)
	} else {
		activities, err = s.db.GetAllActivities()
	}

	if err != nil {
		s.log.Printf("get activities: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := make([]types.Activity, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, activityResponse(a))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *FinderApp) getActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	activity, err := s.db.GetActivityById(id)
	if err != nil {
		s.log.Printf("get activity: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if activity == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.writeJson(w, http.StatusOK, activityResponse(*activity))
}

func (s *FinderApp) createActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.complete(false) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	callerId, ok := AccountId(r.Context())
	if !ok {
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthenticated"})
		return
	}
	if *req.AccountId != callerId {
		// Not allowed to create activities on behalf of another account.
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthorized"})
		return
	}

	if codes := validation.NewActivity(req.content(), time.Now()); len(codes) > 0 {
		s.writeJson(w, http.StatusBadRequest, codes)
		return
	}

	id, err := s.db.CreateActivity(req.params())
	if err != nil {
		if errors.Is(err, database.ErrAccountNotFound) {
			s.writeJson(w, http.StatusBadRequest, []string{"accountNotFound"})
			return
		}

		s.log.Printf("create activity: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.stats.Incr(stats.ActivitiesCreated)
	w.Header().Set("Location", fmt.Sprintf("/activities/%d", id))
	w.WriteHeader(http.StatusCreated)
}

func (s *FinderApp) updateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.complete(true) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	stored, err := s.db.GetActivityById(id)
	if err != nil {
		s.log.Printf("get activity: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if stored == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	callerId, ok := AccountId(r.Context())
	if !ok {
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthenticated"})
		return
	}
	if stored.AccountId != callerId {
		// Not the creator of the activity.
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthorized"})
		return
	}
	if *req.AccountId != callerId {
		// Not allowed to give the activity to another account.
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthorized"})
		return
	}

	codes := validation.UpdatedActivity(validation.ActivityUpdate{
		StoredId:           stored.Id,
		StoredAccountId:    stored.AccountId,
		StoredStartTime:    stored.StartTime,
		SubmittedId:        *req.Id,
		SubmittedAccountId: *req.AccountId,
		Content:            req.content(),
	}, time.Now())
	if len(codes) > 0 {
		s.writeJson(w, http.StatusBadRequest, codes)
		return
	}

	existed, err := s.db.UpdateActivityById(id, req.params())
	if err != nil {
		s.log.Printf("update activity: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !existed {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.stats.Incr(stats.ActivitiesUpdated)
	w.WriteHeader(http.StatusNoContent)
}

func (s *FinderApp) deleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	activity, err := s.db.GetActivityById(id)
	if err != nil {
		s.log.Printf("get activity: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if activity == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	callerId, ok := AccountId(r.Context())
	if !ok {
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthenticated"})
		return
	}
	if activity.AccountId != callerId {
		// Not the creator of the activity.
		s.writeJson(w, http.StatusUnauthorized, []string{"notAuthorized"})
		return
	}

	existed, err := s.db.DeleteActivityById(id)
	if err != nil {
		s.log.Printf("delete activity: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !existed {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.stats.Incr(stats.ActivitiesDeleted)
	w.WriteHeader(http.StatusNoContent)
}
