package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jlundholm/activity-finder/internal/config"
	"github.com/jlundholm/activity-finder/internal/database"
	"github.com/jlundholm/activity-finder/internal/stats"
	"github.com/jlundholm/activity-finder/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddr:     "localhost:8000",
		DatabasePath:   "test.db",
		AccessTokenKey: []byte("access-test-key"),
		IdTokenKey:     []byte("id-test-key"),
	}
}

func newTestApp(t *testing.T, repo database.ActivityFinderRepository, st stats.StatsProvider) *FinderApp {
	t.Helper()

	if st == nil {
		st = &stats.MockStatsUpdater{}
	}

	return NewFinderApp(http.NewServeMux(), testutil.TestLogger(t), repo, st, testConfig())
}

func Test_healthCheck(t *testing.T) {
	tcases := []struct {
		name    string
		mockErr error
	}{
		{
			name:    "successful health check",
			mockErr: nil,
		},
		{
			name:    "failed health check",
			mockErr: errors.New("db error"),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockFinderRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("Ping").Return(tc.mockErr).Once()
			app := newTestApp(t, mockRepo, nil)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			app.healthCheck(rr, req)

			if tc.mockErr != nil {
				assert.Equal(t, http.StatusInternalServerError, rr.Code, "expected status code to be 500")
			} else {
				assert.Equal(t, http.StatusOK, rr.Code, "expected status code to be 200")
				assert.Equal(t, "OK", rr.Body.String(), "expected response body to be 'OK'")
			}
		})
	}
}
