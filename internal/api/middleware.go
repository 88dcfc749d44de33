package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/teris-io/shortid"
)

func (s *FinderApp) errorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				var panicError error
				switch e := err.(type) {
				case error:
					panicError = e
				default:
					panicError = fmt.Errorf("%v", e)
				}
				s.log.Printf("panic: %v", panicError)
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// bearerIdentity establishes the caller identity from a bearer access token
// when one is present and verifies. A missing or invalid token is not an
// error, the request simply proceeds unauthenticated so public endpoints
// stay reachable.
func (s *FinderApp) bearerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if tokenString, ok := strings.CutPrefix(auth, "Bearer "); ok {
			accountId, err := s.parseAccessToken(tokenString)
			if err != nil {
				s.log.Printf("discarding invalid access token: %v", err)
			} else {
				r = r.WithContext(WithAccountId(r.Context(), accountId))
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (s *FinderApp) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId, err := shortid.Generate()
		if err != nil {
			requestId = "unknown"
		}

		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Printf("[%s] %s %s %s", requestId, r.Method, r.URL.Path, time.Since(start))
	})
}
