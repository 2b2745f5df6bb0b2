package middleware

import (
	"io"
	"net/http"

	"github.com/2beens/workouttracker/pkg"
)

// DrainAndCloseRequest drains what the handler left of the request body and closes it,
// so the connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, pkg.MaxRequestBodyBytes))
				_ = r.Body.Close()
			}
		})
	}
}
