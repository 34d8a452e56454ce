package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-request identifier.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns an identifier to each request unless the client sent one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r)
	})
}
