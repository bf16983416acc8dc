package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestLogMiddleware tags each request with a short random id so log lines
// from one operation can be correlated.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}
