package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/classhub/classhub/pkg/composables"
)

// RequestLogger attaches a request-scoped logger entry carrying a request id
// to the context.
func RequestLogger(log *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				entry := log.WithFields(logrus.Fields{
					"request-id": uuid.NewString(),
					"path":       r.URL.Path,
					"method":     r.Method,
				})
				ctx := composables.WithLogger(r.Context(), entry)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
