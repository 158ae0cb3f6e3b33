package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/access"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
)

// GuestReadOnlyMiddleware запрещает гостевым сессиям изменяющие запросы.
// Гость смотрит витрину с синтетическими данными и ничего не пишет.
func GuestReadOnlyMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			session := SessionFromContext(r.Context())
			if !access.CanMutate(session) {
				log.Warn("guest session attempted mutation",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("guest mode is read-only"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
