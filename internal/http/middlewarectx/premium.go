package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/shobhanapappu/groweasytracker/internal/access"
	"github.com/shobhanapappu/groweasytracker/internal/http/response"
	"github.com/shobhanapappu/groweasytracker/internal/lib/sl"
)

// PremiumAccessMiddleware создает middleware для проверки premium-доступа
// пользователя. Гость и пользователь с истекшим пробным периодом получают 403.
func PremiumAccessMiddleware(log *slog.Logger, subService SubscriptionServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session.UserUID == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			if session.Kind == access.KindGuest {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("premium features are not available in guest mode"))
				return
			}

			hasAccess, err := subService.HasPremiumAccess(r.Context(), session.UserUID)
			if err != nil {
				log.Error("failed to check premium access", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if !hasAccess {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("trial period has ended, upgrade to premium to continue"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
