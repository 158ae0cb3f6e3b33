package groweasytracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/auth/guest"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/auth/login"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/auth/register"
	budgetcreate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/budget/create"
	budgetlist "github.com/shobhanapappu/groweasytracker/internal/http/handlers/budget/list"
	budgetremove "github.com/shobhanapappu/groweasytracker/internal/http/handlers/budget/remove"
	budgetupdate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/budget/update"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/dashboard"
	expensecreate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/expense/create"
	expenselist "github.com/shobhanapappu/groweasytracker/internal/http/handlers/expense/list"
	expenseremove "github.com/shobhanapappu/groweasytracker/internal/http/handlers/expense/remove"
	expenseupdate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/expense/update"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/export"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/health"
	incomecreate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/income/create"
	incomelist "github.com/shobhanapappu/groweasytracker/internal/http/handlers/income/list"
	incomeremove "github.com/shobhanapappu/groweasytracker/internal/http/handlers/income/remove"
	incomeupdate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/income/update"
	investmentcreate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/investment/create"
	investmentlist "github.com/shobhanapappu/groweasytracker/internal/http/handlers/investment/list"
	investmentremove "github.com/shobhanapappu/groweasytracker/internal/http/handlers/investment/remove"
	investmentupdate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/investment/update"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/payment/ordercreate"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/payment/webhook"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/records"
	savingscreate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/savings/create"
	savingslist "github.com/shobhanapappu/groweasytracker/internal/http/handlers/savings/list"
	savingsremove "github.com/shobhanapappu/groweasytracker/internal/http/handlers/savings/remove"
	savingsupdate "github.com/shobhanapappu/groweasytracker/internal/http/handlers/savings/update"
	"github.com/shobhanapappu/groweasytracker/internal/http/handlers/subscription/status"
	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	authservice "github.com/shobhanapappu/groweasytracker/internal/services/auth"
	dashboardservice "github.com/shobhanapappu/groweasytracker/internal/services/dashboard"
	exportservice "github.com/shobhanapappu/groweasytracker/internal/services/export"
	paymentservice "github.com/shobhanapappu/groweasytracker/internal/services/payment"
	recordsservice "github.com/shobhanapappu/groweasytracker/internal/services/records"
	subservice "github.com/shobhanapappu/groweasytracker/internal/services/subscription"
)

// Services собирает сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth         *authservice.AuthService
	Subscription *subservice.SubscriptionService
	Records      *recordsservice.RecordsService
	Dashboard    *dashboardservice.DashboardService
	Export       *exportservice.ExportService
	Payment      *paymentservice.PaymentService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/demo", guest.New(logger, svc.Auth).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Webhook платежного провайдера (аутентифицируется подписью)
		r.Post("/payments/webhook", webhook.New(logger, svc.Payment).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.GuestReadOnlyMiddleware(logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, rate.Limit(10), 30))

			r.Get("/dashboard", dashboard.New(logger, svc.Dashboard).ServeHTTP)
			r.Get("/records", records.New(logger, svc.Dashboard).ServeHTTP)
			r.Get("/subscription", status.New(logger, svc.Subscription).ServeHTTP)
			r.Post("/payment/order", ordercreate.New(logger, svc.Payment).ServeHTTP)

			r.Post("/income", incomecreate.New(logger, svc.Records).ServeHTTP)
			r.Get("/income", incomelist.New(logger, svc.Records).ServeHTTP)
			r.Put("/income/{id}", incomeupdate.New(logger, svc.Records).ServeHTTP)
			r.Delete("/income/{id}", incomeremove.New(logger, svc.Records).ServeHTTP)

			r.Post("/expenses", expensecreate.New(logger, svc.Records).ServeHTTP)
			r.Get("/expenses", expenselist.New(logger, svc.Records).ServeHTTP)
			r.Put("/expenses/{id}", expenseupdate.New(logger, svc.Records).ServeHTTP)
			r.Delete("/expenses/{id}", expenseremove.New(logger, svc.Records).ServeHTTP)

			// Premium-функции: доступны в пробный период и по подписке
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.PremiumAccessMiddleware(logger, svc.Subscription))

				r.Post("/investments", investmentcreate.New(logger, svc.Records).ServeHTTP)
				r.Get("/investments", investmentlist.New(logger, svc.Records).ServeHTTP)
				r.Put("/investments/{id}", investmentupdate.New(logger, svc.Records).ServeHTTP)
				r.Delete("/investments/{id}", investmentremove.New(logger, svc.Records).ServeHTTP)

				r.Post("/savings", savingscreate.New(logger, svc.Records).ServeHTTP)
				r.Get("/savings", savingslist.New(logger, svc.Records).ServeHTTP)
				r.Put("/savings/{id}", savingsupdate.New(logger, svc.Records).ServeHTTP)
				r.Delete("/savings/{id}", savingsremove.New(logger, svc.Records).ServeHTTP)

				r.Post("/budgets", budgetcreate.New(logger, svc.Records).ServeHTTP)
				r.Get("/budgets", budgetlist.New(logger, svc.Records).ServeHTTP)
				r.Put("/budgets/{id}", budgetupdate.New(logger, svc.Records).ServeHTTP)
				r.Delete("/budgets/{id}", budgetremove.New(logger, svc.Records).ServeHTTP)

				r.Get("/export", export.New(logger, svc.Export).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
