package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/handler/http/middleware"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	salaryHandler SalaryHandler,
	expenseHandler ExpenseHandler,
	paymentAccountHandler PaymentAccountHandler,
	broadcastHandler BroadcastHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hunarmand-erp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// The EventSource API cannot send an Authorization header, so the
		// stream authenticates with a short-lived token in the query string.
		r.Get("/broadcasts/stream", broadcastHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/stream-token", authHandler.StreamToken)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.ClockIn)
				r.Post("/check-out", attendanceHandler.ClockOut)
				r.Get("/my", attendanceHandler.MyStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/overview", attendanceHandler.MonthlyOverview)
					r.Get("/employees/{id}", attendanceHandler.EmployeeStats)
					r.Patch("/{id}", attendanceHandler.Correct)
				})
			})

			r.Route("/broadcasts", func(r chi.Router) {
				r.Get("/", broadcastHandler.ListRecent)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", broadcastHandler.Send)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
				})

				r.Route("/salaries", func(r chi.Router) {
					r.Get("/", salaryHandler.List)
					r.Post("/", salaryHandler.Generate)
					r.Get("/calculate", salaryHandler.Quote)
					r.Get("/status", salaryHandler.Status)
					r.Get("/summary", salaryHandler.Summary)
					r.Get("/{id}/slip", salaryHandler.Slip)
					r.Put("/{id}/pay", salaryHandler.Pay)
				})

				r.Get("/payroll/department-breakdown", salaryHandler.DepartmentBreakdown)

				r.Route("/expenses", func(r chi.Router) {
					r.Get("/", expenseHandler.List)
					r.Post("/", expenseHandler.Create)
					r.Get("/totals", expenseHandler.Totals)
					r.Get("/ledger", expenseHandler.Ledger)
					r.Put("/{id}", expenseHandler.Update)
					r.Delete("/{id}", expenseHandler.Delete)
				})

				r.Route("/payment-accounts", func(r chi.Router) {
					r.Get("/", paymentAccountHandler.List)
					r.Post("/", paymentAccountHandler.Create)
					r.Get("/{id}", paymentAccountHandler.Get)
					r.Put("/{id}", paymentAccountHandler.Update)
					r.Delete("/{id}", paymentAccountHandler.Delete)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
