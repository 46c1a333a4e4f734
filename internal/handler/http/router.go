package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/kauri-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, payrollHandler PayrollHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kauri-payroll"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/runs", payrollHandler.RunPayroll)

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", payrollHandler.ListEntries)
					r.Post("/mark-paid", payrollHandler.MarkPaid)
					r.Get("/{id}", payrollHandler.GetEntry)
					r.Get("/{id}/payslip", payrollHandler.DownloadPayslip)
				})

				r.Get("/rates/preview", payrollHandler.PreviewRate)
				r.Get("/employees/{id}/hours", payrollHandler.EmployeeHours)

				r.Route("/exports", func(r chi.Router) {
					r.Get("/bank-file", payrollHandler.DownloadBankFile)
					r.Get("/schedule", payrollHandler.DownloadSchedule)
				})
			})
		})
	})
	return r
}
