package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kauri-hr/payroll-backend-go/internal/config"
	"github.com/kauri-hr/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/kauri-hr/payroll-backend-go/internal/handler/http"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/database"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/kauri-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/kauri-hr/payroll-backend-go/internal/service/export"
	payrollService "github.com/kauri-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "kauri-payroll"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	processor := payrollService.NewBatchProcessor(fixtures.DefaultHolidayCalendar(), logger)
	bankWriter := export.BankFileWriter{OriginatorCode: cfg.Payroll.BankOriginatorCode}

	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		timesheetRepo,
		processor,
		bankWriter,
		logger,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(jwtService, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
