package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hunarmand-punjab/erp-backend-go/internal/config"
	appHTTP "github.com/hunarmand-punjab/erp-backend-go/internal/handler/http"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/cron"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/jwt"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/sse"
	"github.com/hunarmand-punjab/erp-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hunarmand-punjab/erp-backend-go/internal/service/attendance"
	serviceAuth "github.com/hunarmand-punjab/erp-backend-go/internal/service/auth"
	broadcastService "github.com/hunarmand-punjab/erp-backend-go/internal/service/broadcast"
	employeeService "github.com/hunarmand-punjab/erp-backend-go/internal/service/employee"
	expenseService "github.com/hunarmand-punjab/erp-backend-go/internal/service/expense"
	accountService "github.com/hunarmand-punjab/erp-backend-go/internal/service/paymentaccount"
	salaryService "github.com/hunarmand-punjab/erp-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	accountRepo := postgresql.NewPaymentAccountRepository(db)
	broadcastRepo := postgresql.NewBroadcastRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Attendance.LateGraceMinutes)
	salarySvc := salaryService.NewSalaryService(
		salaryRepo,
		employeeRepo,
		attendanceRepo,
		accountRepo,
		salaryService.StepLatePolicy(cfg.Payroll.LateDaysPerDeductible),
		cfg.Payroll.AllowRegenerate,
	)
	expenseSvc := expenseService.NewExpenseService(expenseRepo, accountRepo)
	accountSvc := accountService.NewAccountService(accountRepo)
	broadcastSvc := broadcastService.NewBroadcastService(broadcastRepo, hub)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	accountHandler := appHTTP.NewPaymentAccountHandler(accountSvc)
	broadcastHandler := appHTTP.NewBroadcastHandler(broadcastSvc, hub, JWTService)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		salaryHandler,
		expenseHandler,
		accountHandler,
		broadcastHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
