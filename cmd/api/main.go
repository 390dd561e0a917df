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

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/config"
	appHTTP "github.com/dashspecter/auditbuddy-automations-sub005/internal/handler/http"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/cron"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/database"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/jwt"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/telemetry"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/repository/postgresql"
	payrollService "github.com/dashspecter/auditbuddy-automations-sub005/internal/service/payroll"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	appName    = "payroll-api"
	appVersion = "v1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    appName,
		ServiceVersion: appVersion,
		Endpoint:       cfg.Telemetry.OTLPEndpoint,
		Insecure:       cfg.Telemetry.OTLPInsecure,
	})
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("Tracer shutdown failed", "error", err)
		}
	}()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db, cfg.Payroll.Timezone)

	engine := payrollService.NewEngine(cfg.Payroll.Timezone, logger)
	previewCache := payrollService.NewPreviewCache(cfg.Payroll.CacheTTL)
	payrollSvc := payrollService.NewPayrollService(shiftRepo, attendanceRepo, engine, previewCache)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		slog.Error("Error creating JWT service", "error", err)
		os.Exit(1)
	}

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        appName,
		Version:        appVersion,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, payrollHandler)

	scheduler := cron.NewSchedulerWithLogger(logger)
	cron.NewPayrollJobs(previewCache, cfg.Payroll.CacheSweepInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      otelhttp.NewHandler(router, appName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErr:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
