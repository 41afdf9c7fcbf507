package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dudufisio/clinic-api/internal/config"
	"github.com/dudufisio/clinic-api/internal/domain/bodymap"
	"github.com/dudufisio/clinic-api/internal/domain/exercise"
	"github.com/dudufisio/clinic-api/internal/domain/patient"
	"github.com/dudufisio/clinic-api/internal/domain/records"
	"github.com/dudufisio/clinic-api/internal/domain/report"
	"github.com/dudufisio/clinic-api/internal/domain/scheduling"
	"github.com/dudufisio/clinic-api/internal/platform/auth"
	"github.com/dudufisio/clinic-api/internal/platform/db"
	"github.com/dudufisio/clinic-api/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Auth
	userRepo := auth.NewUserRepoPG(pool)
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		// Only reachable in development; Validate rejects this elsewhere.
		jwtSecret = "dev-secret-do-not-use-in-production"
		logger.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}
	issuer := auth.NewTokenIssuer([]byte(jwtSecret), cfg.TokenTTL)

	if cfg.IsDev() {
		seedDevUser(ctx, userRepo, logger)
	}

	// API group with rate limiting; login stays public, everything else
	// behind the auth middleware.
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api := e.Group("/api")
	api.Use(middleware.RateLimit(rateLimitCfg))

	authHandler := auth.NewHandler(userRepo, issuer)
	authHandler.RegisterRoutes(api)

	protected := api.Group("", auth.Middleware(userRepo, issuer))

	// Patient domain
	patientRepo := patient.NewRepoPG(pool)
	patientSvc := patient.NewService(patientRepo)
	patientHandler := patient.NewHandler(patientSvc)
	patientHandler.RegisterRoutes(protected)

	// Scheduling domain
	apptRepo := scheduling.NewAppointmentRepoPG(pool)
	guard := scheduling.NewGuard(apptRepo, cfg.ReservationTTL)
	schedSvc := scheduling.NewService(apptRepo, patientSvc, guard, cfg.RejectPastDated)
	schedHandler := scheduling.NewHandler(schedSvc)
	schedHandler.RegisterRoutes(protected)

	// Medical records domain
	recordsRepo := records.NewRepoPG(pool)
	recordsSvc := records.NewService(recordsRepo, patientSvc)
	recordsHandler := records.NewHandler(recordsSvc)
	recordsHandler.RegisterRoutes(protected)

	// Body map domain
	bodymapRepo := bodymap.NewRepoPG(pool)
	bodymapSvc := bodymap.NewService(bodymapRepo, patientSvc)
	bodymapHandler := bodymap.NewHandler(bodymapSvc)
	bodymapHandler.RegisterRoutes(protected)

	// Exercise catalog domain
	exerciseRepo := exercise.NewRepoPG(pool)
	exerciseSvc := exercise.NewService(exerciseRepo)
	exerciseHandler := exercise.NewHandler(exerciseSvc)
	exerciseHandler.RegisterRoutes(protected)

	// Report generation domain
	var generator report.Generator = report.TemplateGenerator{}
	if cfg.AIReportURL != "" {
		generator = report.NewHTTPGenerator(cfg.AIReportURL, cfg.AIReportKey, logger)
	}
	reportSvc := report.NewService(generator, patientSvc)
	reportHandler := report.NewHandler(reportSvc)
	reportHandler.RegisterRoutes(protected)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// seedDevUser ensures a login exists for local development.
func seedDevUser(ctx context.Context, users auth.UserRepository, logger zerolog.Logger) {
	hash, err := auth.HashPassword("demo123456")
	if err != nil {
		logger.Warn().Err(err).Msg("failed to hash dev user password")
		return
	}
	err = users.Create(ctx, &auth.User{
		Email:        "admin@dudufisio.com",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         "admin",
	})
	if err != nil && !errors.Is(err, auth.ErrEmailTaken) {
		logger.Warn().Err(err).Msg("failed to seed dev user")
		return
	}
	logger.Info().Str("email", "admin@dudufisio.com").Msg("development user available")
}
