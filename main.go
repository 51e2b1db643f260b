package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"

	"clinic-desk-server/internal/clinic"
	"clinic-desk-server/internal/config"
	"clinic-desk-server/internal/logging"
	"clinic-desk-server/internal/metrics"
	"clinic-desk-server/internal/middleware"
	"clinic-desk-server/internal/models"
	"clinic-desk-server/internal/routes"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-desk-server",
		Short: "Front-desk API for a single medical clinic",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initDBCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func initDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create missing tables and optionally seed demonstration data",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			dbCfg := databaseConfig(cfg)
			dbCfg.Seed = false

			db, err := models.InitDB(dbCfg)
			if err != nil {
				logger.Error().Err(err).Msg("failed to initialize database")
				return err
			}
			logger.Info().Str("driver", cfg.Database.Driver).Msg("schema ready")

			if seed {
				seeded, err := models.Seed(db, models.PasswordScheme(cfg.PasswordScheme))
				if err != nil {
					logger.Error().Err(err).Msg("failed to seed database")
					return err
				}
				logger.Info().Bool("seeded", seeded).Msg("seed finished")
			}
			return nil
		},
	}
	cmd.Flags().Bool("seed", false, "insert demonstration data when the users table is empty")
	return cmd
}

// bootstrap loads .env, the configuration and the logger.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fallback := logging.New("info", true)
		fallback.Error().Err(err).Msg("failed to load config")
		return nil, fallback, err
	}

	logger := logging.New(cfg.LogLevel, cfg.IsDev())
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		logger.Warn().Err(envErr).Msg("could not read .env file")
	}
	return cfg, logger, nil
}

func databaseConfig(cfg *config.Config) models.DatabaseConfig {
	level := gormlogger.Silent
	if cfg.LogLevel == "debug" {
		level = gormlogger.Info
	}
	return models.DatabaseConfig{
		Driver:         cfg.Database.Driver,
		DSN:            cfg.Database.DSN,
		Seed:           cfg.Database.Seed,
		PasswordScheme: models.PasswordScheme(cfg.PasswordScheme),
		LogLevel:       level,
	}
}

func runServer() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := models.InitDB(databaseConfig(cfg))
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize database")
		return err
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("connected to database")

	svc := clinic.NewService(db, logger.With().Str("component", "clinic").Logger(),
		clinic.WithPasswordScheme(models.PasswordScheme(cfg.PasswordScheme)),
	)
	m := metrics.NewClinicMetrics(prometheus.NewRegistry())

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(m.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, svc, cfg, m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
			return err
		}
	case <-quit:
	}

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server stopped")
	return nil
}
