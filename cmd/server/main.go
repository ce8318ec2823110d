package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/altruist/ucp-payments/internal/config"
	"github.com/altruist/ucp-payments/internal/database"
	"github.com/altruist/ucp-payments/internal/gateway"
	"github.com/altruist/ucp-payments/internal/handler"
	"github.com/altruist/ucp-payments/internal/middleware"
	"github.com/altruist/ucp-payments/internal/repository"
	"github.com/altruist/ucp-payments/internal/service"
	"github.com/altruist/ucp-payments/internal/validation"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	router.GET("/hello", handler.Hello)
	router.GET("/health", handler.NewHealthHandler(pool).Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.SetupSwagger(router)
	if err := setupAPIRoutes(router, pool, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, cfg *config.Config) error {
	ruleRepo := repository.NewRuleRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	registry, err := gateway.NewRegistry(
		gateway.NewUPIGateway(),
		gateway.NewCardGateway(),
		gateway.NewApplePayGateway(),
	)
	if err != nil {
		return err
	}

	validator := validation.NewValidator(ruleRepo)
	paymentService := service.NewPaymentService(registry, validator, paymentRepo, cfg.DefaultCountry)
	ruleService := service.NewRuleService(ruleRepo)

	paymentHandler := handler.NewPaymentHandler(paymentService)
	ruleHandler := handler.NewRuleHandler(ruleService)

	api := router.Group("/api")
	{
		api.POST("/payments/process", paymentHandler.Process)
		api.GET("/payments/gateways", paymentHandler.Gateways)
		api.GET("/payments/history", paymentHandler.History)

		api.GET("/country-rules", ruleHandler.List)
		api.GET("/country-rules/:countryCode", ruleHandler.GetByCountry)
		api.POST("/country-rules", ruleHandler.Create)
		api.PUT("/country-rules/:id", ruleHandler.Update)
	}

	return nil
}
