package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/config"
	"github.com/dmorgachev/ce-tracker/internal/handler"
	"github.com/dmorgachev/ce-tracker/internal/identity"
	"github.com/dmorgachev/ce-tracker/internal/repository"
	"github.com/dmorgachev/ce-tracker/internal/service"
	"github.com/dmorgachev/ce-tracker/internal/session"
	"github.com/dmorgachev/ce-tracker/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Postgres())

	provider := identity.NewClient(
		cfg.Identity.BaseURL,
		cfg.Identity.APIKey,
		cfg.Identity.Timeout.Duration,
	)

	revocations := session.NewRevocationList(infra.Redis())
	resolver := session.NewResolver(provider, repos.User, revocations)
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	authService := service.NewAuthService(provider, repos.User, revocations, cfg.Session.MaxAge.Duration)
	ceService := service.NewCEService(repos.Requirement, repos.Record, time.Now)
	profileService := service.NewProfileService(repos.User, repos.State, repos.Course)
	billingService := service.NewBillingService(repos.User, infra.Logger())

	handlers := &handlers{
		auth:    handler.NewAuthHandler(authService, cfg.Session, infra.Logger()),
		ce:      handler.NewCEHandler(ceService, infra.Logger()),
		profile: handler.NewProfileHandler(profileService, infra.Logger()),
		report:  handler.NewReportHandler(ceService, profileService, infra.Logger()),
		webhook: handler.NewWebhookHandler(billingService, cfg.Stripe.WebhookSecret, infra.Logger()),
	}

	router := gin.Default()
	router.Use(otelgin.Middleware("ce-tracker"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, handlers, resolver, rateLimiter, healthChecker, infra.MetricsHandler(), infra.Logger())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

type handlers struct {
	auth    *handler.AuthHandler
	ce      *handler.CEHandler
	profile *handler.ProfileHandler
	report  *handler.ReportHandler
	webhook *handler.WebhookHandler
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	h *handlers,
	resolver *session.Resolver,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
	logger *zap.Logger,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	authRequired := handler.AuthMiddleware(resolver, cfg.Session.CookieName, logger)
	proRequired := handler.ProMiddleware(logger)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup",
				handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey),
				h.auth.Signup,
			)
			auth.POST("/login",
				handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey),
				h.auth.Login,
			)
			auth.POST("/logout", authRequired, h.auth.Logout)
			auth.GET("/me", authRequired, h.auth.Me)
		}

		ce := api.Group("/ce", authRequired)
		{
			ce.GET("/records", h.ce.ListRecords)
			ce.POST("/records", h.ce.CreateRecord)
			ce.GET("/status", h.ce.Status)
		}

		api.GET("/states", h.profile.States)
		api.GET("/courses", authRequired, h.profile.Courses)
		api.PUT("/settings", authRequired, h.profile.UpdateSettings)

		reports := api.Group("/report", authRequired)
		{
			reports.GET("/csv", h.report.DownloadCSV)
			reports.GET("/pdf", proRequired, h.report.DownloadPDF)
		}

		api.POST("/payments/webhook", h.webhook.HandleStripeEvent)
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
