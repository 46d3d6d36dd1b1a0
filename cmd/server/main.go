package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/portfolio/portfolio-server/internal/config"
	"github.com/portfolio/portfolio-server/internal/content"
	"github.com/portfolio/portfolio-server/internal/mail"
	"github.com/portfolio/portfolio-server/internal/middleware"
	"github.com/portfolio/portfolio-server/internal/redis"
	"github.com/portfolio/portfolio-server/internal/repository"
	"github.com/portfolio/portfolio-server/internal/server"
	"github.com/portfolio/portfolio-server/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	cfg.LogSummary()

	ctx := context.Background()

	contactRepo, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open contact store")
	}
	defer closeStore()

	mailer, err := mail.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer")
	}
	verifyMailer(ctx, mailer)

	portfolio, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load portfolio content")
	}

	var limiter middleware.Limiter = middleware.NewMemoryLimiter()
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("redis connected")
		limiter = service.NewRateLimiter(redisClient.Client)
	}

	adminService := service.NewAdminService(cfg.AdminPassword, cfg.AdminPasswordHash)
	contactService := service.NewContactService(contactRepo, mailer, cfg.MyEmail)

	router := server.NewRouter(server.Deps{
		AdminService:     adminService,
		ContactService:   contactService,
		Portfolio:        portfolio,
		ContactLimiter:   limiter,
		ContactRateLimit: cfg.ContactRateLimitPerMin,
		ContactWindow:    config.ContactRateLimitWindow,
		FrontendURL:      cfg.FrontendURL,
		StaticDir:        cfg.StaticDir,
		IsProduction:     cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// verifyMailer checks the mail transport once. A failure is only logged:
// submissions are still stored when notifications cannot be sent.
func verifyMailer(ctx context.Context, mailer mail.Mailer) {
	verifyCtx, cancel := context.WithTimeout(ctx, config.MailVerifyTimeout)
	defer cancel()

	if err := mailer.Verify(verifyCtx); err != nil {
		log.Warn().Err(err).Str("transport", mailer.Name()).Msg("mail transport verification failed")
		return
	}
	log.Info().Str("transport", mailer.Name()).Msg("mail transport ready")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
