package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/fallback"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/openrouter"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ configuration failed: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	logger.Info("🚀 Starting portfolio backend...")

	// ──── Step 2: Optional Redis reply cache ────
	var replyCache services.ReplyCache
	var redisClient *redis.Client
	if cfg.CacheEnabled() {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("⚠ Redis unavailable, reply cache disabled")
		} else {
			defer redisClient.Close()
			replyCache = services.NewRedisReplyCache(redisClient, cfg.ChatCacheTTL)
			logger.Info("✓ Redis reply cache enabled")
		}
	}

	// ──── Step 3: Chat gateway ────
	upstream := openrouter.New(openrouter.Config{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
		SiteURL: cfg.SiteURL,
	})
	if !cfg.ChatConfigured() {
		logger.Warn("⚠ OPENROUTER_API_KEY not set, chat runs in local-only mode")
	}
	gateway := services.NewChatGateway(upstream, replyCache, fallback.Default(), logger, services.ChatGatewayOptions{
		Timeout: cfg.ChatTimeout,
	})

	// ──── Step 4: Contact forwarder ────
	var mailer services.Mailer
	if cfg.ResendAPIKey != "" {
		resendMailer, err := services.NewResendMailer(cfg.ResendAPIKey, cfg.ResendBaseURL)
		if err != nil {
			logger.WithError(err).Fatal("✗ Resend client initialization failed")
		}
		mailer = resendMailer
	} else {
		logger.Warn("⚠ RESEND_API_KEY not set, contact form will report a configuration error")
	}
	contactService := services.NewContactService(mailer, cfg.ContactTo, cfg.ContactFrom, logger)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		logger,
		handlers.NewChatHandler(gateway, logger),
		handlers.NewContactHandler(contactService, logger),
		cfg.FrontendURL,
	)

	// Worst case for /api/chat is every candidate timing out in turn.
	writeTimeout := time.Duration(len(services.DefaultModels))*cfg.ChatTimeout + 15*time.Second

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.WithError(err).Fatal("✗ Failed to listen")
	}

	logger.Infof("✓ Portfolio backend ready on http://localhost:%s", cfg.Port)
	logger.Infof("  Chat:    POST http://localhost:%s/api/chat", cfg.Port)
	logger.Infof("  Contact: POST http://localhost:%s/api/contact", cfg.Port)

	// In-flight chat requests may run for the whole candidate chain, so the
	// grace period matches the write timeout.
	if err := serve(server, ln, sigChan, writeTimeout, logger); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
	logger.Info("✓ Server stopped")
}

// serve runs server on ln until stop fires, then waits up to grace for
// in-flight requests before returning.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, grace time.Duration, logger logrus.FieldLogger) error {
	shutdownErr := make(chan error, 1)
	go func() {
		<-stop
		logger.Info("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	if err := server.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return <-shutdownErr
}
