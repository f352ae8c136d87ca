package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/crewboard/crewboard-back/config"
	"github.com/crewboard/crewboard-back/pkg/api/handlers"
	"github.com/crewboard/crewboard-back/pkg/cache"
	"github.com/crewboard/crewboard-back/pkg/chat"
	"github.com/crewboard/crewboard-back/pkg/email"
	"github.com/crewboard/crewboard-back/pkg/jobboard"
	"github.com/crewboard/crewboard-back/pkg/jobs"
	"github.com/crewboard/crewboard-back/pkg/leadimport"
	"github.com/crewboard/crewboard-back/pkg/leads"
	"github.com/crewboard/crewboard-back/pkg/metrics"
	"github.com/crewboard/crewboard-back/pkg/middleware"
	"github.com/crewboard/crewboard-back/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger := log.Default()

	// Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Printf("⚠️ Sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			log.Println("✅ Sentry initialized")
		}
	}

	// Database
	leadStore, err := leads.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer leadStore.Close()
	log.Println("✅ Database connected")

	jobStore := jobboard.NewPostgresStore(leadStore.DB())

	// Redis (optional; job-board caching degrades gracefully without it)
	var redisCache *cache.Client
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewClient(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Redis unavailable, continuing without cache: %v", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	// Session cache: the lead collection is loaded once at startup and
	// kept in memory for the lifetime of the process.
	session := leads.NewSession()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := session.Load(ctx, leadStore)
		cancel()
		if err != nil {
			log.Fatalf("❌ Failed to load lead session: %v", err)
		}
	}
	log.Printf("✅ Loaded %d leads into session", session.Len())

	// Services
	leadSvc := leads.NewService(leadStore, session)
	importSvc := leadimport.NewService(leadStore, session, cfg.ImportMaxRows, logger)
	jobSvc := jobboard.NewService(jobStore, redisCache)
	mailer := email.NewService(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName, logger)

	var uploader *storage.Uploader
	if cfg.S3Bucket != "" {
		uploader, err = storage.NewUploader(context.Background(), cfg.AWSRegion, cfg.S3Bucket, logger)
		if err != nil {
			log.Printf("⚠️ S3 unavailable, uploads disabled: %v", err)
			uploader = nil
		}
	}

	// Chat concierge
	clock := chat.SystemClock()
	promptCache := chat.NewTTLCache(time.Duration(cfg.ChatJobCacheTTLMin)*time.Minute, clock)
	visitorLimiter := chat.NewVisitorLimiter(cfg.ChatRequestsPerMinute, cfg.ChatBurst, 30*time.Minute, clock)

	var chatSvc *chat.Service
	if cfg.OpenAIAPIKey != "" {
		llm := chat.NewOpenAIClient(chat.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, logger)
		chatSvc = chat.NewService(llm, jobSvc, promptCache, visitorLimiter, logger)
	} else {
		log.Println("⚠️ OPENAI_API_KEY not set, chat concierge disabled")
	}

	// Cron jobs
	cronManager := jobs.NewCronManager(chatSvc, promptCache, visitorLimiter, logger)
	if err := cronManager.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron jobs: %v", err)
	}
	defer cronManager.Stop()

	// Metrics
	m := metrics.New(nil)

	// Echo
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	}
	e.Use(middleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst).Middleware())
	e.Use(m.Middleware())

	// Handlers
	leadHandler := handlers.NewLeadHandler(leadSvc, importSvc, m, mailer, cfg.AdminEmail)
	jobHandler := handlers.NewJobBoardHandler(jobSvc, uploader, mailer, cfg.AdminEmail)
	phoneHandler := handlers.NewPhoneHandler()
	uploadHandler := handlers.NewUploadHandler(uploader)

	// Public routes
	e.GET("/health", func(c echo.Context) error {
		if err := leadStore.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", m.Handler())
	e.GET("/api/jobs", jobHandler.ListOpen)
	e.POST("/api/jobs/:id/apply", jobHandler.Apply)

	if chatSvc != nil {
		chatHandler := handlers.NewChatHandler(chatSvc, m)
		e.POST("/api/chat", chatHandler.Ask)
	}

	// Admin routes
	admin := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin())
	admin.GET("/leads", leadHandler.List)
	admin.POST("/leads", leadHandler.Create)
	admin.POST("/leads/import", leadHandler.Import)
	admin.GET("/leads/export.csv", leadHandler.ExportCSV)
	admin.GET("/leads/export.xlsx", leadHandler.ExportExcel)
	admin.PATCH("/leads/:id/status", leadHandler.UpdateStatus)
	admin.PATCH("/leads/:id/notes", leadHandler.UpdateNotes)
	admin.DELETE("/leads/:id", leadHandler.Delete)
	admin.POST("/leads/bulk-delete", leadHandler.BulkDelete)
	admin.GET("/phone/check", phoneHandler.Check)
	admin.GET("/admin/jobs", jobHandler.ListAll)
	admin.POST("/admin/jobs", jobHandler.Create)
	admin.PUT("/admin/jobs/:id", jobHandler.Update)
	admin.DELETE("/admin/jobs/:id", jobHandler.Delete)
	admin.GET("/admin/applications", jobHandler.Applications)
	admin.POST("/admin/upload", uploadHandler.Upload)

	// Start server with graceful shutdown
	go func() {
		addr := cfg.APIHost + ":" + cfg.APIPort
		log.Printf("🚀 Server starting on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}
	log.Println("✅ Server exited")
}
