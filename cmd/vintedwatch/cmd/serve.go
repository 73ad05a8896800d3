package cmd

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

	"github.com/bwmarrin/discordgo"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tdevries/vintedwatch/internal/api/handlers"
	"github.com/tdevries/vintedwatch/internal/api/middleware"
	"github.com/tdevries/vintedwatch/internal/bot"
	"github.com/tdevries/vintedwatch/internal/config"
	"github.com/tdevries/vintedwatch/internal/engine"
	"github.com/tdevries/vintedwatch/internal/metrics"
	"github.com/tdevries/vintedwatch/internal/notify"
	"github.com/tdevries/vintedwatch/internal/store"
	"github.com/tdevries/vintedwatch/internal/vinted"
	"github.com/tdevries/vintedwatch/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server, scheduler and notification engine",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	m := metrics.New(prometheus.DefaultRegisterer)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	limiter := vinted.NewRateLimiter(
		cfg.Vinted.RateLimit.PerSecond,
		cfg.Vinted.RateLimit.Burst,
		cfg.Vinted.RateLimit.DailyLimit,
	)
	catalog := vinted.NewCatalogClient(
		vinted.WithBaseURL(cfg.Vinted.BaseURL),
		vinted.WithPerPage(cfg.Vinted.MaxItemsPerCheck),
		vinted.WithHTTPClient(&http.Client{Timeout: cfg.Vinted.RequestTimeout}),
		vinted.WithRateLimiter(limiter),
		vinted.WithMetrics(m),
	)

	notifier, err := buildNotifier(cfg, log)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(st, catalog, notifier,
		engine.WithLogger(log),
		engine.WithMetrics(m),
		engine.WithStaggerOffset(cfg.Schedule.CheckDelay),
		engine.WithPerCheckLimit(cfg.Vinted.MaxItemsPerCheck),
	)

	sched, err := engine.NewScheduler(eng, st, cfg.Schedule.CheckInterval, log,
		engine.WithSchedulerMetrics(m),
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	if err := sched.RecoverStaleJobRuns(context.Background()); err != nil {
		log.Error("stale job recovery failed", "error", err)
	}
	sched.Start()
	sched.SyncNextRunTimestamps()
	defer func() {
		<-sched.Stop().Done()
	}()

	var discordBot *bot.Bot
	if cfg.Notifications.Backend == "discord" && cfg.Notifications.Discord.CommandsEnabled {
		discordBot, err = bot.New(cfg.Notifications.Discord.Token, st, catalog, log)
		if err != nil {
			return fmt.Errorf("starting discord bot: %w", err)
		}
		defer func() {
			if err := discordBot.Close(); err != nil {
				log.Error("closing discord bot failed", "error", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics(m))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterRoutes(e, st, eng)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"check_interval", cfg.Schedule.CheckInterval,
		"notification_backend", cfg.Notifications.Backend,
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// buildNotifier picks the delivery backend. The Discord notifier only
// needs the REST API, so its session is never opened to the gateway.
func buildNotifier(cfg *config.Config, log *slog.Logger) (notify.Notifier, error) {
	switch cfg.Notifications.Backend {
	case "discord":
		session, err := discordgo.New("Bot " + cfg.Notifications.Discord.Token)
		if err != nil {
			return nil, fmt.Errorf("creating discord session: %w", err)
		}
		return notify.NewDiscordNotifier(session), nil
	case "webhook":
		return notify.NewWebhookNotifier(
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
		), nil
	case "noop":
		log.Info("notifications disabled, using noop backend")
		return notify.NewNoop(log), nil
	default:
		return nil, fmt.Errorf("unknown notification backend %q", cfg.Notifications.Backend)
	}
}
