// Package server initializes and runs the booking application: it derives
// the field-encryption key, connects storage, picks the notification channel
// and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookline/internal/cryptox"
	"github.com/dmitrijs2005/bookline/internal/logging"
	"github.com/dmitrijs2005/bookline/internal/server/bookings"
	"github.com/dmitrijs2005/bookline/internal/server/config"
	"github.com/dmitrijs2005/bookline/internal/server/httpapi"
	"github.com/dmitrijs2005/bookline/internal/server/notify"
	"github.com/dmitrijs2005/bookline/internal/server/shared/db"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	httpSrv *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cipher := cryptox.NewFieldCipher(cryptox.DeriveKey(cfg.EncryptionSecret))
	if cfg.EncryptionSecret == cryptox.DefaultSecret {
		logger.Warn(context.Background(), "running with the default encryption secret; stored personal data is not confidential")
	}

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN, cipher)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	dispatcher, err := newDispatcher(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("notifier init error: %w", err)
	}

	service := bookings.NewService(manager.Bookings(), dispatcher, cfg.AdminNotifyRecipient, logger)

	var limiter httpapi.RateLimiter
	if cfg.RedisAddr != "" {
		limiter = httpapi.NewRedisLimiter(cfg.RedisAddr, cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	httpSrv := httpapi.NewServer(cfg, service, limiter, logger)

	return &App{config: cfg, logger: logger, manager: manager, httpSrv: httpSrv}, nil
}

// newDispatcher selects the notification channel: Telegram when a bot token
// is configured, otherwise the WhatsApp Cloud API (which simulates sends
// while its credentials are unset).
func newDispatcher(cfg *config.Config, logger logging.Logger) (notify.Notifier, error) {
	if cfg.TelegramBotToken != "" {
		return notify.NewTelegramNotifier(cfg.TelegramBotToken, logger)
	}
	return notify.NewWhatsAppNotifier(cfg.WhatsAppToken, cfg.WhatsAppPhoneID, cfg.NotifyTimeout, logger), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpSrv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
