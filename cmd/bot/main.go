package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/prklubi/club-bot/internal/app"
	"github.com/prklubi/club-bot/internal/bot/handlers"
	"github.com/prklubi/club-bot/internal/config"
	"github.com/prklubi/club-bot/internal/jobs"
	"github.com/prklubi/club-bot/internal/logging"
	"github.com/prklubi/club-bot/internal/observability"
	"github.com/prklubi/club-bot/internal/qr"
	"github.com/prklubi/club-bot/internal/session"
	"github.com/prklubi/club-bot/internal/sheets"
	"github.com/prklubi/club-bot/internal/store"
	"github.com/prklubi/club-bot/internal/tg"
)

const release = "club-bot@1.0.0"

func main() {
	// .env опционален: в проде всё приходит из окружения
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("логгер: %v", err)
	}
	defer lg.Closer()
	sugar := lg.Sugar

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		sugar.Warnw("sentry init failed", "err", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	creds, err := cfg.ServiceAccountJSON()
	if err != nil {
		sugar.Fatalw("service account", "err", err)
	}
	client, err := sheets.New(ctx, cfg.SpreadsheetID, creds)
	if err != nil {
		sugar.Fatalw("sheets client", "err", err)
	}

	st := store.NewWithClock(client, cfg.OwnerID, func() time.Time {
		return time.Now().In(cfg.Location)
	})

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		sugar.Fatalw("bot api", "err", err)
	}
	sugar.Infow("bot started", "username", bot.Self.UserName)

	h := &handlers.Handler{
		Bot:      bot,
		Store:    st,
		Sessions: session.NewStore(),
		Members:  tg.NewMembership(bot, cfg.ChannelUsername),
		QR:       qr.New(cfg.QREnabled),
		Log:      sugar,
		OwnerID:  cfg.OwnerID,
		Channel:  cfg.ChannelUsername,
	}
	router := &app.Router{H: h, Log: sugar}

	app.StartHTTP(ctx, cfg.HTTPAddr, client)

	runner := jobs.New(ctx)
	runner.Every(10*time.Minute, "pending_gauge", jobs.RefreshPendingGauge(st))
	runner.Every(time.Hour, "warm_admins", jobs.WarmAdmins(st))

	// Long polling с перезапуском: закрытие канала апдейтов — не повод
	// умирать, переподключаемся после паузы.
	for {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates := bot.GetUpdatesChan(u)

	loop:
		for {
			select {
			case <-ctx.Done():
				sugar.Infow("shutting down")
				bot.StopReceivingUpdates()
				return
			case upd, ok := <-updates:
				if !ok {
					break loop
				}
				router.HandleUpdate(ctx, upd)
			}
		}

		sugar.Warnw("updates channel closed, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}
