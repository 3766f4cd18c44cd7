// Package app — маршрутизация апдейтов и служебный HTTP.
package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/prklubi/club-bot/internal/bot/handlers"
	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/ctxutil"
	"github.com/prklubi/club-bot/internal/metrics"
	"github.com/prklubi/club-bot/internal/observability"
)

type Router struct {
	H   *handlers.Handler
	Log *zap.SugaredLogger
}

// HandleUpdate — точка входа одного апдейта. Паника обработчика гасится
// здесь: один кривой апдейт не должен ронять процесс.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	metrics.BotUpdates.Inc()
	defer func() {
		if p := recover(); p != nil {
			metrics.HandlerErrors.Inc()
			r.Log.Errorw("panic in handler", "panic", p)
			observability.CapturePanic(p)
		}
	}()

	ctx, cancel := ctxutil.WithUpdateTimeout(ctx)
	defer cancel()

	switch {
	case upd.CallbackQuery != nil:
		r.H.HandleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.From != nil && !upd.Message.From.IsBot:
		r.route(ctx, upd.Message)
	}
}

// route — приоритет разбора сообщения: служебные кнопки, команды, активные
// сценарии, гейт членства, главное меню. Порядок значим: кнопка перезапуска
// обязана работать из любого состояния.
func (r *Router) route(ctx context.Context, m *tgbotapi.Message) {
	h := r.H

	switch m.Text {
	case menu.RestartLabel:
		h.HandleRestart(ctx, m)
		return
	case menu.BackLabel:
		h.HandleBack(ctx, m)
		return
	}

	if m.IsCommand() {
		switch m.Command() {
		case "start":
			h.HandleStart(ctx, m)
		case "admin":
			h.HandleAdminCommand(ctx, m)
		case "broadcast":
			h.HandleBroadcastCommand(m)
		default:
			h.HandleStart(ctx, m)
		}
		return
	}

	if m.From.ID == h.OwnerID && h.Sessions.InBroadcast(m.From.ID) {
		h.HandleBroadcastPayload(ctx, m)
		return
	}

	if h.Sessions.Activity(m.From.ID) != nil {
		h.HandleActivityMessage(ctx, m)
		return
	}

	if h.Sessions.Admin(m.From.ID) != nil && h.Store.IsAdmin(ctx, m.From.ID) {
		if len(m.Photo) > 0 {
			h.HandleAdminPhoto(ctx, m)
		} else {
			h.HandleAdminMessage(ctx, m)
		}
		return
	}

	if !h.Members.IsMember(m.From.ID) {
		h.SendJoinChannel(m.Chat.ID)
		return
	}

	if len(m.Photo) > 0 {
		h.HandleMenuPhoto(ctx, m)
		return
	}
	h.HandleMenuText(ctx, m)
}
