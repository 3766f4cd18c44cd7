// Package handlers — сценарии бота: регистрация по карте, подача активности,
// просмотр профиля и рейтинга, админ-панель, рассылка. Каждый обработчик
// получает уже раскрытое сообщение или колбэк от диспетчера.
package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/prklubi/club-bot/internal/qr"
	"github.com/prklubi/club-bot/internal/session"
	"github.com/prklubi/club-bot/internal/store"
	"github.com/prklubi/club-bot/internal/tg"
)

type Handler struct {
	Bot      *tgbotapi.BotAPI
	Store    *store.Store
	Sessions *session.Store
	Members  *tg.Membership
	QR       *qr.Decoder
	Log      *zap.SugaredLogger
	OwnerID  int64
	Channel  string
}

// reply — короткий ответ текстом в тот же чат.
func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

// replyKB — ответ с клавиатурой.
func (h *Handler) replyKB(chatID int64, text string, kb tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) send(msg tgbotapi.Chattable) {
	if _, err := tg.Send(h.Bot, msg); err != nil {
		h.Log.Warnw("send failed", "err", err)
	}
}
