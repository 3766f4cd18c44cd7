package handlers

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/metrics"
	"github.com/prklubi/club-bot/internal/tg"
)

// HandleBroadcastPayload — сообщение владельца в режиме рассылки: копируется
// всем зарегистрированным как есть (текст, фото, любой тип).
func (h *Handler) HandleBroadcastPayload(ctx context.Context, m *tgbotapi.Message) {
	h.Sessions.ClearBroadcast(m.From.ID)

	ids, err := h.Store.BroadcastUserIDs(ctx)
	if err != nil {
		h.Log.Errorw("broadcast: user ids", "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}

	sent := h.BroadcastCopy(m.Chat.ID, m.MessageID, ids)
	h.replyKB(m.Chat.ID,
		fmt.Sprintf("E'lon yuborildi: %d/%d.", sent, len(ids)), menu.Main())
}

// BroadcastCopy копирует сообщение каждому получателю. Отказ одного
// получателя (заблокировал бота и т.п.) не прерывает остальных. Пауза между
// отправками — грубая защита от лимитов Bot API.
func (h *Handler) BroadcastCopy(fromChatID int64, messageID int, recipients []int64) int {
	sent := 0
	for _, id := range recipients {
		if _, err := h.Bot.Request(tgbotapi.NewCopyMessage(id, fromChatID, messageID)); err != nil {
			h.Log.Warnw("broadcast: copy", "to", id, "err", err)
			tg.CaptureIfSystem(err)
			continue
		}
		sent++
		metrics.BroadcastSent.Inc()
		time.Sleep(50 * time.Millisecond)
	}
	return sent
}
