package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/store"
)

// HandleStart — /start: зарегистрированному показываем главное меню,
// остальных ведём на регистрацию. Любое состояние диалога сбрасывается.
func (h *Handler) HandleStart(ctx context.Context, m *tgbotapi.Message) {
	h.Sessions.Reset(m.From.ID)

	if !h.Members.IsMember(m.From.ID) {
		h.SendJoinChannel(m.Chat.ID)
		return
	}

	student, err := h.Store.FindStudentByTelegramID(ctx, m.From.ID)
	switch {
	case err == nil:
		h.replyKB(m.Chat.ID,
			fmt.Sprintf("Assalomu alaykum, %s! PR klubi botiga xush kelibsiz.", student.FullName),
			menu.Main())
	case err == store.ErrNotFound:
		h.askCard(m.Chat.ID)
	default:
		h.Log.Errorw("start: find student", "user", m.From.ID, "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
	}
}

func (h *Handler) askCard(chatID int64) {
	text := "Ro'yxatdan o'tish uchun a'zolik kartangizdagi kodni yuboring."
	if h.QR.Enabled() {
		text += " Kartadagi QR-kod rasmini ham yuborishingiz mumkin."
	}
	h.replyKB(chatID, text, menu.BackOnly())
}

// SendJoinChannel — приглашение подписаться на канал клуба. Без подписки
// бот не обслуживает.
func (h *Handler) SendJoinChannel(chatID int64) {
	h.reply(chatID, fmt.Sprintf(
		"Botdan foydalanish uchun avval %s kanaliga a'zo bo'ling, so'ng /start ni qayta yuboring.",
		h.Channel))
}

// HandleAdminCommand — /admin: открывает панель только админам.
func (h *Handler) HandleAdminCommand(ctx context.Context, m *tgbotapi.Message) {
	if !h.Store.IsAdmin(ctx, m.From.ID) {
		h.reply(m.Chat.ID, "Bu buyruq faqat adminlar uchun.")
		return
	}
	h.Sessions.Reset(m.From.ID)
	h.Sessions.StartAdmin(m.From.ID)
	h.replyKB(m.Chat.ID, "Admin paneli.", menu.Admin())
}

// HandleBroadcastCommand — /broadcast: только владелец. Следующее сообщение
// владельца уйдёт всем зарегистрированным.
func (h *Handler) HandleBroadcastCommand(m *tgbotapi.Message) {
	if m.From.ID != h.OwnerID {
		h.reply(m.Chat.ID, "Bu buyruq faqat bot egasi uchun.")
		return
	}
	h.Sessions.Reset(m.From.ID)
	h.Sessions.StartBroadcast(m.From.ID)
	h.replyKB(m.Chat.ID, "E'lon matnini yuboring — u barcha a'zolarga yetkaziladi.", menu.BackOnly())
}

// HandleRestart — кнопка перезапуска: полный сброс в главное меню.
func (h *Handler) HandleRestart(ctx context.Context, m *tgbotapi.Message) {
	h.HandleStart(ctx, m)
}

// HandleBack — кнопка "назад": активный сценарий сворачивается, админ
// остаётся в панели, остальные попадают в главное меню.
func (h *Handler) HandleBack(ctx context.Context, m *tgbotapi.Message) {
	if h.Sessions.Back(m.From.ID) {
		h.replyKB(m.Chat.ID, "Admin paneli.", menu.Admin())
		return
	}
	h.HandleStart(ctx, m)
}
