package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/store"
)

// RegisterByCard пытается привязать карту к аккаунту отправителя.
func (h *Handler) RegisterByCard(ctx context.Context, m *tgbotapi.Message, cardCode string) {
	cardCode = strings.TrimSpace(cardCode)
	if cardCode == "" {
		h.askCard(m.Chat.ID)
		return
	}

	student, err := h.Store.BindCard(ctx, cardCode, m.From.ID)
	switch err {
	case nil:
		h.replyKB(m.Chat.ID,
			fmt.Sprintf("Xush kelibsiz, %s! Ro'yxatdan o'tdingiz.\n\n%s",
				student.FullName, formatProfile(student)),
			menu.Main())
	case store.ErrNotFound:
		h.reply(m.Chat.ID, "Bunday karta kodi topilmadi. Kodni tekshirib, qayta yuboring.")
	case store.ErrCardLinked:
		h.reply(m.Chat.ID, "Bu karta boshqa Telegram akkauntga bog'langan. Adminlarga murojaat qiling.")
	default:
		h.Log.Errorw("register: bind card", "user", m.From.ID, "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
	}
}

// HandleMenuPhoto — фото вне сценариев: единственная трактовка — QR-код
// карты для регистрации.
func (h *Handler) HandleMenuPhoto(ctx context.Context, m *tgbotapi.Message) {
	if !h.QR.Enabled() {
		h.askCard(m.Chat.ID)
		return
	}
	code := h.decodePhotoQR(m)
	if code == "" {
		h.reply(m.Chat.ID, "QR-kod o'qilmadi. Karta kodini matn bilan yuboring.")
		return
	}
	h.RegisterByCard(ctx, m, code)
}

// decodePhotoQR скачивает самое крупное фото сообщения и декодирует QR.
// Пустая строка — не распозналось.
func (h *Handler) decodePhotoQR(m *tgbotapi.Message) string {
	fileID := largestPhotoID(m)
	if fileID == "" {
		return ""
	}
	data, err := h.photoBytes(fileID)
	if err != nil {
		h.Log.Warnw("qr: download photo", "err", err)
		return ""
	}
	return h.QR.Decode(data)
}

func (h *Handler) photoBytes(fileID string) ([]byte, error) {
	url, err := h.Bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download photo: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// largestPhotoID — file_id фото максимального разрешения; Bot API отдаёт
// варианты по возрастанию размера.
func largestPhotoID(m *tgbotapi.Message) string {
	if len(m.Photo) == 0 {
		return ""
	}
	return m.Photo[len(m.Photo)-1].FileID
}
