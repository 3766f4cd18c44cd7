package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/models"
	"github.com/prklubi/club-bot/internal/store"
	"github.com/prklubi/club-bot/internal/tg"
)

// HandleMenuText — текст вне сценариев: кнопки главного меню, а любой другой
// текст от незарегистрированного пользователя трактуем как код карты.
func (h *Handler) HandleMenuText(ctx context.Context, m *tgbotapi.Message) {
	switch m.Text {
	case menu.ProfileLabel:
		h.ShowProfile(ctx, m)
	case menu.AddActivityLabel:
		h.StartActivityFlow(ctx, m)
	case menu.MyActivitiesLabel:
		h.ShowMyActivities(ctx, m)
	case menu.RatingLabel:
		h.ShowRating(ctx, m)
	default:
		_, err := h.Store.FindStudentByTelegramID(ctx, m.From.ID)
		switch {
		case err == store.ErrNotFound:
			h.RegisterByCard(ctx, m, m.Text)
		case err != nil:
			h.Log.Errorw("menu: find student", "user", m.From.ID, "err", err)
			h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		default:
			h.replyKB(m.Chat.ID, "Menyudan bo'lim tanlang.", menu.Main())
		}
	}
}

// ShowProfile — карточка студента: имя, группа, карта, баллы.
func (h *Handler) ShowProfile(ctx context.Context, m *tgbotapi.Message) {
	student, err := h.Store.FindStudentByTelegramID(ctx, m.From.ID)
	if err == store.ErrNotFound {
		h.askCard(m.Chat.ID)
		return
	}
	if err != nil {
		h.Log.Errorw("profile: find student", "user", m.From.ID, "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	h.replyKB(m.Chat.ID, formatProfile(student), menu.Main())
}

func formatProfile(s models.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s\n", s.FullName)
	if s.Group != "" {
		fmt.Fprintf(&b, "Guruh: %s\n", s.Group)
	}
	fmt.Fprintf(&b, "Karta: %s\n", s.CardCode)
	fmt.Fprintf(&b, "Ball: %d", s.TotalPoints)
	return b.String()
}

// ShowMyActivities — список заявок студента со статусами; у заявок с фото
// есть инлайн-кнопка просмотра.
func (h *Handler) ShowMyActivities(ctx context.Context, m *tgbotapi.Message) {
	student, err := h.Store.FindStudentByTelegramID(ctx, m.From.ID)
	if err == store.ErrNotFound {
		h.askCard(m.Chat.ID)
		return
	}
	if err != nil {
		h.Log.Errorw("my activities: find student", "user", m.From.ID, "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	acts, err := h.Store.StudentActivities(ctx, student.ID)
	if err != nil {
		h.Log.Errorw("my activities: list", "student", student.ID, "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	if len(acts) == 0 {
		h.replyKB(m.Chat.ID, "Hali faollik topshirmagansiz.", menu.Main())
		return
	}
	for _, a := range acts {
		msg := tgbotapi.NewMessage(m.Chat.ID, formatActivity(a))
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🖼 Rasmlarni ko'rish",
					callbackData{Action: actionMyPhotos, ID: a.ID}.encode()),
			),
		)
		h.send(msg)
	}
}

func formatActivity(a models.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", a.Date, a.Title)
	if a.Description != "" {
		fmt.Fprintf(&b, "%s\n", a.Description)
	}
	fmt.Fprintf(&b, "Turi: %s\n", a.Category)
	fmt.Fprintf(&b, "Holati: %s", statusIcon(a.Status))
	return b.String()
}

func statusIcon(s models.Status) string {
	switch s {
	case models.StatusApproved:
		return "✅ " + string(s)
	case models.StatusRejected:
		return "❌ " + string(s)
	default:
		return "⏳ " + string(s)
	}
}

// ShowRating — топ-10 по баллам.
func (h *Handler) ShowRating(ctx context.Context, m *tgbotapi.Message) {
	top, err := h.Store.TopStudents(ctx, 10)
	if err != nil {
		h.Log.Errorw("rating: top students", "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	var b strings.Builder
	b.WriteString("🏆 Reyting (top-10):\n")
	for i, s := range top {
		fmt.Fprintf(&b, "%d. %s — %d ball\n", i+1, s.FullName, s.TotalPoints)
	}
	h.replyKB(m.Chat.ID, b.String(), menu.Main())
}

// sendPhotoAlbum отправляет file_id-шки альбомом; Telegram принимает в
// медиагруппе от 2 до 10 элементов, одиночное фото шлём обычным сообщением,
// хвост длиннее десяти режем на части.
func (h *Handler) sendPhotoAlbum(chatID int64, fileIDs []string, caption string) {
	for len(fileIDs) > 0 {
		n := len(fileIDs)
		if n > 10 {
			n = 10
		}
		batch := fileIDs[:n]
		fileIDs = fileIDs[n:]

		if len(batch) == 1 {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(batch[0]))
			photo.Caption = caption
			h.send(photo)
			caption = ""
			continue
		}
		media := make([]interface{}, 0, len(batch))
		for i, f := range batch {
			p := tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(f))
			if i == 0 {
				p.Caption = caption
			}
			media = append(media, p)
		}
		if _, err := h.Bot.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, media)); err != nil {
			h.Log.Warnw("send media group", "err", err)
			tg.CaptureIfSystem(err)
		}
		caption = ""
	}
}
