package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/session"
	"github.com/prklubi/club-bot/internal/store"
)

// StartActivityFlow запускает сценарий подачи: категория → название →
// описание → фото → запись в таблицу.
func (h *Handler) StartActivityFlow(ctx context.Context, m *tgbotapi.Message) {
	student, err := h.Store.FindStudentByTelegramID(ctx, m.From.ID)
	if err == store.ErrNotFound {
		h.askCard(m.Chat.ID)
		return
	}
	if err != nil {
		h.Log.Errorw("activity flow: find student", "user", m.From.ID, "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	h.Sessions.StartActivity(m.From.ID, student.ID)
	h.replyKB(m.Chat.ID, "Faollik turini tanlang:", menu.Categories())
}

// HandleActivityMessage — шаг активного сценария подачи. Кнопки перезапуска
// и "назад" диспетчер перехватывает раньше.
func (h *Handler) HandleActivityMessage(ctx context.Context, m *tgbotapi.Message) {
	a := h.Sessions.Activity(m.From.ID)
	if a == nil {
		return
	}

	switch a.Stage {
	case session.StageCategory:
		if strings.TrimSpace(m.Text) == "" {
			h.replyKB(m.Chat.ID, "Faollik turini tanlang:", menu.Categories())
			return
		}
		a.SetCategory(m.Text)
		h.replyKB(m.Chat.ID, "Faollik nomini yozing:", menu.BackOnly())

	case session.StageTitle:
		if strings.TrimSpace(m.Text) == "" {
			h.replyKB(m.Chat.ID, "Faollik nomini yozing:", menu.BackOnly())
			return
		}
		a.SetTitle(m.Text)
		h.replyKB(m.Chat.ID, "Faollik haqida qisqacha yozing:", menu.BackOnly())

	case session.StageDescription:
		if strings.TrimSpace(m.Text) == "" {
			h.replyKB(m.Chat.ID, "Faollik haqida qisqacha yozing:", menu.BackOnly())
			return
		}
		a.SetDescription(m.Text)
		h.replyKB(m.Chat.ID,
			"Dalil sifatida rasm(lar) yuboring. Tugatgach \""+menu.FinishPhotosLabel+"\" ni bosing.",
			menu.Photos())

	case session.StagePhotos:
		h.handlePhotosStage(ctx, m, a)
	}
}

func (h *Handler) handlePhotosStage(ctx context.Context, m *tgbotapi.Message, a *session.Activity) {
	if fileID := largestPhotoID(m); fileID != "" {
		a.AddPhoto(fileID)
		h.reply(m.Chat.ID, fmt.Sprintf("Rasm qabul qilindi (%d ta).", len(a.Photos)))
		return
	}
	if m.Text != menu.FinishPhotosLabel {
		h.replyKB(m.Chat.ID,
			"Rasm yuboring yoki \""+menu.FinishPhotosLabel+"\" ni bosing.", menu.Photos())
		return
	}
	if len(a.Photos) == 0 {
		h.replyKB(m.Chat.ID, "Kamida bitta rasm yuborish kerak.", menu.Photos())
		return
	}

	// Ошибка записи не сбрасывает накопленное: пользователь может нажать
	// "Yakunlash" ещё раз.
	if _, err := h.Store.SubmitActivity(ctx, a.StudentID, a.Title, a.Description, a.Category, a.Photos); err != nil {
		h.Log.Errorw("activity flow: submit", "student", a.StudentID, "err", err)
		h.replyKB(m.Chat.ID,
			"Saqlashda xatolik yuz berdi. \""+menu.FinishPhotosLabel+"\" ni qayta bosing.",
			menu.Photos())
		return
	}
	h.Sessions.ClearActivity(m.From.ID)
	h.replyKB(m.Chat.ID,
		"Faollik qabul qilindi! Admin tasdiqlagach ball qo'shiladi.", menu.Main())
}
