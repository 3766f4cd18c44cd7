package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/models"
	"github.com/prklubi/club-bot/internal/session"
	"github.com/prklubi/club-bot/internal/store"
	"github.com/prklubi/club-bot/internal/tg"
)

// Колбэки кодируются как "действие:идентификатор". Идентификатор — ID
// активности из листа.
type action string

const (
	actionApprove        action = "approve"
	actionReject         action = "reject"
	actionActivityPhotos action = "aphotos"
	actionMyPhotos       action = "myphotos"
	actionStudentPhotos  action = "stuphotos"
)

type callbackData struct {
	Action action
	ID     string
}

func (c callbackData) encode() string {
	return string(c.Action) + ":" + c.ID
}

func parseCallback(data string) (callbackData, bool) {
	a, id, ok := strings.Cut(data, ":")
	if !ok || a == "" || id == "" {
		return callbackData{}, false
	}
	switch action(a) {
	case actionApprove, actionReject, actionActivityPhotos, actionMyPhotos, actionStudentPhotos:
		return callbackData{Action: action(a), ID: id}, true
	}
	return callbackData{}, false
}

// HandleCallback — инлайн-кнопки: решения по заявкам и просмотр фото.
func (h *Handler) HandleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	defer h.answerCallback(cb.ID)

	data, ok := parseCallback(cb.Data)
	if !ok {
		h.Log.Warnw("callback: bad data", "data", cb.Data)
		return
	}
	chatID := cb.Message.Chat.ID

	switch data.Action {
	case actionMyPhotos:
		h.sendActivityPhotos(ctx, chatID, data.ID)

	case actionActivityPhotos, actionStudentPhotos:
		if !h.Store.IsAdmin(ctx, cb.From.ID) {
			return
		}
		h.sendActivityPhotos(ctx, chatID, data.ID)

	case actionApprove, actionReject:
		if !h.Store.IsAdmin(ctx, cb.From.ID) {
			return
		}
		h.decideActivity(ctx, cb, data)
	}
}

func (h *Handler) sendActivityPhotos(ctx context.Context, chatID int64, activityID string) {
	fileIDs, err := h.Store.ActivityPhotos(ctx, activityID)
	if err != nil {
		h.Log.Errorw("callback: activity photos", "activity", activityID, "err", err)
		h.reply(chatID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	if len(fileIDs) == 0 {
		h.reply(chatID, "Bu faollik uchun rasmlar yo'q.")
		return
	}
	h.sendPhotoAlbum(chatID, fileIDs, "")
}

// decideActivity — тасдиклаш/рад этиш. Балл начисляется только при реальной
// смене статуса: повторный клик по той же кнопке — no-op с уведомлением.
func (h *Handler) decideActivity(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID
	status := models.StatusApproved
	if data.Action == actionReject {
		status = models.StatusRejected
	}

	changed, studentID, title, err := h.Store.SetActivityStatus(ctx, data.ID, status)
	if err == store.ErrNotFound {
		h.reply(chatID, "Bunday faollik topilmadi.")
		return
	}
	if err != nil {
		h.Log.Errorw("callback: set status", "activity", data.ID, "err", err)
		h.reply(chatID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	if !changed {
		h.reply(chatID, "Bu faollik bo'yicha qaror allaqachon qabul qilingan.")
		h.continueReview(ctx, cb.From.ID, chatID)
		return
	}

	if status == models.StatusApproved {
		if _, err := h.Store.IncrementPoints(ctx, studentID, 1); err != nil {
			h.Log.Errorw("callback: increment points", "student", studentID, "err", err)
		}
		h.reply(chatID, fmt.Sprintf("✅ \"%s\" tasdiqlandi, +1 ball.", title))
		h.notifyStudent(ctx, studentID,
			fmt.Sprintf("✅ \"%s\" faolligingiz tasdiqlandi! +1 ball.", title))
	} else {
		h.reply(chatID, fmt.Sprintf("❌ \"%s\" rad etildi.", title))
		h.notifyStudent(ctx, studentID,
			fmt.Sprintf("❌ \"%s\" faolligingiz rad etildi.", title))
	}
	h.continueReview(ctx, cb.From.ID, chatID)
}

// notifyStudent шлёт студенту уведомление о решении; молча пропускает
// студентов без привязанного Telegram.
func (h *Handler) notifyStudent(ctx context.Context, studentID, text string) {
	student, err := h.Store.FindStudentByID(ctx, studentID)
	if err != nil {
		h.Log.Warnw("notify: find student", "student", studentID, "err", err)
		return
	}
	tgID, err := strconv.ParseInt(student.TelegramID, 10, 64)
	if err != nil || tgID == 0 {
		return
	}
	h.reply(tgID, text)
}

// continueReview показывает следующую заявку, если админ сейчас в ревью.
func (h *Handler) continueReview(ctx context.Context, userID, chatID int64) {
	if a := h.Sessions.Admin(userID); a != nil && a.Stage == session.AdminReview {
		h.sendNextPending(ctx, chatID, a)
	}
}

func (h *Handler) answerCallback(callbackID string) {
	if _, err := tg.Request(h.Bot, tgbotapi.NewCallback(callbackID, "")); err != nil {
		h.Log.Warnw("answer callback", "err", err)
	}
}
