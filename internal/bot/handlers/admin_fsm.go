package handlers

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/bot/menu"
	"github.com/prklubi/club-bot/internal/models"
	"github.com/prklubi/club-bot/internal/session"
	"github.com/prklubi/club-bot/internal/store"
)

// HandleAdminMessage — шаг активной админ-сессии.
func (h *Handler) HandleAdminMessage(ctx context.Context, m *tgbotapi.Message) {
	a := h.Sessions.Admin(m.From.ID)
	if a == nil {
		return
	}

	switch a.Stage {
	case session.AdminMenu:
		h.handleAdminMenu(ctx, m, a)
	case session.AdminWaitCard:
		h.adminLookupByCard(ctx, m, a, strings.TrimSpace(m.Text))
	case session.AdminReview:
		// В ревью решения приходят инлайн-кнопками; любой текст — подсказка.
		h.reply(m.Chat.ID, "Qaror uchun xabar ostidagi tugmalardan foydalaning.")
	case session.AdminWaitNewAdmin:
		h.adminAdd(ctx, m, a)
	case session.AdminWaitRemoveAdmin:
		h.adminRemove(ctx, m, a)
	}
}

func (h *Handler) handleAdminMenu(ctx context.Context, m *tgbotapi.Message, a *session.Admin) {
	switch m.Text {
	case menu.AdminReviewLabel:
		h.startReview(ctx, m, a)

	case menu.AdminLookupLabel:
		a.Stage = session.AdminWaitCard
		text := "Talabaning karta kodini yuboring."
		if h.QR.Enabled() {
			text += " Karta QR-kodining rasmi ham bo'ladi."
		}
		h.replyKB(m.Chat.ID, text, menu.BackOnly())

	case menu.AdminBroadcastLabel:
		if m.From.ID != h.OwnerID {
			h.reply(m.Chat.ID, "E'lon yuborish faqat bot egasiga ruxsat etilgan.")
			return
		}
		h.Sessions.StartBroadcast(m.From.ID)
		h.replyKB(m.Chat.ID, "E'lon matnini yuboring — u barcha a'zolarga yetkaziladi.", menu.BackOnly())

	case menu.AdminAddLabel:
		if m.From.ID != h.OwnerID {
			h.reply(m.Chat.ID, "Adminlarni faqat bot egasi boshqaradi.")
			return
		}
		a.Stage = session.AdminWaitNewAdmin
		h.replyKB(m.Chat.ID,
			"Yangi adminning Telegram ID sini yuboring yoki undan kelgan xabarni forward qiling.",
			menu.BackOnly())

	case menu.AdminRemoveLabel:
		if m.From.ID != h.OwnerID {
			h.reply(m.Chat.ID, "Adminlarni faqat bot egasi boshqaradi.")
			return
		}
		a.Stage = session.AdminWaitRemoveAdmin
		h.replyKB(m.Chat.ID, "Olib tashlanadigan adminning Telegram ID sini yuboring.", menu.BackOnly())

	case menu.AdminExportLabel:
		h.SendRankingExport(ctx, m.Chat.ID)

	case menu.AdminExitLabel:
		h.Sessions.ClearAdmin(m.From.ID)
		h.HandleStart(ctx, m)

	default:
		h.replyKB(m.Chat.ID, "Admin panelidan bo'lim tanlang.", menu.Admin())
	}
}

// startReview собирает очередь ожидающих заявок в случайном порядке, чтобы
// несколько админов, начавших одновременно, реже брали одну и ту же.
func (h *Handler) startReview(ctx context.Context, m *tgbotapi.Message, a *session.Admin) {
	ids, err := h.Store.PendingActivityIDs(ctx)
	if err != nil {
		h.Log.Errorw("review: pending ids", "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	if len(ids) == 0 {
		h.replyKB(m.Chat.ID, "Tasdiqlash uchun faolliklar yo'q.", menu.Admin())
		return
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	a.Stage = session.AdminReview
	a.Queue = ids
	h.replyKB(m.Chat.ID, fmt.Sprintf("Navbatda %d ta faollik.", len(ids)), menu.BackOnly())
	h.sendNextPending(ctx, m.Chat.ID, a)
}

// sendNextPending показывает следующую заявку очереди с фото и кнопками
// решения. Заявки, решённые другим админом, пока очередь стояла, молча
// пропускаются. Исчерпанная очередь один раз пополняется свежими заявками:
// пока админ работал, могли прийти новые.
func (h *Handler) sendNextPending(ctx context.Context, chatID int64, a *session.Admin) {
	refilled := false
	for {
		if len(a.Queue) == 0 {
			if refilled {
				break
			}
			refilled = true
			ids, err := h.Store.PendingActivityIDs(ctx)
			if err != nil {
				h.Log.Errorw("review: refill queue", "err", err)
				break
			}
			rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
			a.Queue = ids
			continue
		}
		id := a.Queue[0]
		a.Queue = a.Queue[1:]

		act, err := h.Store.ActivityByID(ctx, id)
		if err == store.ErrNotFound {
			continue
		}
		if err != nil {
			h.Log.Errorw("review: activity by id", "activity", id, "err", err)
			h.reply(chatID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
			return
		}
		if act.Status != models.StatusPending {
			continue
		}

		text := formatActivity(act)
		if student, err := h.Store.FindStudentByID(ctx, act.StudentID); err == nil {
			text = fmt.Sprintf("👤 %s (%s)\n%s", student.FullName, student.Group, text)
		}
		if act.Warning {
			text += "\n⚠️ Rasm boshqa faollikda ham ishlatilgan!"
		}

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("✅ Tasdiqlash",
					callbackData{Action: actionApprove, ID: act.ID}.encode()),
				tgbotapi.NewInlineKeyboardButtonData("❌ Rad etish",
					callbackData{Action: actionReject, ID: act.ID}.encode()),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🖼 Rasmlar",
					callbackData{Action: actionActivityPhotos, ID: act.ID}.encode()),
			),
		)
		h.send(msg)
		return
	}
	a.Stage = session.AdminMenu
	h.replyKB(chatID, "Navbat tugadi.", menu.Admin())
}

// adminLookupByCard — карточка студента по коду карты, с его заявками.
func (h *Handler) adminLookupByCard(ctx context.Context, m *tgbotapi.Message, a *session.Admin, cardCode string) {
	if cardCode == "" {
		h.reply(m.Chat.ID, "Karta kodini yuboring.")
		return
	}
	student, err := h.Store.FindStudentByCard(ctx, cardCode)
	if err == store.ErrNotFound {
		h.reply(m.Chat.ID, "Bunday karta kodi topilmadi.")
		return
	}
	if err != nil {
		h.Log.Errorw("lookup: find by card", "err", err)
		h.reply(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}

	a.Stage = session.AdminMenu
	h.replyKB(m.Chat.ID, formatProfile(student), menu.Admin())

	acts, err := h.Store.StudentActivities(ctx, student.ID)
	if err != nil {
		h.Log.Errorw("lookup: activities", "student", student.ID, "err", err)
		return
	}
	for _, act := range acts {
		msg := tgbotapi.NewMessage(m.Chat.ID, formatActivity(act))
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🖼 Rasmlar",
					callbackData{Action: actionStudentPhotos, ID: act.ID}.encode()),
			),
		)
		h.send(msg)
	}
}

// HandleAdminPhoto — фото внутри админ-сессии: на шаге поиска по карте это
// QR-код карты студента.
func (h *Handler) HandleAdminPhoto(ctx context.Context, m *tgbotapi.Message) {
	a := h.Sessions.Admin(m.From.ID)
	if a == nil || a.Stage != session.AdminWaitCard {
		return
	}
	code := h.decodePhotoQR(m)
	if code == "" {
		h.reply(m.Chat.ID, "QR-kod o'qilmadi. Karta kodini matn bilan yuboring.")
		return
	}
	h.adminLookupByCard(ctx, m, a, code)
}

func (h *Handler) adminAdd(ctx context.Context, m *tgbotapi.Message, a *session.Admin) {
	if m.From.ID != h.OwnerID {
		a.Stage = session.AdminMenu
		return
	}
	id, ok := extractUserID(m)
	if !ok {
		h.reply(m.Chat.ID, "Telegram ID raqam bo'lishi kerak, yoki xabarni forward qiling.")
		return
	}
	a.Stage = session.AdminMenu
	added, err := h.Store.AddAdmin(ctx, id)
	if err != nil {
		h.Log.Errorw("admin add", "id", id, "err", err)
		h.replyKB(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.", menu.Admin())
		return
	}
	if !added {
		h.replyKB(m.Chat.ID, "Bu foydalanuvchi allaqachon admin.", menu.Admin())
		return
	}
	h.replyKB(m.Chat.ID, fmt.Sprintf("✅ %d admin qilib tayinlandi.", id), menu.Admin())
}

func (h *Handler) adminRemove(ctx context.Context, m *tgbotapi.Message, a *session.Admin) {
	if m.From.ID != h.OwnerID {
		a.Stage = session.AdminMenu
		return
	}
	id, ok := extractUserID(m)
	if !ok {
		h.reply(m.Chat.ID, "Telegram ID raqam bo'lishi kerak.")
		return
	}
	a.Stage = session.AdminMenu
	removed, err := h.Store.RemoveAdmin(ctx, id)
	if err != nil {
		h.Log.Errorw("admin remove", "id", id, "err", err)
		h.replyKB(m.Chat.ID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.", menu.Admin())
		return
	}
	if !removed {
		h.replyKB(m.Chat.ID, "Bu foydalanuvchini olib tashlab bo'lmaydi.", menu.Admin())
		return
	}
	h.replyKB(m.Chat.ID, fmt.Sprintf("🗑 %d adminlardan olib tashlandi.", id), menu.Admin())
}

// extractUserID — Telegram ID из текста или из форварда.
func extractUserID(m *tgbotapi.Message) (int64, bool) {
	if m.ForwardFrom != nil {
		return m.ForwardFrom.ID, true
	}
	id, err := strconv.ParseInt(strings.TrimSpace(m.Text), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
