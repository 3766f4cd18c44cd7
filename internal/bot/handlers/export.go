package handlers

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/prklubi/club-bot/internal/export"
)

// SendRankingExport — xlsx с полным рейтингом, документом в чат.
func (h *Handler) SendRankingExport(ctx context.Context, chatID int64) {
	students, err := h.Store.TopStudents(ctx, 0)
	if err != nil {
		h.Log.Errorw("export: top students", "err", err)
		h.reply(chatID, "Xatolik yuz berdi, birozdan so'ng qayta urinib ko'ring.")
		return
	}
	f, err := export.RankingWorkbook(students)
	if err != nil {
		h.Log.Errorw("export: build workbook", "err", err)
		h.reply(chatID, "Eksportni tayyorlashda xatolik yuz berdi.")
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		h.Log.Errorw("export: write buffer", "err", err)
		h.reply(chatID, "Eksportni tayyorlashda xatolik yuz berdi.")
		return
	}
	name := fmt.Sprintf("reyting_%s.xlsx", time.Now().Format("2006-01-02"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: buf.Bytes()})
	h.send(doc)
}
