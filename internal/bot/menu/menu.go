package menu

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Подписи кнопок. Диспетчер сравнивает текст сообщения с ними побуквенно,
// поэтому все надписи живут в одном месте.
const (
	RestartLabel = "🔄 Botni qayta ishga tushirish"
	BackLabel    = "⬅️ Ortga qaytish"

	ProfileLabel      = "👤 Profilim"
	AddActivityLabel  = "➕ Ijtimoiy faollik qo'shish"
	MyActivitiesLabel = "📂 Faolliklarim"
	RatingLabel       = "🏆 Reyting"

	AdminReviewLabel    = "✅ Faolliklarni tasdiqlash"
	AdminLookupLabel    = "🔎 Talabani tekshirish"
	AdminBroadcastLabel = "📢 E'lon yuborish"
	AdminAddLabel       = "➕ Admin qo'shish"
	AdminRemoveLabel    = "🗑 Adminni olib tashlash"
	AdminExportLabel    = "📊 Reyting eksporti"
	AdminExitLabel      = "⬅️ Admin rejimdan chiqish"

	FinishPhotosLabel = "✅ Yakunlash"
)

// withRestart добавляет к любому меню нижний ряд с кнопкой перезапуска.
func withRestart(rows ...[]tgbotapi.KeyboardButton) tgbotapi.ReplyKeyboardMarkup {
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(RestartLabel)))
	return tgbotapi.NewReplyKeyboard(rows...)
}

func Main() tgbotapi.ReplyKeyboardMarkup {
	return withRestart(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ProfileLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(AddActivityLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(MyActivitiesLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(RatingLabel)),
	)
}

func Admin() tgbotapi.ReplyKeyboardMarkup {
	return withRestart(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(AdminReviewLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(AdminLookupLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(AdminBroadcastLabel)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(AdminAddLabel),
			tgbotapi.NewKeyboardButton(AdminRemoveLabel),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(AdminExportLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(AdminExitLabel)),
	)
}

// Categories — выбор типа активности на первом шаге подачи.
func Categories() tgbotapi.ReplyKeyboardMarkup {
	return withRestart(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Tadbir"),
			tgbotapi.NewKeyboardButton("Tanlov"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Volontyorlik"),
			tgbotapi.NewKeyboardButton("Boshqa"),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(BackLabel)),
	)
}

// BackOnly — для шагов, где ждём свободный ввод.
func BackOnly() tgbotapi.ReplyKeyboardMarkup {
	return withRestart(tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(BackLabel)))
}

// Photos — шаг загрузки фото: завершить или вернуться.
func Photos() tgbotapi.ReplyKeyboardMarkup {
	return withRestart(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(FinishPhotosLabel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(BackLabel)),
	)
}
