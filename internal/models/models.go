package models

import "strings"

// Status — состояние заявки в листе Activities. Значения хранятся на узбекском,
// потому что таблицу параллельно читают люди.
type Status string

const (
	StatusPending  Status = "Kutilmoqda"
	StatusApproved Status = "Tasdiqlandi"
	StatusRejected Status = "Rad etildi"
)

// Category — тип активности.
type Category string

const (
	CategoryEvent     Category = "Tadbir"
	CategoryContest   Category = "Tanlov"
	CategoryVolunteer Category = "Volontyorlik"
	CategoryOther     Category = "Boshqa"
)

// NormalizeCategory приводит произвольный ввод к допустимой категории.
// Незнакомое значение не отклоняем, а мягко сводим к "Boshqa".
func NormalizeCategory(raw string) Category {
	c := Category(strings.TrimSpace(raw))
	switch c {
	case CategoryEvent, CategoryContest, CategoryVolunteer, CategoryOther:
		return c
	default:
		return CategoryOther
	}
}

// Student — строка листа Students. RowNumber — номер строки в листе
// (данные начинаются со второй строки, первая — заголовок).
type Student struct {
	RowNumber   int
	ID          string
	FullName    string
	CardCode    string
	TelegramID  string
	TotalPoints int
	Group       string
}

// Activity — строка листа Activities.
type Activity struct {
	RowNumber   int
	ID          string
	StudentID   string
	Title       string
	Description string
	Date        string
	Status      Status
	Warning     bool
	Category    Category
}

// Photo — строка листа Photos: фото-доказательство активности.
type Photo struct {
	ID         string
	ActivityID string
	FileID     string
}
