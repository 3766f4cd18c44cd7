package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/prklubi/club-bot/internal/models"
)

const warningMark = "⚠️"

func decodeActivity(rowNumber int, raw []string) models.Activity {
	row := padded(raw, tableWidth[TableActivities])
	status := models.Status(strings.TrimSpace(row[5]))
	if status == "" {
		status = models.StatusPending
	}
	category := strings.TrimSpace(row[7])
	if category == "" {
		category = string(models.CategoryOther)
	}
	return models.Activity{
		RowNumber:   rowNumber,
		ID:          strings.TrimSpace(row[0]),
		StudentID:   strings.TrimSpace(row[1]),
		Title:       row[2],
		Description: row[3],
		Date:        row[4],
		Status:      status,
		Warning:     strings.TrimSpace(row[6]) != "",
		Category:    models.Category(category),
	}
}

// CreateActivity добавляет заявку со статусом "Kutilmoqda" и сегодняшней датой.
func (s *Store) CreateActivity(ctx context.Context, studentID, title, description string, category models.Category) (string, error) {
	id, err := s.nextID(ctx, TableActivities)
	if err != nil {
		return "", err
	}
	row := []string{
		strconv.Itoa(id),
		studentID,
		title,
		description,
		s.now().Format("2006-01-02"),
		string(models.StatusPending),
		"",
		string(category),
	}
	if err := s.api.AppendRow(ctx, "Activities!A:H", row); err != nil {
		return "", err
	}
	s.cache.invalidate(TableActivities)
	return strconv.Itoa(id), nil
}

// SetActivityStatus перезаписывает статус и сообщает, изменился ли он.
// Повторная запись того же статуса отдаёт changed=false — на этом флаге
// держится защита от двойного начисления баллов при повторном клике.
// По-настоящему одновременные записи флаг не разводит (чтение-потом-запись
// без условного апдейта) — осознанное ограничение, см. DESIGN.md.
func (s *Store) SetActivityStatus(ctx context.Context, activityID string, status models.Status) (changed bool, studentID, title string, err error) {
	rows, err := s.cache.rows(ctx, TableActivities)
	if err != nil {
		return false, "", "", err
	}
	want := strings.TrimSpace(activityID)
	for i, raw := range rows {
		row := padded(raw, tableWidth[TableActivities])
		if strings.TrimSpace(row[0]) != want {
			continue
		}
		old := models.Status(strings.TrimSpace(row[5]))
		if old == "" {
			old = models.StatusPending
		}
		row[5] = string(status)
		studentID = strings.TrimSpace(row[1])
		title = row[2]
		if err := s.api.UpdateRow(ctx, rowRange(TableActivities, firstDataRow+i), row); err != nil {
			return false, "", "", err
		}
		changed = old != status
		if changed {
			s.cache.invalidate(TableActivities)
		}
		return changed, studentID, title, nil
	}
	return false, "", "", ErrNotFound
}

// setActivityWarning ставит липкую отметку о подозрительном фото.
// Отметка не снимается никогда. Отсутствующая строка — не ошибка.
func (s *Store) setActivityWarning(ctx context.Context, activityID string) error {
	rows, err := s.cache.rows(ctx, TableActivities)
	if err != nil {
		return err
	}
	want := strings.TrimSpace(activityID)
	for i, raw := range rows {
		row := padded(raw, tableWidth[TableActivities])
		if strings.TrimSpace(row[0]) != want {
			continue
		}
		row[6] = warningMark
		if err := s.api.UpdateRow(ctx, rowRange(TableActivities, firstDataRow+i), row); err != nil {
			return err
		}
		s.cache.invalidate(TableActivities)
		return nil
	}
	return nil
}

func (s *Store) ActivityByID(ctx context.Context, activityID string) (models.Activity, error) {
	rows, err := s.cache.rows(ctx, TableActivities)
	if err != nil {
		return models.Activity{}, err
	}
	want := strings.TrimSpace(activityID)
	for i, raw := range rows {
		if a := decodeActivity(firstDataRow+i, raw); a.ID == want {
			return a, nil
		}
	}
	return models.Activity{}, ErrNotFound
}

// StudentActivities — все заявки студента в порядке листа.
func (s *Store) StudentActivities(ctx context.Context, studentID string) ([]models.Activity, error) {
	rows, err := s.cache.rows(ctx, TableActivities)
	if err != nil {
		return nil, err
	}
	want := strings.TrimSpace(studentID)
	var acts []models.Activity
	for i, raw := range rows {
		if a := decodeActivity(firstDataRow+i, raw); a.StudentID == want {
			acts = append(acts, a)
		}
	}
	return acts, nil
}

// PendingActivityIDs — идентификаторы заявок, ждущих решения. Пустой статус
// трактуется как "Kutilmoqda".
func (s *Store) PendingActivityIDs(ctx context.Context) ([]string, error) {
	rows, err := s.cache.rows(ctx, TableActivities)
	if err != nil {
		return nil, err
	}
	var ids []string
	for i, raw := range rows {
		if a := decodeActivity(firstDataRow+i, raw); a.Status == models.StatusPending && a.ID != "" {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}
