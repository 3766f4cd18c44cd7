package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/prklubi/club-bot/internal/models"
)

// AddPhoto добавляет фото-доказательство. Перед вставкой ищем тот же file_id
// на другой активности: найденный дубликат помечает предупреждением обе
// активности (повторная сдача одного и того же фото). Повтор в рамках одной
// активности дубликатом не считается.
func (s *Store) AddPhoto(ctx context.Context, activityID, fileID string) error {
	rows, err := s.cache.rows(ctx, TablePhotos)
	if err != nil {
		return err
	}
	want := strings.TrimSpace(activityID)
	for _, raw := range rows {
		row := padded(raw, tableWidth[TablePhotos])
		if row[2] != fileID {
			continue
		}
		if owner := strings.TrimSpace(row[1]); owner != want {
			if err := s.setActivityWarning(ctx, want); err != nil {
				return err
			}
			if err := s.setActivityWarning(ctx, owner); err != nil {
				return err
			}
			break
		}
	}

	id, err := s.nextID(ctx, TablePhotos)
	if err != nil {
		return err
	}
	if err := s.api.AppendRow(ctx, "Photos!A:C", []string{strconv.Itoa(id), want, fileID}); err != nil {
		return err
	}
	s.cache.invalidate(TablePhotos)
	return nil
}

// ActivityPhotos — file_id всех фото активности в порядке добавления.
func (s *Store) ActivityPhotos(ctx context.Context, activityID string) ([]string, error) {
	rows, err := s.cache.rows(ctx, TablePhotos)
	if err != nil {
		return nil, err
	}
	want := strings.TrimSpace(activityID)
	var fileIDs []string
	for _, raw := range rows {
		row := padded(raw, tableWidth[TablePhotos])
		if strings.TrimSpace(row[1]) == want && row[2] != "" {
			fileIDs = append(fileIDs, row[2])
		}
	}
	return fileIDs, nil
}

// SubmitActivity — терминальная запись сценария подачи: одна активность
// плюс строка на каждое фото.
func (s *Store) SubmitActivity(ctx context.Context, studentID, title, description string, category models.Category, photoIDs []string) (string, error) {
	activityID, err := s.CreateActivity(ctx, studentID, title, description, category)
	if err != nil {
		return "", err
	}
	for _, fileID := range photoIDs {
		if err := s.AddPhoto(ctx, activityID, fileID); err != nil {
			return activityID, err
		}
	}
	return activityID, nil
}
