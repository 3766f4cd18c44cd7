package store

import (
	"context"
	"strconv"
	"strings"
)

// AdminIDs — множество админов. Владелец бота входит в него всегда,
// независимо от содержимого листа.
func (s *Store) AdminIDs(ctx context.Context) (map[int64]struct{}, error) {
	rows, err := s.cache.rows(ctx, TableAdmins)
	if err != nil {
		return nil, err
	}
	ids := make(map[int64]struct{}, len(rows)+1)
	for _, raw := range rows {
		if len(raw) == 0 {
			continue
		}
		if id, err := strconv.ParseInt(strings.TrimSpace(raw[0]), 10, 64); err == nil && id != 0 {
			ids[id] = struct{}{}
		}
	}
	ids[s.ownerID] = struct{}{}
	return ids, nil
}

// IsAdmin — проверка привилегии. При недоступной таблице админом остаётся
// только владелец: лучше отказать, чем пустить лишнего.
func (s *Store) IsAdmin(ctx context.Context, userID int64) bool {
	ids, err := s.AdminIDs(ctx)
	if err != nil {
		return userID == s.ownerID
	}
	_, ok := ids[userID]
	return ok
}

// AddAdmin добавляет ID в лист. false — уже в списке.
func (s *Store) AddAdmin(ctx context.Context, userID int64) (bool, error) {
	ids, err := s.AdminIDs(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := ids[userID]; ok {
		return false, nil
	}
	if err := s.api.AppendRow(ctx, "Admins!A:A", []string{strconv.FormatInt(userID, 10)}); err != nil {
		return false, err
	}
	s.cache.invalidate(TableAdmins)
	return true, nil
}

// RemoveAdmin бланкует ячейку, не удаляя строку: других данных в листе нет,
// а номера оставшихся строк не съезжают. Владельца снять нельзя.
func (s *Store) RemoveAdmin(ctx context.Context, userID int64) (bool, error) {
	if userID == s.ownerID {
		return false, nil
	}
	ids, err := s.AdminIDs(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := ids[userID]; !ok {
		return false, nil
	}
	rows, err := s.cache.rows(ctx, TableAdmins)
	if err != nil {
		return false, err
	}
	for i, raw := range rows {
		if len(raw) == 0 {
			continue
		}
		if id, err := strconv.ParseInt(strings.TrimSpace(raw[0]), 10, 64); err == nil && id == userID {
			if err := s.api.UpdateRow(ctx, rowRange(TableAdmins, firstDataRow+i), []string{""}); err != nil {
				return false, err
			}
			break
		}
	}
	// Даже если строки в листе не нашлось, кэш сбрасываем: ID мог попасть
	// туда из устаревшего снимка.
	s.cache.invalidate(TableAdmins)
	return true, nil
}
