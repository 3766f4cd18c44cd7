package store

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/prklubi/club-bot/internal/models"
)

// Данные листов начинаются со второй строки, первая — заголовок.
const firstDataRow = 2

func decodeStudent(rowNumber int, raw []string) models.Student {
	row := padded(raw, tableWidth[TableStudents])
	return models.Student{
		RowNumber:   rowNumber,
		ID:          strings.TrimSpace(row[0]),
		FullName:    row[1],
		CardCode:    strings.TrimSpace(row[2]),
		TelegramID:  strings.TrimSpace(row[3]),
		TotalPoints: parseInt(row[4]),
		Group:       row[5],
	}
}

// FindStudentByTelegramID ищет студента по привязанному Telegram ID.
func (s *Store) FindStudentByTelegramID(ctx context.Context, telegramID int64) (models.Student, error) {
	want := strconv.FormatInt(telegramID, 10)
	return s.findStudent(ctx, func(row []string) bool {
		return strings.TrimSpace(row[3]) == want
	}, true)
}

func (s *Store) FindStudentByID(ctx context.Context, studentID string) (models.Student, error) {
	want := strings.TrimSpace(studentID)
	return s.findStudent(ctx, func(row []string) bool {
		return strings.TrimSpace(row[0]) == want
	}, false)
}

func (s *Store) FindStudentByCard(ctx context.Context, cardCode string) (models.Student, error) {
	return s.findStudent(ctx, func(row []string) bool {
		return strings.TrimSpace(row[2]) == cardCode
	}, true)
}

// findStudent — линейный скан кэшированных строк. Это find-or-provision:
// у найденной строки без идентификатора он лениво выдаётся и сразу
// персистится, то есть чтение может породить запись.
func (s *Store) findStudent(ctx context.Context, match func([]string) bool, provisionID bool) (models.Student, error) {
	rows, err := s.cache.rows(ctx, TableStudents)
	if err != nil {
		return models.Student{}, err
	}
	for i, raw := range rows {
		row := padded(raw, tableWidth[TableStudents])
		if !match(row) {
			continue
		}
		rowNumber := firstDataRow + i
		if provisionID && strings.TrimSpace(row[0]) == "" {
			id, err := s.nextID(ctx, TableStudents)
			if err != nil {
				return models.Student{}, err
			}
			row[0] = strconv.Itoa(id)
			if err := s.api.UpdateRow(ctx, rowRange(TableStudents, rowNumber), row); err != nil {
				return models.Student{}, err
			}
			s.cache.invalidate(TableStudents)
		}
		return decodeStudent(rowNumber, row), nil
	}
	return models.Student{}, ErrNotFound
}

// BindCard привязывает карту к Telegram-аккаунту. Карта, уже привязанная к
// другому аккаунту, не перепривязывается — ErrCardLinked, связь остаётся
// за прежним владельцем.
func (s *Store) BindCard(ctx context.Context, cardCode string, telegramID int64) (models.Student, error) {
	rows, err := s.cache.rows(ctx, TableStudents)
	if err != nil {
		return models.Student{}, err
	}
	want := strconv.FormatInt(telegramID, 10)
	for i, raw := range rows {
		row := padded(raw, tableWidth[TableStudents])
		if strings.TrimSpace(row[2]) != cardCode {
			continue
		}
		if tg := strings.TrimSpace(row[3]); tg != "" && tg != want {
			return models.Student{}, ErrCardLinked
		}
		if strings.TrimSpace(row[0]) == "" {
			id, err := s.nextID(ctx, TableStudents)
			if err != nil {
				return models.Student{}, err
			}
			row[0] = strconv.Itoa(id)
		}
		row[3] = want
		if strings.TrimSpace(row[4]) == "" {
			row[4] = "0"
		}
		rowNumber := firstDataRow + i
		if err := s.api.UpdateRow(ctx, rowRange(TableStudents, rowNumber), row); err != nil {
			return models.Student{}, err
		}
		s.cache.invalidate(TableStudents)
		return decodeStudent(rowNumber, row), nil
	}
	return models.Student{}, ErrNotFound
}

// IncrementPoints прибавляет delta к баллам студента и возвращает новую сумму.
// Чтение-модификация-запись без CAS: два по-настоящему одновременных
// подтверждения одной активности эта операция не разводит — принятое
// ограничение, от повторных кликов защищает флаг changed у статуса.
func (s *Store) IncrementPoints(ctx context.Context, studentID string, delta int) (int, error) {
	rows, err := s.cache.rows(ctx, TableStudents)
	if err != nil {
		return 0, err
	}
	want := strings.TrimSpace(studentID)
	for i, raw := range rows {
		row := padded(raw, tableWidth[TableStudents])
		if strings.TrimSpace(row[0]) != want {
			continue
		}
		total := parseInt(row[4]) + delta
		row[4] = strconv.Itoa(total)
		if err := s.api.UpdateRow(ctx, rowRange(TableStudents, firstDataRow+i), row); err != nil {
			return 0, err
		}
		s.cache.invalidate(TableStudents)
		return total, nil
	}
	return 0, ErrNotFound
}

// TopStudents — рейтинг по убыванию баллов. Сортировка стабильная: при
// равных баллах сохраняется исходный порядок строк листа. limit <= 0 — все.
func (s *Store) TopStudents(ctx context.Context, limit int) ([]models.Student, error) {
	rows, err := s.cache.rows(ctx, TableStudents)
	if err != nil {
		return nil, err
	}
	students := make([]models.Student, 0, len(rows))
	for i, raw := range rows {
		students = append(students, decodeStudent(firstDataRow+i, raw))
	}
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].TotalPoints > students[j].TotalPoints
	})
	if limit > 0 && len(students) > limit {
		students = students[:limit]
	}
	return students, nil
}

// BroadcastUserIDs — все Telegram ID с привязанной картой, без дублей.
func (s *Store) BroadcastUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.cache.rows(ctx, TableStudents)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(rows))
	for _, raw := range rows {
		row := padded(raw, tableWidth[TableStudents])
		id, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
