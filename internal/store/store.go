// Package store — доменный репозиторий поверх удалённой таблицы: строковые
// операции над листами Students/Activities/Photos/Admins со сквозным кэшем
// чтения. Все идентификаторы в листах хранятся текстом и парсятся
// снисходительно: нечисловое значение трактуется как ноль либо пропускается.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound — карта, студент или активность отсутствуют.
	ErrNotFound = errors.New("store: not found")
	// ErrCardLinked — карта уже привязана к другому Telegram-аккаунту.
	ErrCardLinked = errors.New("store: card already linked")
)

type Store struct {
	api     RangeAPI
	cache   *cache
	ownerID int64
	now     func() time.Time
}

func New(api RangeAPI, ownerID int64) *Store {
	return NewWithClock(api, ownerID, time.Now)
}

// NewWithClock — конструктор с управляемыми часами для тестов TTL и дат.
func NewWithClock(api RangeAPI, ownerID int64, now func() time.Time) *Store {
	return &Store{api: api, cache: newCache(api, now), ownerID: ownerID, now: now}
}

// Invalidate сбрасывает кэш листа. Экспортирован для фоновых задач.
func (s *Store) Invalidate(t Table) { s.cache.invalidate(t) }

// padded — копия строки, добитая пустыми ячейками до ширины листа.
// Хвостовые пустые ячейки удалённый API не возвращает.
func padded(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// rowRange — A1-диапазон одной строки листа по её номеру.
func rowRange(t Table, rowNumber int) string {
	lastCol := string(rune('A' + tableWidth[t] - 1))
	return fmt.Sprintf("%s!A%d:%s%d", t, rowNumber, lastCol, rowNumber)
}

// nextID — следующий числовой идентификатор листа: max+1, для пустого листа 1.
// Колонку читаем напрямую, мимо кэша: выдаваемый идентификатор обязан быть
// строго больше всех уже записанных.
func (s *Store) nextID(ctx context.Context, t Table) (int, error) {
	rows, err := s.api.GetRange(ctx, string(t)+"!A2:A")
	if err != nil {
		return 0, err
	}
	max := 0
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(r[0])); err == nil && n > max {
			max = n
		}
	}
	return max + 1, nil
}
