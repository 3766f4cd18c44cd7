package store

import (
	"context"
	"sync"
	"time"
)

// Table — имя листа в таблице.
type Table string

const (
	TableStudents   Table = "Students"
	TableActivities Table = "Activities"
	TablePhotos     Table = "Photos"
	TableAdmins     Table = "Admins"
)

// Канонические ширины листов; каждая прочитанная строка добивается до своей
// ширины в единственной точке декодирования.
var tableWidth = map[Table]int{
	TableStudents:   6,
	TableActivities: 8,
	TablePhotos:     3,
	TableAdmins:     1,
}

var tableRange = map[Table]string{
	TableStudents:   "Students!A2:F",
	TableActivities: "Activities!A2:H",
	TablePhotos:     "Photos!A2:C",
	TableAdmins:     "Admins!A2:A",
}

var tableTTL = map[Table]time.Duration{
	TableStudents:   time.Minute,
	TableActivities: time.Minute,
	TablePhotos:     time.Minute,
	TableAdmins:     time.Hour,
}

// RangeAPI — операции, которые репозиторию нужны от удалённой таблицы.
type RangeAPI interface {
	GetRange(ctx context.Context, a1 string) ([][]string, error)
	AppendRow(ctx context.Context, a1 string, row []string) error
	UpdateRow(ctx context.Context, a1 string, row []string) error
}

type snapshot struct {
	rows     [][]string
	loadedAt time.Time
}

// cache — сквозной кэш чтения по листам. Единственный механизм
// консистентности: каждая успешная запись инвалидирует свой лист, следующее
// чтение идёт в таблицу.
type cache struct {
	mu   sync.Mutex
	api  RangeAPI
	data map[Table]*snapshot
	now  func() time.Time
}

func newCache(api RangeAPI, now func() time.Time) *cache {
	return &cache{api: api, data: make(map[Table]*snapshot), now: now}
}

func (c *cache) rows(ctx context.Context, t Table) ([][]string, error) {
	c.mu.Lock()
	if snap, ok := c.data[t]; ok && len(snap.rows) > 0 && c.now().Sub(snap.loadedAt) < tableTTL[t] {
		rows := snap.rows
		c.mu.Unlock()
		return rows, nil
	}
	c.mu.Unlock()

	rows, err := c.api.GetRange(ctx, tableRange[t])
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.data[t] = &snapshot{rows: rows, loadedAt: c.now()}
	c.mu.Unlock()
	return rows, nil
}

func (c *cache) invalidate(t Table) {
	c.mu.Lock()
	delete(c.data, t)
	c.mu.Unlock()
}
