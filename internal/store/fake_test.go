package store_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// fakeAPI — табличный API в памяти: листы как срезы строк, счётчики
// обращений для проверок кэша.
type fakeAPI struct {
	mu      sync.Mutex
	tables  map[string][][]string
	gets    map[string]int
	getErr  error
	updates int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		tables: map[string][][]string{},
		gets:   map[string]int{},
	}
}

func (f *fakeAPI) GetRange(_ context.Context, a1 string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	sheet, rng, _ := strings.Cut(a1, "!")
	f.gets[sheet]++

	var out [][]string
	for _, row := range f.tables[sheet] {
		if rng == "A2:A" {
			// запрос одной колонки
			cell := ""
			if len(row) > 0 {
				cell = row[0]
			}
			out = append(out, []string{cell})
			continue
		}
		out = append(out, append([]string(nil), row...))
	}
	return out, nil
}

func (f *fakeAPI) AppendRow(_ context.Context, a1 string, row []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sheet, _, _ := strings.Cut(a1, "!")
	f.tables[sheet] = append(f.tables[sheet], append([]string(nil), row...))
	return nil
}

func (f *fakeAPI) UpdateRow(_ context.Context, a1 string, row []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sheet, rng, _ := strings.Cut(a1, "!")
	var rowNumber int
	if _, err := fmt.Sscanf(rng, "A%d:", &rowNumber); err != nil {
		return fmt.Errorf("bad range %q: %w", a1, err)
	}
	idx := rowNumber - 2 // данные начинаются со второй строки листа
	if idx < 0 || idx >= len(f.tables[sheet]) {
		return fmt.Errorf("row %d out of sheet %s", rowNumber, sheet)
	}
	f.tables[sheet][idx] = append([]string(nil), row...)
	return nil
}
