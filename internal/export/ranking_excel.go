// Package export собирает xlsx-выгрузки для админов.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/prklubi/club-bot/internal/models"
)

var rankingHeader = []string{"O'rin", "Ism-familiya", "Guruh", "Karta", "Ball"}

// RankingWorkbook строит книгу с единственным листом "Reyting":
// студенты в порядке убывания баллов, с местом в первой колонке.
func RankingWorkbook(students []models.Student) (*excelize.File, error) {
	const sheet = "Reyting"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for col, h := range rankingHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(rankingHeader)) + "1"
	_ = f.SetCellStyle(sheet, "A1", end, bold)
	_ = f.AutoFilter(sheet, "A1:"+end, nil)

	for i, st := range students {
		row := []string{
			strconv.Itoa(i + 1),
			st.FullName,
			st.Group,
			st.CardCode,
			strconv.Itoa(st.TotalPoints),
		}
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// эвристическая ширина: по длине заголовка и первых строк
	for c := 1; c <= len(rankingHeader); c++ {
		maxim := len(rankingHeader[c-1])
		for r := 0; r < len(students) && r < 50; r++ {
			if l := len(students[r].FullName); c == 2 && l > maxim {
				maxim = l
			}
		}
		w := float64(maxim) * 1.1
		if w < 10 {
			w = 10
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(sheet, colName(c), colName(c), w)
	}
	return f, nil
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
