package export_test

import (
	"testing"

	"github.com/prklubi/club-bot/internal/export"
	"github.com/prklubi/club-bot/internal/models"
)

func TestRankingWorkbook(t *testing.T) {
	students := []models.Student{
		{FullName: "Aziz Karimov", Group: "PR-21", CardCode: "C1", TotalPoints: 30},
		{FullName: "Malika Yusupova", Group: "PR-22", CardCode: "C2", TotalPoints: 12},
	}
	f, err := export.RankingWorkbook(students)
	if err != nil {
		t.Fatal(err)
	}

	if got := f.GetSheetName(0); got != "Reyting" {
		t.Fatalf("лист должен называться Reyting, получили %q", got)
	}
	check := func(cell, want string) {
		t.Helper()
		got, err := f.GetCellValue("Reyting", cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s: ждали %q, получили %q", cell, want, got)
		}
	}
	check("A1", "O'rin")
	check("E1", "Ball")
	check("A2", "1")
	check("B2", "Aziz Karimov")
	check("E2", "30")
	check("A3", "2")
	check("E3", "12")
}

func TestRankingWorkbook_Empty(t *testing.T) {
	f, err := export.RankingWorkbook(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteToBuffer(); err != nil {
		t.Fatalf("пустой рейтинг должен давать валидную книгу: %v", err)
	}
}
