package store_test

import (
	"context"
	"testing"

	"github.com/prklubi/club-bot/internal/store"
)

func TestFindStudent_ProvisionsMissingID(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"7", "Aziz Karimov", "C1", "100", "5", "PR-21"},
		{"", "Malika Yusupova", "C2", "200", "3", "PR-22"},
	}
	st, _ := newTestStore(api, 1)

	s, err := st.FindStudentByTelegramID(ctx, 200)
	if err != nil {
		t.Fatal(err)
	}
	if s.ID != "8" {
		t.Fatalf("ждали лениво выданный ID 8 (max+1), получили %q", s.ID)
	}
	if got := api.tables["Students"][1][0]; got != "8" {
		t.Fatalf("ID должен быть записан в лист, там %q", got)
	}
}

func TestFindStudentByID_NoProvision(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"", "Malika Yusupova", "C2", "200", "3", "PR-22"},
	}
	st, _ := newTestStore(api, 1)

	if _, err := st.FindStudentByID(ctx, "1"); err != store.ErrNotFound {
		t.Fatalf("поиск по ID не должен выдавать идентификаторы: %v", err)
	}
	if got := api.tables["Students"][0][0]; got != "" {
		t.Fatalf("лист не должен меняться, ID стал %q", got)
	}
}

func TestBindCard(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "Aziz Karimov", "C1", "", "", "PR-21"},
		{"2", "Malika Yusupova", "C2", "500", "3", "PR-22"},
	}
	st, _ := newTestStore(api, 1)

	s, err := st.BindCard(ctx, "C1", 100)
	if err != nil {
		t.Fatal(err)
	}
	if s.TelegramID != "100" {
		t.Fatalf("карта не привязалась: %q", s.TelegramID)
	}
	if got := api.tables["Students"][0][4]; got != "0" {
		t.Fatalf("пустые баллы должны стать нулём, там %q", got)
	}

	// повторная привязка той же карты тем же аккаунтом — идемпотентна
	if _, err := st.BindCard(ctx, "C1", 100); err != nil {
		t.Fatalf("повторная привязка своим аккаунтом: %v", err)
	}

	// чужая карта не перепривязывается
	if _, err := st.BindCard(ctx, "C2", 100); err != store.ErrCardLinked {
		t.Fatalf("ждали ErrCardLinked, получили %v", err)
	}
	if got := api.tables["Students"][1][3]; got != "500" {
		t.Fatalf("связь должна остаться за прежним владельцем, там %q", got)
	}

	if _, err := st.BindCard(ctx, "NOPE", 100); err != store.ErrNotFound {
		t.Fatalf("ждали ErrNotFound, получили %v", err)
	}
}

func TestIncrementPoints_GarbageIsZero(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "Aziz Karimov", "C1", "100", "abc", "PR-21"},
	}
	st, _ := newTestStore(api, 1)

	total, err := st.IncrementPoints(ctx, "1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Fatalf("нечисловые баллы трактуются как 0, ждали 1, получили %d", total)
	}
}

func TestTopStudents_StableTiesAndLimit(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "A", "C1", "100", "30", ""},
		{"2", "B", "C2", "200", "30", ""},
		{"3", "C", "C3", "300", "5", ""},
	}
	st, _ := newTestStore(api, 1)

	top, err := st.TopStudents(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].FullName != "A" || top[1].FullName != "B" {
		t.Fatalf("при равных баллах порядок листа должен сохраняться: %+v", top)
	}
}

func TestBroadcastUserIDs(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "A", "C1", "100", "1", ""},
		{"2", "B", "C2", "100", "2", ""}, // дубль Telegram ID
		{"3", "C", "C3", "", "3", ""},    // без привязки
		{"4", "D", "C4", "xx", "4", ""},  // мусор
		{"5", "E", "C5", "200", "5", ""},
	}
	st, _ := newTestStore(api, 1)

	ids, err := st.BroadcastUserIDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 100 || ids[1] != 200 {
		t.Fatalf("ждали [100 200], получили %v", ids)
	}
}
