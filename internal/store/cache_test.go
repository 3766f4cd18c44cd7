package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/prklubi/club-bot/internal/store"
)

func newTestStore(api *fakeAPI, ownerID int64) (*store.Store, *time.Time) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := store.NewWithClock(api, ownerID, func() time.Time { return now })
	return st, &now
}

func TestCache_ServesWithinTTL(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "Aziz Karimov", "C1", "100", "5", "PR-21"},
	}
	st, _ := newTestStore(api, 1)

	for i := 0; i < 3; i++ {
		if _, err := st.TopStudents(ctx, 0); err != nil {
			t.Fatal(err)
		}
	}
	if got := api.gets["Students"]; got != 1 {
		t.Fatalf("ожидали 1 чтение листа, было %d", got)
	}
}

func TestCache_ExpiresByTTL(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "Aziz Karimov", "C1", "100", "5", "PR-21"},
	}
	st, now := newTestStore(api, 1)

	if _, err := st.TopStudents(ctx, 0); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(61 * time.Second)
	if _, err := st.TopStudents(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if got := api.gets["Students"]; got != 2 {
		t.Fatalf("ожидали перечитывание после TTL, чтений %d", got)
	}
}

func TestCache_AdminsLongTTL(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Admins"] = [][]string{{"77"}}
	st, now := newTestStore(api, 1)

	if !st.IsAdmin(ctx, 77) {
		t.Fatal("77 должен быть админом")
	}
	*now = now.Add(30 * time.Minute)
	st.IsAdmin(ctx, 77)
	if got := api.gets["Admins"]; got != 1 {
		t.Fatalf("внутри часа лист Admins перечитываться не должен, чтений %d", got)
	}
	*now = now.Add(31 * time.Minute)
	st.IsAdmin(ctx, 77)
	if got := api.gets["Admins"]; got != 2 {
		t.Fatalf("после часа ждали перечитывание, чтений %d", got)
	}
}

func TestCache_InvalidatedByWrite(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Students"] = [][]string{
		{"1", "Aziz Karimov", "C1", "100", "5", "PR-21"},
	}
	st, _ := newTestStore(api, 1)

	if _, err := st.TopStudents(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := st.IncrementPoints(ctx, "1", 2); err != nil {
		t.Fatal(err)
	}
	top, err := st.TopStudents(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if top[0].TotalPoints != 7 {
		t.Fatalf("после записи ждали свежие баллы 7, получили %d", top[0].TotalPoints)
	}
}
