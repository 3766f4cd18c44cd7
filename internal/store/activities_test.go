package store_test

import (
	"context"
	"testing"

	"github.com/prklubi/club-bot/internal/models"
	"github.com/prklubi/club-bot/internal/store"
)

func TestCreateActivity(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	st, _ := newTestStore(api, 1)

	id, err := st.CreateActivity(ctx, "3", "Konsert", "Sahna bezash", models.CategoryEvent)
	if err != nil {
		t.Fatal(err)
	}
	if id != "1" {
		t.Fatalf("первый ID пустого листа должен быть 1, получили %q", id)
	}
	row := api.tables["Activities"][0]
	if row[4] != "2026-03-01" {
		t.Fatalf("дата по часам стора: %q", row[4])
	}
	if row[5] != string(models.StatusPending) {
		t.Fatalf("новая заявка должна ждать решения: %q", row[5])
	}
}

func TestSetActivityStatus_ChangedFlag(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Activities"] = [][]string{
		{"1", "3", "Konsert", "", "2026-02-20", "Kutilmoqda", "", "Tadbir"},
	}
	st, _ := newTestStore(api, 1)

	changed, studentID, title, err := st.SetActivityStatus(ctx, "1", models.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	if !changed || studentID != "3" || title != "Konsert" {
		t.Fatalf("первое подтверждение: changed=%v studentID=%q title=%q", changed, studentID, title)
	}

	// повторный клик: статус пишется, но changed=false — балл не начислится
	changed, _, _, err = st.SetActivityStatus(ctx, "1", models.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Fatal("повторное подтверждение должно дать changed=false")
	}

	// смена решения — снова changed
	changed, _, _, err = st.SetActivityStatus(ctx, "1", models.StatusRejected)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("смена решения должна дать changed=true")
	}

	if _, _, _, err := st.SetActivityStatus(ctx, "404", models.StatusApproved); err != store.ErrNotFound {
		t.Fatalf("ждали ErrNotFound, получили %v", err)
	}
}

func TestDecodeActivity_Defaults(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	// статус и категория пустые, хвост строки обрезан
	api.tables["Activities"] = [][]string{
		{"1", "3", "Konsert"},
	}
	st, _ := newTestStore(api, 1)

	a, err := st.ActivityByID(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != models.StatusPending {
		t.Fatalf("пустой статус трактуется как ожидание: %q", a.Status)
	}
	if a.Category != models.CategoryOther {
		t.Fatalf("пустая категория трактуется как Boshqa: %q", a.Category)
	}
}

func TestPendingActivityIDs(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Activities"] = [][]string{
		{"1", "3", "A", "", "", "Kutilmoqda", "", ""},
		{"2", "3", "B", "", "", "Tasdiqlandi", "", ""},
		{"3", "4", "C", "", "", "", "", ""},    // пустой статус — тоже ждёт
		{"", "4", "D", "", "", "", "", ""},     // без ID не показываем
	}
	st, _ := newTestStore(api, 1)

	ids, err := st.PendingActivityIDs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "3" {
		t.Fatalf("ждали [1 3], получили %v", ids)
	}
}
