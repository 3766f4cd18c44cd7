package store_test

import (
	"context"
	"testing"

	"github.com/prklubi/club-bot/internal/models"
)

func TestAddPhoto_DuplicateMarksBothActivities(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Activities"] = [][]string{
		{"1", "3", "A", "", "", "Kutilmoqda", "", ""},
		{"2", "3", "B", "", "", "Kutilmoqda", "", ""},
	}
	api.tables["Photos"] = [][]string{
		{"1", "1", "file-x"},
	}
	st, _ := newTestStore(api, 1)

	if err := st.AddPhoto(ctx, "2", "file-x"); err != nil {
		t.Fatal(err)
	}
	a1, _ := st.ActivityByID(ctx, "1")
	a2, _ := st.ActivityByID(ctx, "2")
	if !a1.Warning || !a2.Warning {
		t.Fatalf("дубликат фото должен пометить обе активности: %v %v", a1.Warning, a2.Warning)
	}
}

func TestAddPhoto_SameActivityNoWarning(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Activities"] = [][]string{
		{"1", "3", "A", "", "", "Kutilmoqda", "", ""},
	}
	api.tables["Photos"] = [][]string{
		{"1", "1", "file-x"},
	}
	st, _ := newTestStore(api, 1)

	if err := st.AddPhoto(ctx, "1", "file-x"); err != nil {
		t.Fatal(err)
	}
	a, _ := st.ActivityByID(ctx, "1")
	if a.Warning {
		t.Fatal("повтор фото в рамках одной активности — не дубликат")
	}
}

func TestSubmitActivity(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	st, _ := newTestStore(api, 1)

	id, err := st.SubmitActivity(ctx, "3", "Konsert", "Sahna", models.CategoryEvent, []string{"f1", "f2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(api.tables["Activities"]) != 1 {
		t.Fatalf("должна появиться одна активность, их %d", len(api.tables["Activities"]))
	}
	photos, err := st.ActivityPhotos(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(photos) != 2 || photos[0] != "f1" || photos[1] != "f2" {
		t.Fatalf("фото в порядке добавления: %v", photos)
	}
}
