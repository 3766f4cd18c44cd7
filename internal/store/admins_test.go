package store_test

import (
	"context"
	"errors"
	"testing"
)

func TestIsAdmin_OwnerAlways(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	st, _ := newTestStore(api, 42)

	if !st.IsAdmin(ctx, 42) {
		t.Fatal("владелец — всегда админ, даже при пустом листе")
	}
	if st.IsAdmin(ctx, 77) {
		t.Fatal("посторонний не админ")
	}
}

func TestIsAdmin_SheetUnavailable(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.getErr = errors.New("quota exceeded")
	st, _ := newTestStore(api, 42)

	if !st.IsAdmin(ctx, 42) {
		t.Fatal("при недоступном листе владелец остаётся админом")
	}
	if st.IsAdmin(ctx, 77) {
		t.Fatal("при недоступном листе остальные — нет")
	}
}

func TestAddAdmin(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	st, _ := newTestStore(api, 42)

	added, err := st.AddAdmin(ctx, 77)
	if err != nil || !added {
		t.Fatalf("первое добавление: added=%v err=%v", added, err)
	}
	added, err = st.AddAdmin(ctx, 77)
	if err != nil || added {
		t.Fatalf("повторное добавление должно дать false: added=%v err=%v", added, err)
	}
	if !st.IsAdmin(ctx, 77) {
		t.Fatal("добавленный должен стать админом")
	}
}

func TestRemoveAdmin(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.tables["Admins"] = [][]string{{"77"}, {"88"}}
	st, _ := newTestStore(api, 42)

	// владельца снять нельзя
	removed, err := st.RemoveAdmin(ctx, 42)
	if err != nil || removed {
		t.Fatalf("владелец несъёмен: removed=%v err=%v", removed, err)
	}

	removed, err = st.RemoveAdmin(ctx, 77)
	if err != nil || !removed {
		t.Fatalf("снятие админа: removed=%v err=%v", removed, err)
	}
	if got := api.tables["Admins"][0][0]; got != "" {
		t.Fatalf("ячейка должна бланковаться, там %q", got)
	}
	if st.IsAdmin(ctx, 77) {
		t.Fatal("снятый больше не админ")
	}
	if !st.IsAdmin(ctx, 88) {
		t.Fatal("соседний админ не должен пострадать")
	}
}
