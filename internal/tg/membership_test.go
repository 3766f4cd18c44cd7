package tg

import (
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeChatAPI struct {
	status string
	err    error
	calls  int
}

func (f *fakeChatAPI) GetChatMember(tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.calls++
	return tgbotapi.ChatMember{Status: f.status}, f.err
}

func TestIsMember_StatusMapping(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"member", true},
		{"administrator", true},
		{"creator", true},
		{"left", false},
		{"kicked", false},
		{"restricted", false},
	}
	for _, c := range cases {
		m := NewMembership(&fakeChatAPI{status: c.status}, "@club")
		if got := m.IsMember(1); got != c.want {
			t.Fatalf("статус %q: ждали %v, получили %v", c.status, c.want, got)
		}
	}
}

func TestIsMember_Cached(t *testing.T) {
	api := &fakeChatAPI{status: "member"}
	m := NewMembership(api, "@club")

	for i := 0; i < 5; i++ {
		m.IsMember(1)
	}
	if api.calls != 1 {
		t.Fatalf("внутри TTL один запрос к API, было %d", api.calls)
	}
}

func TestIsMember_ErrorCachedAsNonMember(t *testing.T) {
	api := &fakeChatAPI{err: errors.New("user not found")}
	m := NewMembership(api, "@club")

	if m.IsMember(1) {
		t.Fatal("ошибка API трактуется как не-член")
	}
	m.IsMember(1)
	if api.calls != 1 {
		t.Fatalf("отрицательный результат тоже кэшируется, запросов %d", api.calls)
	}
}

func TestIsMember_CacheExpires(t *testing.T) {
	api := &fakeChatAPI{status: "member"}
	m := NewMembership(api, "@club")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.IsMember(1)
	now = now.Add(23 * time.Hour)
	m.IsMember(1)
	if api.calls != 1 {
		t.Fatalf("до истечения суток повторного запроса быть не должно, было %d", api.calls)
	}
	now = now.Add(2 * time.Hour)
	m.IsMember(1)
	if api.calls != 2 {
		t.Fatalf("после суток статус перепроверяется, запросов %d", api.calls)
	}
}
