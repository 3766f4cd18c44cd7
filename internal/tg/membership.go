package tg

import (
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ChatMemberAPI — кусок Bot API, нужный для проверки членства в канале.
type ChatMemberAPI interface {
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Membership кэширует статус членства пользователя в канале на сутки.
// Ошибка запроса трактуется как "не член" и тоже кэшируется: не долбим API
// на каждый чих незарегистрированного пользователя.
type Membership struct {
	api     ChatMemberAPI
	channel string // @username канала
	ttl     time.Duration
	now     func() time.Time

	mu    sync.Mutex
	cache map[int64]memberEntry
}

type memberEntry struct {
	isMember  bool
	checkedAt time.Time
}

func NewMembership(api ChatMemberAPI, channel string) *Membership {
	return &Membership{
		api:     api,
		channel: channel,
		ttl:     24 * time.Hour,
		now:     time.Now,
		cache:   make(map[int64]memberEntry),
	}
}

func (m *Membership) IsMember(userID int64) bool {
	m.mu.Lock()
	if e, ok := m.cache[userID]; ok && m.now().Sub(e.checkedAt) < m.ttl {
		m.mu.Unlock()
		return e.isMember
	}
	m.mu.Unlock()

	member, err := m.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: m.channel,
			UserID:             userID,
		},
	})
	ok := err == nil &&
		(member.Status == "member" || member.Status == "administrator" || member.Status == "creator")

	m.mu.Lock()
	m.cache[userID] = memberEntry{isMember: ok, checkedAt: m.now()}
	m.mu.Unlock()
	return ok
}
