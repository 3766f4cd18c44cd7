// Package session хранит состояние диалоговых сценариев в памяти процесса:
// три независимых автомата на пользователя — подача активности, админ-панель
// и рассылка. Перезапуск процесса теряет состояние, это принято. Указатели,
// которые возвращают Activity/Admin, мутируются обработчиками без блокировки:
// события обрабатываются строго по одному.
package session

import (
	"strings"
	"sync"

	"github.com/prklubi/club-bot/internal/models"
)

type ActivityStage int

const (
	StageCategory ActivityStage = iota
	StageTitle
	StageDescription
	StagePhotos
)

// Activity — накопитель сценария подачи активности.
type Activity struct {
	Stage       ActivityStage
	StudentID   string
	Category    models.Category
	Title       string
	Description string
	Photos      []string
}

func (a *Activity) SetCategory(raw string) {
	a.Category = models.NormalizeCategory(raw)
	a.Stage = StageTitle
}

func (a *Activity) SetTitle(title string) {
	a.Title = strings.TrimSpace(title)
	a.Stage = StageDescription
}

func (a *Activity) SetDescription(description string) {
	a.Description = strings.TrimSpace(description)
	a.Stage = StagePhotos
}

func (a *Activity) AddPhoto(fileID string) {
	a.Photos = append(a.Photos, fileID)
}

type AdminStage int

const (
	AdminMenu AdminStage = iota
	AdminWaitCard
	AdminReview
	AdminWaitNewAdmin
	AdminWaitRemoveAdmin
)

// Admin — состояние админ-сессии. Queue — очередь заявок на проверке,
// собирается при входе в review и не пересортировывается на лету.
type Admin struct {
	Stage AdminStage
	Queue []string
}

type Store struct {
	mu        sync.Mutex
	activity  map[int64]*Activity
	admin     map[int64]*Admin
	broadcast map[int64]struct{}
}

func NewStore() *Store {
	return &Store{
		activity:  make(map[int64]*Activity),
		admin:     make(map[int64]*Admin),
		broadcast: make(map[int64]struct{}),
	}
}

func (s *Store) StartActivity(userID int64, studentID string) *Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &Activity{Stage: StageCategory, StudentID: studentID}
	s.activity[userID] = a
	return a
}

func (s *Store) Activity(userID int64) *Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activity[userID]
}

func (s *Store) ClearActivity(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.activity, userID)
}

func (s *Store) StartAdmin(userID int64) *Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &Admin{Stage: AdminMenu}
	s.admin[userID] = a
	return a
}

func (s *Store) Admin(userID int64) *Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin[userID]
}

func (s *Store) ClearAdmin(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.admin, userID)
}

func (s *Store) StartBroadcast(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcast[userID] = struct{}{}
}

func (s *Store) InBroadcast(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.broadcast[userID]
	return ok
}

func (s *Store) ClearBroadcast(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.broadcast, userID)
}

// Reset — сигнал "перезапустить": сносит все три автомата пользователя.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.activity, userID)
	delete(s.admin, userID)
	delete(s.broadcast, userID)
}

// Back — сигнал "назад": подача и рассылка сбрасываются, а активная
// админ-сессия возвращается в меню, не завершаясь. true — пользователь
// остался в админ-панели.
func (s *Store) Back(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.activity, userID)
	delete(s.broadcast, userID)
	if a, ok := s.admin[userID]; ok {
		a.Stage = AdminMenu
		a.Queue = nil
		return true
	}
	return false
}
