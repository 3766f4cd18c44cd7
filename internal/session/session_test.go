package session_test

import (
	"testing"

	"github.com/prklubi/club-bot/internal/models"
	"github.com/prklubi/club-bot/internal/session"
)

func TestActivityStages(t *testing.T) {
	s := session.NewStore()
	a := s.StartActivity(1, "7")

	if a.Stage != session.StageCategory {
		t.Fatalf("сценарий начинается с категории, stage=%d", a.Stage)
	}
	a.SetCategory("Tadbir")
	if a.Stage != session.StageTitle || a.Category != models.CategoryEvent {
		t.Fatalf("после категории ждём название: %+v", a)
	}
	a.SetTitle("  Konsert  ")
	if a.Stage != session.StageDescription || a.Title != "Konsert" {
		t.Fatalf("название должно обрезаться: %+v", a)
	}
	a.SetDescription("Sahna bezash")
	if a.Stage != session.StagePhotos {
		t.Fatalf("после описания ждём фото: %+v", a)
	}
	a.AddPhoto("f1")
	a.AddPhoto("f2")
	if len(a.Photos) != 2 {
		t.Fatalf("фото накапливаются: %v", a.Photos)
	}
}

func TestActivityUnknownCategory(t *testing.T) {
	s := session.NewStore()
	a := s.StartActivity(1, "7")
	a.SetCategory("что угодно")
	if a.Category != models.CategoryOther {
		t.Fatalf("незнакомая категория сводится к Boshqa: %q", a.Category)
	}
}

func TestReset(t *testing.T) {
	s := session.NewStore()
	s.StartActivity(1, "7")
	s.StartAdmin(1)
	s.StartBroadcast(1)

	s.Reset(1)
	if s.Activity(1) != nil || s.Admin(1) != nil || s.InBroadcast(1) {
		t.Fatal("Reset должен снести все три автомата")
	}
}

func TestBack(t *testing.T) {
	s := session.NewStore()
	s.StartActivity(1, "7")
	if s.Back(1) {
		t.Fatal("без админ-сессии Back возвращает false")
	}
	if s.Activity(1) != nil {
		t.Fatal("Back сбрасывает подачу")
	}

	a := s.StartAdmin(2)
	a.Stage = session.AdminReview
	a.Queue = []string{"1", "2"}
	s.StartBroadcast(2)
	if !s.Back(2) {
		t.Fatal("с админ-сессией Back возвращает true")
	}
	if a.Stage != session.AdminMenu || a.Queue != nil {
		t.Fatalf("админ возвращается в меню с пустой очередью: %+v", a)
	}
	if s.InBroadcast(2) {
		t.Fatal("Back сбрасывает режим рассылки")
	}
}
