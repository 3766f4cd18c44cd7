package qr_test

import (
	"testing"

	"github.com/prklubi/club-bot/internal/qr"
)

func TestDecode_Disabled(t *testing.T) {
	d := qr.New(false)
	if got := d.Decode([]byte("whatever")); got != "" {
		t.Fatalf("выключенный декодер всегда отвечает пусто, получили %q", got)
	}
}

func TestDecode_GarbageBytes(t *testing.T) {
	d := qr.New(true)
	if got := d.Decode([]byte{0x00, 0x01, 0x02}); got != "" {
		t.Fatalf("не-изображение должно давать пустой результат, получили %q", got)
	}
}
