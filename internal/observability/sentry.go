package observability

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry включает отправку ошибок, если задан DSN. Пустой DSN — no-op,
// чтобы локальная разработка не требовала Sentry.
func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}

// CapturePanic — для recover в диспетчере.
func CapturePanic(p any) {
	sentry.CurrentHub().Recover(p)
}
