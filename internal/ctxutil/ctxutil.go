package ctxutil

import (
	"context"
	"time"
)

// Таймауты: на одно событие целиком и на один вызов удалённой таблицы.
// Пока константы; при желании позже вынесем в конфиг.
var (
	DefaultUpdateTimeout = 30 * time.Second
	DefaultStoreTimeout  = 10 * time.Second
)

// WithUpdateTimeout — бюджет на обработку одного входящего события.
func WithUpdateTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, DefaultUpdateTimeout)
}

// WithStoreTimeout — стандартный таймаут обращения к таблице.
// Если у родителя дедлайн ближе — берём остаток.
func WithStoreTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		if remain := time.Until(dl); remain < DefaultStoreTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultStoreTimeout)
}
