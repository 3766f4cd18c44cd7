package jobs

import (
	"context"

	"github.com/prklubi/club-bot/internal/ctxutil"
	"github.com/prklubi/club-bot/internal/metrics"
	"github.com/prklubi/club-bot/internal/store"
)

// RefreshPendingGauge обновляет гейдж количества заявок на модерации.
func RefreshPendingGauge(st *store.Store) Job {
	return func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithStoreTimeout(ctx)
		defer cancel()
		ids, err := st.PendingActivityIDs(ctx)
		if err != nil {
			return err
		}
		metrics.PendingActivities.Set(float64(len(ids)))
		return nil
	}
}

// WarmAdmins периодически перечитывает список админов, чтобы кэш с часовым
// TTL не протухал посреди ревью.
func WarmAdmins(st *store.Store) Job {
	return func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithStoreTimeout(ctx)
		defer cancel()
		_, err := st.AdminIDs(ctx)
		return err
	}
}
