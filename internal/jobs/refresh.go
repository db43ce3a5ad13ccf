// Package jobs schedules background maintenance work.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/bellathena/cityhill-backoffice/internal/store"
)

// InitCronJobs starts the periodic snapshot re-sync.  Mutation handlers
// already re-sync after every write; the cron run catches changes made by
// other clients of the upstream API.  The returned cron can be stopped on
// shutdown.
func InitCronJobs(schedule string, st *store.Store, log zerolog.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		if err := st.Sync(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled snapshot sync failed")
			return
		}
		log.Info().Uint64("version", st.Version()).Msg("scheduled snapshot sync complete")
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
