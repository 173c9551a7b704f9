package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const purgeTimeout = 30 * time.Second

// SchedulePurge registra en c el job que limpia sesiones vencidas.
// schedule vacío => no se agenda nada.
func SchedulePurge(c *cron.Cron, schedule string, m *Manager) (cron.EntryID, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return 0, nil
	}

	return c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		if _, err := m.PurgeExpired(ctx); err != nil {
			m.log.Warn("session purge failed", map[string]any{"error": err.Error()})
		}
	})
}
