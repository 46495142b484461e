package syncing

import (
	"time"

	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const DefaultMinInterval = 6 * time.Hour

// CheckInterval recusa uma atualização manual se a última ação (atualização concluída ou solicitada)
// ocorreu há menos de minInterval. Horas decorridas são arredondadas para baixo.
func CheckInterval(lastDataUpdateAt, lastDataUpdateRequestedAt *time.Time, now time.Time, minInterval time.Duration) error {
	lastAction := domain.LatestOf(lastDataUpdateAt, lastDataUpdateRequestedAt)
	if lastAction == nil {
		return nil
	}

	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	// fração de hora conta como hora inteira
	minHours := int((minInterval + time.Hour - 1) / time.Hour)

	elapsed := now.Sub(*lastAction)
	if elapsed < 0 {
		elapsed = 0
	}
	elapsedHours := int(elapsed / time.Hour)

	if elapsedHours >= minHours {
		return nil
	}

	return NewRateLimitError(minHours - elapsedHours)
}
