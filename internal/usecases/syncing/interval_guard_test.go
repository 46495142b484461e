package syncing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInterval(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	tests := []struct {
		name              string
		lastUpdate        *time.Time
		lastRequest       *time.Time
		expectedRemaining int
		expectedUnit      string
	}{
		{name: "nunca atualizado", expectedRemaining: 0},
		{name: "acabou de atualizar", lastUpdate: ago(0), expectedRemaining: 6, expectedUnit: "часов"},
		{name: "duas horas atrás", lastUpdate: ago(2 * time.Hour), expectedRemaining: 4, expectedUnit: "часа"},
		{name: "cinco horas e meia", lastUpdate: ago(5*time.Hour + 30*time.Minute), expectedRemaining: 1, expectedUnit: "час"},
		{name: "exatamente seis horas", lastUpdate: ago(6 * time.Hour), expectedRemaining: 0},
		{name: "solicitação recente prevalece", lastUpdate: ago(10 * time.Hour), lastRequest: ago(3 * time.Hour), expectedRemaining: 3, expectedUnit: "часа"},
		{name: "apenas solicitação antiga", lastRequest: ago(7 * time.Hour), expectedRemaining: 0},
		{name: "relógio adiantado conta como zero", lastUpdate: ago(-time.Hour), expectedRemaining: 6, expectedUnit: "часов"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckInterval(tt.lastUpdate, tt.lastRequest, now, 6*time.Hour)

			if tt.expectedRemaining == 0 {
				assert.NoError(t, err)
				return
			}

			var rateErr *RateLimitError
			require.True(t, errors.As(err, &rateErr))
			assert.Equal(t, tt.expectedRemaining, rateErr.RemainingHours)
			assert.Equal(t, tt.expectedUnit, rateErr.Unit)
			assert.ErrorIs(t, err, ErrTooFrequent)
			assert.Contains(t, rateErr.Message(), "Повторите через")
		})
	}
}

func TestCheckInterval_PartialHourRoundsUp(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	last := now.Add(-30 * time.Minute)

	err := CheckInterval(&last, nil, now, 90*time.Minute)

	var rateErr *RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 2, rateErr.RemainingHours)
	assert.Equal(t, "часа", rateErr.Unit)
}

func TestRateLimitError_MessageFollowsRemainingHours(t *testing.T) {
	err := CheckInterval(timePtr(time.Date(2024, 5, 20, 11, 0, 0, 0, time.UTC)), nil,
		time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC), 2*time.Hour)

	var rateErr *RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, "Обновление данных пока недоступно. Повторите через 1 час", rateErr.Message())
	assert.NotContains(t, rateErr.Message(), "6 часов")
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCheckInterval_DefaultMinInterval(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	last := now.Add(-time.Hour)

	err := CheckInterval(&last, nil, now, 0)

	var rateErr *RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 5, rateErr.RemainingHours)
	assert.Equal(t, "часов", rateErr.Unit)
}
