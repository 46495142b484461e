package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

func TestValidatePeriod(t *testing.T) {
	today := time.Date(2024, 5, 15, 18, 45, 0, 0, time.Local)

	tests := []struct {
		name     string
		from     string
		to       string
		wantRule string
	}{
		{name: "período válido", from: "2024-05-10", to: "2024-05-15"},
		{name: "um único dia", from: "2024-05-15", to: "2024-05-15"},
		{name: "limite de 7 dias", from: "2024-05-08", to: "2024-05-15"},
		{name: "termina amanhã", from: "2024-05-14", to: "2024-05-16", wantRule: RulePeriodInFuture},
		{name: "começa há mais de 7 dias", from: "2024-05-01", to: "2024-05-03", wantRule: RulePeriodTooOld},
		{name: "mais longo que 7 dias", from: "2024-05-07", to: "2024-05-15", wantRule: RulePeriodTooLong},
		{name: "invertido", from: "2024-05-12", to: "2024-05-10", wantRule: RulePeriodInverted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeriod(utils.MustParseDate(tt.from), utils.MustParseDate(tt.to), today)

			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantRule, validationErr.Rule)
			assert.NotEmpty(t, validationErr.Message)
		})
	}
}

func TestValidatePeriod_Params(t *testing.T) {
	today := utils.MustParseDate("2024-05-15")

	err := ValidatePeriod(utils.MustParseDate("2024-05-01"), utils.MustParseDate("2024-05-02"), today)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]any{"max_days_back": 7}, validationErr.Params)
}

func TestValidatePeriods(t *testing.T) {
	today := utils.MustParseDate("2024-05-15")
	valid := domain.Period{ID: "p1", From: utils.MustParseDate("2024-05-10"), To: utils.MustParseDate("2024-05-12")}
	future := domain.Period{ID: "p2", From: utils.MustParseDate("2024-05-14"), To: utils.MustParseDate("2024-05-20")}

	t.Run("lista vazia", func(t *testing.T) {
		var validationErr *ValidationError
		require.ErrorAs(t, ValidatePeriods(nil, today), &validationErr)
		assert.Equal(t, RulePeriodCount, validationErr.Rule)
	})

	t.Run("mais de 10 períodos", func(t *testing.T) {
		periods := make([]domain.Period, 11)
		for i := range periods {
			periods[i] = valid
		}

		var validationErr *ValidationError
		require.ErrorAs(t, ValidatePeriods(periods, today), &validationErr)
		assert.Equal(t, RulePeriodCount, validationErr.Rule)
		assert.Equal(t, 11, validationErr.Params["received"])
	})

	t.Run("primeira violação com id do período", func(t *testing.T) {
		var validationErr *ValidationError
		require.ErrorAs(t, ValidatePeriods([]domain.Period{valid, future}, today), &validationErr)
		assert.Equal(t, RulePeriodInFuture, validationErr.Rule)
		assert.Equal(t, "p2", validationErr.PeriodID)
	})

	t.Run("períodos sobrepostos são aceitos", func(t *testing.T) {
		overlapping := domain.Period{ID: "p3", From: utils.MustParseDate("2024-05-11"), To: utils.MustParseDate("2024-05-13")}
		assert.NoError(t, ValidatePeriods([]domain.Period{valid, overlapping}, today))
	})
}

func TestNewValidator_Defaults(t *testing.T) {
	v := NewValidator(0, -1)

	assert.Equal(t, DefaultMaxPeriods, v.MaxPeriods)
	assert.Equal(t, DefaultMaxPeriodDays, v.MaxPeriodDays)
}
