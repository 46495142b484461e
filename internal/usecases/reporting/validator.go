package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	DefaultMaxPeriodDays = 7
	DefaultMaxPeriods    = 10
)

// Regras de validação de período
const (
	RulePeriodInverted = "period_inverted"
	RulePeriodInFuture = "period_in_future"
	RulePeriodTooLong  = "period_too_long"
	RulePeriodTooOld   = "period_too_old"
	RulePeriodCount    = "period_count"
)

// ValidationError indica qual regra o período violou e com quais parâmetros
type ValidationError struct {
	Rule     string         `json:"rule"`
	Message  string         `json:"message"`
	PeriodID string         `json:"period_id,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.PeriodID != "" {
		return fmt.Sprintf("period %s: %s: %s", e.PeriodID, e.Rule, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

// Validator aplica as regras de janela a períodos de relatório
type Validator struct {
	MaxPeriods    int
	MaxPeriodDays int
}

func NewValidator(maxPeriods, maxPeriodDays int) Validator {
	if maxPeriods <= 0 {
		maxPeriods = DefaultMaxPeriods
	}
	if maxPeriodDays <= 0 {
		maxPeriodDays = DefaultMaxPeriodDays
	}
	return Validator{MaxPeriods: maxPeriods, MaxPeriodDays: maxPeriodDays}
}

// ValidatePeriod usa os limites padrão (7 dias)
func ValidatePeriod(from, to, today time.Time) error {
	return NewValidator(DefaultMaxPeriods, DefaultMaxPeriodDays).ValidatePeriod(from, to, today)
}

// ValidatePeriods usa os limites padrão (1 a 10 períodos de até 7 dias)
func ValidatePeriods(periods []domain.Period, today time.Time) error {
	return NewValidator(DefaultMaxPeriods, DefaultMaxPeriodDays).ValidatePeriods(periods, today)
}

// ValidatePeriod compara apenas datas de calendário; a hora de `today` é ignorada
func (v Validator) ValidatePeriod(from, to, today time.Time) error {
	from = domain.TruncateDay(from)
	to = domain.TruncateDay(to)
	today = domain.TruncateDay(today)

	if from.After(to) {
		return &ValidationError{
			Rule:    RulePeriodInverted,
			Message: "Дата начала периода не может быть позже даты окончания",
			Params: map[string]any{
				"from": from.Format(time.DateOnly),
				"to":   to.Format(time.DateOnly),
			},
		}
	}

	if to.After(today) {
		return &ValidationError{
			Rule:    RulePeriodInFuture,
			Message: "Период не может заканчиваться в будущем",
			Params:  map[string]any{"today": today.Format(time.DateOnly)},
		}
	}

	if domain.DaysBetween(from, to) > v.MaxPeriodDays {
		return &ValidationError{
			Rule:    RulePeriodTooLong,
			Message: fmt.Sprintf("Период не может быть длиннее %d дней", v.MaxPeriodDays),
			Params:  map[string]any{"max_days": v.MaxPeriodDays},
		}
	}

	if from.Before(today.AddDate(0, 0, -v.MaxPeriodDays)) {
		return &ValidationError{
			Rule:    RulePeriodTooOld,
			Message: fmt.Sprintf("Период не может начинаться раньше, чем %d дней назад", v.MaxPeriodDays),
			Params:  map[string]any{"max_days_back": v.MaxPeriodDays},
		}
	}

	return nil
}

// ValidatePeriods retorna a primeira violação encontrada, na ordem da lista
func (v Validator) ValidatePeriods(periods []domain.Period, today time.Time) error {
	if len(periods) == 0 || len(periods) > v.MaxPeriods {
		return &ValidationError{
			Rule:    RulePeriodCount,
			Message: fmt.Sprintf("Количество периодов должно быть от 1 до %d", v.MaxPeriods),
			Params:  map[string]any{"min": 1, "max": v.MaxPeriods, "received": len(periods)},
		}
	}

	for _, period := range periods {
		if err := v.ValidatePeriod(period.From, period.To, today); err != nil {
			var validationErr *ValidationError
			if errors.As(err, &validationErr) {
				validationErr.PeriodID = period.ID
			}
			return err
		}
	}

	return nil
}
