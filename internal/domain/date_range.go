package domain

import (
	"time"
)

// DateRange é um intervalo fechado de datas de calendário (From <= To)
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewDateRange normaliza as duas datas para meia-noite
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: TruncateDay(from), To: TruncateDay(to)}
}

// TrailingWindow retorna os últimos `days` dias terminando ontem. Hoje nunca entra,
// pois os dados do dia corrente ainda estão incompletos na origem.
func TrailingWindow(now time.Time, days int) DateRange {
	if days < 1 {
		days = 1
	}

	yesterday := TruncateDay(now).AddDate(0, 0, -1)
	return DateRange{
		From: yesterday.AddDate(0, 0, -(days - 1)),
		To:   yesterday,
	}
}

// Days retorna a quantidade de dias entre From e To (0 quando são o mesmo dia)
func (r DateRange) Days() int {
	return DaysBetween(r.From, r.To)
}

func (r DateRange) Contains(date time.Time) bool {
	d := TruncateDay(date)
	return !d.Before(TruncateDay(r.From)) && !d.After(TruncateDay(r.To))
}

// Dates lista todas as datas do intervalo em ordem crescente
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days()+1)
	for d := TruncateDay(r.From); !d.After(TruncateDay(r.To)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Union retorna o menor intervalo que cobre todos os intervalos informados
func Union(ranges ...DateRange) DateRange {
	if len(ranges) == 0 {
		return DateRange{}
	}

	out := ranges[0]
	for _, r := range ranges[1:] {
		if r.From.Before(out.From) {
			out.From = r.From
		}
		if r.To.After(out.To) {
			out.To = r.To
		}
	}
	return out
}

func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween conta dias de calendário, imune a mudanças de horário de verão
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
