package domain

import "time"

type SyncJob string

const (
	SyncJobAnalytics  SyncJob = "analytics"
	SyncJobWarehouses SyncJob = "warehouses"
	SyncJobManual     SyncJob = "manual"
)

// RunSummary resume uma execução agendada
type RunSummary struct {
	Job        SyncJob   `json:"job"`
	Processed  int       `json:"processed"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	Window     DateRange `json:"window"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (s RunSummary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

type SyncOutcome string

const (
	SyncOutcomeSucceeded SyncOutcome = "succeeded"
	SyncOutcomeFailed    SyncOutcome = "failed"
	SyncOutcomeSkipped   SyncOutcome = "skipped"
)

// Add contabiliza o resultado de uma tarefa
func (s *RunSummary) Add(outcome SyncOutcome) {
	s.Processed++
	switch outcome {
	case SyncOutcomeSucceeded:
		s.Succeeded++
	case SyncOutcomeFailed:
		s.Failed++
	case SyncOutcomeSkipped:
		s.Skipped++
	}
}
