package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

var (
	ErrWorkspaceNotFound      = errors.New("workspace not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrWorkspaceWithoutAPIKey = errors.New("workspace has no marketplace API key")
	ErrTooFrequent            = errors.New("data update requested too frequently")
	ErrUnexpected             = errors.New("unexpected sync error")
)

// Etapas da sincronização de um workspace, usadas em logs e erros
const (
	StageCards       = "cards"
	StageCampaigns   = "campaigns"
	StageFunnel      = "funnel_stats"
	StageAdvertStats = "advert_stats"
	StageStore       = "store"
	StageWarehouses  = "warehouses"
	StageMarkUpdated = "mark_updated"
)

// RateLimitError indica que a atualização manual foi pedida antes do intervalo mínimo
type RateLimitError struct {
	RemainingHours int
	Unit           string
}

func NewRateLimitError(remainingHours int) *RateLimitError {
	return &RateLimitError{
		RemainingHours: remainingHours,
		Unit:           utils.HoursUnit(remainingHours),
	}
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: retry in %d %s", ErrTooFrequent.Error(), e.RemainingHours, e.Unit)
}

func (e *RateLimitError) Unwrap() error {
	return ErrTooFrequent
}

// Message é o texto exibido ao vendedor
func (e *RateLimitError) Message() string {
	return fmt.Sprintf("Обновление данных пока недоступно. Повторите через %d %s", e.RemainingHours, e.Unit)
}

// TransientSyncError é uma falha de uma etapa externa ou de armazenamento; a próxima execução agendada tenta de novo
type TransientSyncError struct {
	WorkspaceID string
	Stage       string
	Err         error
}

func (e *TransientSyncError) Error() string {
	return fmt.Sprintf("workspace %s: %s: %v", e.WorkspaceID, e.Stage, e.Err)
}

func (e *TransientSyncError) Unwrap() error {
	return e.Err
}

func NewTransientError(workspaceID, stage string, err error) *TransientSyncError {
	return &TransientSyncError{
		WorkspaceID: workspaceID,
		Stage:       stage,
		Err:         err,
	}
}

// UnexpectedError envolve panics e erros fora das categorias conhecidas
func UnexpectedError(cause any) error {
	if err, ok := cause.(error); ok {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	return fmt.Errorf("%w: %v", ErrUnexpected, cause)
}
