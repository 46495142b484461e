package scheduler

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"time"

	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

var ErrSyncAlreadyRunning = errors.New("sync already running")

// workspaceTask processa um workspace e informa o resultado
type workspaceTask func(ctx context.Context, ws *domain.Workspace) (domain.SyncOutcome, error)

type taskResult struct {
	workspaceID string
	outcome     domain.SyncOutcome
}

// jobState impede execuções sobrepostas do mesmo job e guarda o último resumo
type jobState struct {
	mu          sync.Mutex
	running     bool
	lastSummary *domain.RunSummary
}

func (j *jobState) tryAcquire() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}
	j.running = true
	return true
}

func (j *jobState) release(summary domain.RunSummary) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastSummary = &summary
}

func (j *jobState) snapshot() (bool, *domain.RunSummary) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.lastSummary == nil {
		return j.running, nil
	}
	last := *j.lastSummary
	return j.running, &last
}

// dispatch submete uma tarefa por workspace e bloqueia até todas terminarem.
// Cada tarefa devolve seu resultado pelo canal; a contagem é feita só depois da barreira.
func dispatch(
	ctx context.Context,
	job domain.SyncJob,
	pool *Pool,
	metrics *Metrics,
	workspaces []*domain.Workspace,
	task workspaceTask,
	summary *domain.RunSummary,
) {
	results := make(chan taskResult, len(workspaces))

	for _, ws := range workspaces {
		ws := ws
		inline := pool.Submit(func() {
			results <- taskResult{
				workspaceID: ws.ID,
				outcome:     runTask(ctx, job, ws, task),
			}
		})
		if inline {
			metrics.ObserveInline(job)
			log.ForJob(ctx, string(job)).Debug("Fila cheia, tarefa executada no despachante")
		}
	}

	pool.Wait()
	close(results)

	for result := range results {
		summary.Add(result.outcome)
	}
}

// runTask é a fronteira de isolamento: erros e panics viram falha deste workspace e são logados uma única vez
func runTask(ctx context.Context, job domain.SyncJob, ws *domain.Workspace, task workspaceTask) (outcome domain.SyncOutcome) {
	logger := log.ForWorkspace(ctx, string(job), ws.ID)

	defer func() {
		if r := recover(); r != nil {
			logger.WithError(syncing.UnexpectedError(r)).
				WithField("stack", string(debug.Stack())).
				Error("Panic ao sincronizar workspace")
			outcome = domain.SyncOutcomeFailed
		}
	}()

	started := time.Now()
	outcome, err := task(ctx, ws)
	if err != nil {
		fields := log.Fields{"duration_ms": time.Since(started).Milliseconds()}

		var transient *syncing.TransientSyncError
		if errors.As(err, &transient) {
			fields[log.FieldStage] = transient.Stage
		} else {
			err = syncing.UnexpectedError(err)
		}

		logger.WithFields(fields).WithError(err).Error("Falha ao sincronizar workspace")
		return domain.SyncOutcomeFailed
	}

	return outcome
}
