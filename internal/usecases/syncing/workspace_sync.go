package syncing

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

// WorkspaceSyncer sincroniza cartões, campanhas e estatísticas diárias de um workspace
type WorkspaceSyncer interface {
	SyncWorkspaceAnalytics(ctx context.Context, ws *domain.Workspace, window domain.DateRange) error
}

type AnalyticsSyncer struct {
	integrator    marketplace.Integrator
	workspaceRepo repository.WorkspaceRepository
	cardRepo      repository.CardRepository
	campaignRepo  repository.CampaignRepository
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

func NewAnalyticsSyncer(
	integrator marketplace.Integrator,
	workspaceRepo repository.WorkspaceRepository,
	cardRepo repository.CardRepository,
	campaignRepo repository.CampaignRepository,
	analyticsRepo repository.AnalyticsRepository,
) *AnalyticsSyncer {
	return &AnalyticsSyncer{
		integrator:    integrator,
		workspaceRepo: workspaceRepo,
		cardRepo:      cardRepo,
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// SyncWorkspaceAnalytics executa cartões -> campanhas -> funil + publicidade -> gravação.
// Em caso de sucesso grava last_data_update_at.
func (s *AnalyticsSyncer) SyncWorkspaceAnalytics(ctx context.Context, ws *domain.Workspace, window domain.DateRange) error {
	if !ws.HasAPIKey() {
		return ErrWorkspaceWithoutAPIKey
	}
	apiKey := *ws.APIKey

	logger := log.ForWorkspace(ctx, string(domain.SyncJobAnalytics), ws.ID).WithFields(log.Fields{
		"date_from": window.From.Format(time.DateOnly),
		"date_to":   window.To.Format(time.DateOnly),
	})

	cards, err := s.integrator.GetCards(ctx, apiKey)
	if err != nil {
		return NewTransientError(ws.ID, StageCards, err)
	}
	if err := s.cardRepo.Upsert(ctx, ws.ID, cards); err != nil {
		return NewTransientError(ws.ID, StageStore, err)
	}
	logger.Debugf("%d cartões sincronizados", len(cards))

	campaigns, err := s.integrator.GetCampaigns(ctx, apiKey)
	if err != nil {
		return NewTransientError(ws.ID, StageCampaigns, err)
	}
	if err := s.campaignRepo.Upsert(ctx, ws.ID, campaigns); err != nil {
		return NewTransientError(ws.ID, StageStore, err)
	}
	logger.Debugf("%d campanhas sincronizadas", len(campaigns))

	articleIDs := make([]int64, 0, len(cards))
	for _, card := range cards {
		articleIDs = append(articleIDs, card.ArticleID)
	}

	var funnelRows []domain.MetricRow
	if len(articleIDs) > 0 {
		funnelRows, err = s.integrator.GetFunnelStats(ctx, apiKey, articleIDs, window)
		if err != nil {
			return NewTransientError(ws.ID, StageFunnel, err)
		}
	}

	var advertRows []domain.MetricRow
	if campaignIDs := campaignsWithStats(campaigns); len(campaignIDs) > 0 {
		advertRows, err = s.integrator.GetAdvertStats(ctx, apiKey, campaignIDs, window)
		if err != nil {
			return NewTransientError(ws.ID, StageAdvertStats, err)
		}
	}

	rows := MergeRows(window, funnelRows, advertRows)
	if err := s.analyticsRepo.UpsertDailyStats(ctx, ws.ID, rows); err != nil {
		return NewTransientError(ws.ID, StageStore, err)
	}

	if err := s.workspaceRepo.MarkDataUpdated(ctx, ws.ID, s.now()); err != nil {
		return NewTransientError(ws.ID, StageMarkUpdated, err)
	}

	logger.Infof("Workspace sincronizado: %d linhas diárias", len(rows))
	return nil
}

// campanhas prontas ou recusadas nunca veicularam e não têm estatísticas
func campaignsWithStats(campaigns []domain.Campaign) []int64 {
	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		switch c.Status {
		case domain.CampaignStatusActive, domain.CampaignStatusPaused, domain.CampaignStatusCompleted:
			ids = append(ids, c.ExternalID)
		}
	}
	return ids
}

// MergeRows junta as linhas de funil e de publicidade por (artigo, dia), descartando datas fora da janela.
// O resultado é ordenado por data e artigo.
func MergeRows(window domain.DateRange, sources ...[]domain.MetricRow) []domain.MetricRow {
	type key struct {
		articleID int64
		day       string
	}

	merged := make(map[key]*domain.MetricRow)
	for _, rows := range sources {
		for _, row := range rows {
			if !window.Contains(row.Date) {
				continue
			}

			k := key{articleID: row.ArticleID, day: row.Date.Format(time.DateOnly)}
			existing, ok := merged[k]
			if !ok {
				r := row
				r.Date = domain.TruncateDay(row.Date)
				merged[k] = &r
				continue
			}
			existing.Merge(row)
		}
	}

	out := make([]domain.MetricRow, 0, len(merged))
	for _, row := range merged {
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ArticleID < out[j].ArticleID
	})

	return out
}
