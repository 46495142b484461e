package marketplace

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	mpdomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/mpclient"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const (
	cardsPageSize        = 100
	funnelArticlesPerReq = 20
	advertsPerStatsReq   = 100
)

type Integrator interface {
	GetCards(ctx context.Context, apiKey string) ([]domain.Card, error)
	GetCampaigns(ctx context.Context, apiKey string) ([]domain.Campaign, error)
	GetFunnelStats(ctx context.Context, apiKey string, articleIDs []int64, window domain.DateRange) ([]domain.MetricRow, error)
	GetAdvertStats(ctx context.Context, apiKey string, campaignIDs []int64, window domain.DateRange) ([]domain.MetricRow, error)
	GetWarehouses(ctx context.Context, apiKey string) ([]domain.Warehouse, error)
}

type MarketplaceService struct {
	Client mpclient.Client
}

func New(client mpclient.Client) Integrator {
	return &MarketplaceService{
		Client: client,
	}
}

// GetCards percorre o cursor até a última página
func (s *MarketplaceService) GetCards(ctx context.Context, apiKey string) ([]domain.Card, error) {
	cards := make([]domain.Card, 0)
	cursor := mpdomain.CardsCursor{Limit: cardsPageSize}

	for {
		resp, err := s.Client.GetCards(ctx, apiKey, mpdomain.CardsRequest{
			Settings: mpdomain.CardsSettings{
				Cursor: cursor,
				Filter: mpdomain.CardsFilter{WithPhoto: -1},
			},
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao listar cartões")
		}

		for _, c := range resp.Cards {
			cards = append(cards, domain.Card{
				ArticleID:  c.NmID,
				VendorCode: c.VendorCode,
				Title:      c.Title,
				Brand:      c.Brand,
				Subject:    c.SubjectName,
				UpdatedAt:  c.UpdatedAt,
			})
		}

		if len(resp.Cards) < cardsPageSize || resp.Cursor.Total < cardsPageSize {
			break
		}

		cursor = mpdomain.CardsCursor{
			Limit:     cardsPageSize,
			UpdatedAt: resp.Cursor.UpdatedAt,
			NmID:      resp.Cursor.NmID,
		}
	}

	return cards, nil
}

// GetCampaigns converte os códigos numéricos; campanhas com status ou tipo desconhecido são descartadas
func (s *MarketplaceService) GetCampaigns(ctx context.Context, apiKey string) ([]domain.Campaign, error) {
	adverts, err := s.Client.GetAdverts(ctx, apiKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar campanhas")
	}

	campaigns := make([]domain.Campaign, 0, len(adverts))
	for _, advert := range adverts {
		campaign, err := toCampaign(advert)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": advert.AdvertID,
				"status":      advert.Status,
				"type":        advert.Type,
			}).WithError(err).Warn("Campanha ignorada")
			continue
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func toCampaign(advert mpdomain.Advert) (domain.Campaign, error) {
	status, err := domain.ParseCampaignStatus(advert.Status)
	if err != nil {
		return domain.Campaign{}, err
	}

	campaignType, err := domain.ParseCampaignType(advert.Type)
	if err != nil {
		return domain.Campaign{}, err
	}

	campaign := domain.Campaign{
		ExternalID: advert.AdvertID,
		Name:       advert.Name,
		Status:     status,
		Type:       campaignType,
		ArticleIDs: advert.NmIDs,
	}
	if !advert.ChangeTime.IsZero() {
		changedAt := advert.ChangeTime
		campaign.ChangedAt = &changedAt
	}

	return campaign, nil
}

// GetFunnelStats retorna uma linha por artigo e dia com os dados do funil
func (s *MarketplaceService) GetFunnelStats(ctx context.Context, apiKey string, articleIDs []int64, window domain.DateRange) ([]domain.MetricRow, error) {
	rows := make([]domain.MetricRow, 0)
	period := toInterval(window)

	for _, batch := range batches(articleIDs, funnelArticlesPerReq) {
		resp, err := s.Client.GetFunnelHistory(ctx, apiKey, mpdomain.FunnelRequest{
			NmIDs:  batch,
			Period: period,
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao consultar funil de vendas")
		}

		for _, card := range resp.Data {
			for _, day := range card.History {
				date, err := time.ParseInLocation(time.DateOnly, day.Dt, time.Local)
				if err != nil {
					return nil, errors.Wrapf(err, "data inválida no funil: %q", day.Dt)
				}

				rows = append(rows, domain.MetricRow{
					ArticleID:    card.NmID,
					Date:         date,
					Transitions:  day.OpenCardCount,
					Cart:         day.AddToCartCount,
					Orders:       day.OrdersCount,
					OrdersAmount: day.OrdersSumRub,
				})
			}
		}
	}

	return rows, nil
}

// GetAdvertStats soma as estatísticas de todas as campanhas por artigo e dia
func (s *MarketplaceService) GetAdvertStats(ctx context.Context, apiKey string, campaignIDs []int64, window domain.DateRange) ([]domain.MetricRow, error) {
	type key struct {
		articleID int64
		date      time.Time
	}

	merged := make(map[key]*domain.MetricRow)
	order := make([]key, 0)
	interval := toInterval(window)

	for _, batch := range batches(campaignIDs, advertsPerStatsReq) {
		req := make([]mpdomain.AdvertStatsRequest, 0, len(batch))
		for _, id := range batch {
			req = append(req, mpdomain.AdvertStatsRequest{ID: id, Interval: interval})
		}

		stats, err := s.Client.GetAdvertStats(ctx, apiKey, req)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao consultar estatísticas de campanhas")
		}

		for _, advert := range stats {
			for _, day := range advert.Days {
				// o dia vem com o fuso da API; vale a data de calendário informada, não a do servidor
				date := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), 0, 0, 0, 0, time.Local)
				for _, nm := range day.Nms {
					k := key{articleID: nm.NmID, date: date}
					row, ok := merged[k]
					if !ok {
						row = &domain.MetricRow{ArticleID: nm.NmID, Date: date}
						merged[k] = row
						order = append(order, k)
					}
					row.Merge(domain.MetricRow{Views: nm.Views, Clicks: nm.Clicks, Costs: nm.Sum})
				}
			}
		}
	}

	rows := make([]domain.MetricRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *merged[k])
	}

	return rows, nil
}

func (s *MarketplaceService) GetWarehouses(ctx context.Context, apiKey string) ([]domain.Warehouse, error) {
	resp, err := s.Client.GetWarehouses(ctx, apiKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar armazéns")
	}

	warehouses := make([]domain.Warehouse, 0, len(resp))
	for _, wh := range resp {
		warehouses = append(warehouses, domain.Warehouse{
			ExternalID: wh.ID,
			Name:       wh.Name,
			Address:    wh.Address,
			City:       wh.City,
			IsActive:   wh.IsActive,
		})
	}

	return warehouses, nil
}

func toInterval(window domain.DateRange) mpdomain.Interval {
	return mpdomain.Interval{
		Begin: window.From.Format(time.DateOnly),
		End:   window.To.Format(time.DateOnly),
	}
}

func batches(ids []int64, size int) [][]int64 {
	out := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}
