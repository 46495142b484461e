package mpclient

import (
	"context"
	"net/http"
	"strings"

	mpdomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/domain"
)

const (
	cardsListPath     = "/content/v2/get/cards/list"
	advertsPath       = "/adv/v1/promotion/adverts"
	advertStatsPath   = "/adv/v2/fullstats"
	funnelHistoryPath = "/api/v2/nm-report/detail/history"
	warehousesPath    = "/api/v1/warehouses"
)

func join(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

func (c *MarketplaceClient) GetCards(ctx context.Context, apiKey string, req mpdomain.CardsRequest) (*mpdomain.CardsResponse, error) {
	var response mpdomain.CardsResponse
	if err := c.do(ctx, apiKey, http.MethodPost, join(c.cfg.ContentURL, cardsListPath), req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MarketplaceClient) GetAdverts(ctx context.Context, apiKey string) ([]mpdomain.Advert, error) {
	var response []mpdomain.Advert
	if err := c.do(ctx, apiKey, http.MethodGet, join(c.cfg.AdvertURL, advertsPath), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *MarketplaceClient) GetAdvertStats(ctx context.Context, apiKey string, req []mpdomain.AdvertStatsRequest) ([]mpdomain.AdvertStats, error) {
	var response []mpdomain.AdvertStats
	if err := c.do(ctx, apiKey, http.MethodPost, join(c.cfg.AdvertURL, advertStatsPath), req, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *MarketplaceClient) GetFunnelHistory(ctx context.Context, apiKey string, req mpdomain.FunnelRequest) (*mpdomain.FunnelResponse, error) {
	var response mpdomain.FunnelResponse
	if err := c.do(ctx, apiKey, http.MethodPost, join(c.cfg.AnalyticsURL, funnelHistoryPath), req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MarketplaceClient) GetWarehouses(ctx context.Context, apiKey string) ([]mpdomain.Warehouse, error) {
	var response []mpdomain.Warehouse
	if err := c.do(ctx, apiKey, http.MethodGet, join(c.cfg.SuppliesURL, warehousesPath), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}
