package mpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	mpdomain "github.com/vfg2006/seller-analytics-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita quanto do corpo de erro é lido para o log
const maxErrorBody = 4 << 10

type Client interface {
	GetCards(ctx context.Context, apiKey string, req mpdomain.CardsRequest) (*mpdomain.CardsResponse, error)
	GetAdverts(ctx context.Context, apiKey string) ([]mpdomain.Advert, error)
	GetAdvertStats(ctx context.Context, apiKey string, req []mpdomain.AdvertStatsRequest) ([]mpdomain.AdvertStats, error)
	GetFunnelHistory(ctx context.Context, apiKey string, req mpdomain.FunnelRequest) (*mpdomain.FunnelResponse, error)
	GetWarehouses(ctx context.Context, apiKey string) ([]mpdomain.Warehouse, error)
}

type MarketplaceClient struct {
	httpClient *http.Client
	cfg        config.Marketplace

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	return newClient(cfg.Marketplace, &http.Client{Timeout: cfg.Marketplace.Timeout})
}

func newClient(cfg config.Marketplace, httpClient *http.Client) *MarketplaceClient {
	return &MarketplaceClient{
		httpClient: httpClient,
		cfg:        cfg,
		limiters:   make(map[string]*rate.Limiter),
	}
}

// getLimiter devolve o token bucket da chave de API. A cota do marketplace é por vendedor.
func (c *MarketplaceClient) getLimiter(apiKey string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limiter, exists := c.limiters[apiKey]
	if !exists {
		limit := rate.Inf
		if c.cfg.RequestsPerSecond > 0 {
			limit = rate.Limit(c.cfg.RequestsPerSecond)
		}
		limiter = rate.NewLimiter(limit, c.cfg.Burst)
		c.limiters[apiKey] = limiter
	}

	return limiter
}

func (c *MarketplaceClient) do(ctx context.Context, apiKey, method, endpoint string, body, out any) error {
	if err := c.getLimiter(apiKey).Wait(ctx); err != nil {
		return errors.Wrap(err, "aguardando limite de requisições")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao executar a requisição %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleErrorResponse(endpoint, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta de %s", endpoint)
	}

	return nil
}

func (c *MarketplaceClient) handleErrorResponse(endpoint string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &mpdomain.APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	_ = json.Unmarshal(raw, &apiErr.Response)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		apiErr.Err = mpdomain.ErrUnauthorized
	case http.StatusTooManyRequests:
		apiErr.Err = mpdomain.ErrRateLimited
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":    endpoint,
		"status_code": resp.StatusCode,
	}).Debugf("Resposta de erro do marketplace: %s", string(raw))

	return apiErr
}
