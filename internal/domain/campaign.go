package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownCampaignStatus = errors.New("unknown campaign status code")
	ErrUnknownCampaignType   = errors.New("unknown campaign type code")
)

type CampaignStatus string

const (
	CampaignStatusDeleted   CampaignStatus = "DELETED"
	CampaignStatusReady     CampaignStatus = "READY"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusDeclined  CampaignStatus = "DECLINED"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
)

// códigos numéricos da API do marketplace
var campaignStatusByCode = map[int]CampaignStatus{
	-1: CampaignStatusDeleted,
	4:  CampaignStatusReady,
	7:  CampaignStatusCompleted,
	8:  CampaignStatusDeclined,
	9:  CampaignStatusActive,
	11: CampaignStatusPaused,
}

func ParseCampaignStatus(code int) (CampaignStatus, error) {
	status, ok := campaignStatusByCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownCampaignStatus, code)
	}
	return status, nil
}

func (s CampaignStatus) Code() (int, error) {
	for code, status := range campaignStatusByCode {
		if status == s {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCampaignStatus, string(s))
}

type CampaignType string

const (
	CampaignTypeCatalog         CampaignType = "CATALOG"
	CampaignTypeCard            CampaignType = "CARD"
	CampaignTypeSearch          CampaignType = "SEARCH"
	CampaignTypeRecommendations CampaignType = "RECOMMENDATIONS"
	CampaignTypeAuto            CampaignType = "AUTO"
	CampaignTypeSearchCatalog   CampaignType = "SEARCH_CATALOG"
)

var campaignTypeByCode = map[int]CampaignType{
	4: CampaignTypeCatalog,
	5: CampaignTypeCard,
	6: CampaignTypeSearch,
	7: CampaignTypeRecommendations,
	8: CampaignTypeAuto,
	9: CampaignTypeSearchCatalog,
}

func ParseCampaignType(code int) (CampaignType, error) {
	campaignType, ok := campaignTypeByCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownCampaignType, code)
	}
	return campaignType, nil
}

func (t CampaignType) Code() (int, error) {
	for code, campaignType := range campaignTypeByCode {
		if campaignType == t {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCampaignType, string(t))
}

// Campaign é uma campanha de publicidade do vendedor
type Campaign struct {
	ExternalID int64          `json:"external_id"`
	Name       string         `json:"name"`
	Status     CampaignStatus `json:"status"`
	Type       CampaignType   `json:"type"`
	ArticleIDs []int64        `json:"article_ids"`
	ChangedAt  *time.Time     `json:"changed_at"`
}

// Card é o cartão de produto (artigo) publicado no marketplace
type Card struct {
	ArticleID  int64     `json:"article_id"`
	VendorCode string    `json:"vendor_code"`
	Title      string    `json:"title"`
	Brand      string    `json:"brand"`
	Subject    string    `json:"subject"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Warehouse é um armazém do marketplace disponível para o vendedor
type Warehouse struct {
	ExternalID int64  `json:"external_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	IsActive   bool   `json:"is_active"`
}
