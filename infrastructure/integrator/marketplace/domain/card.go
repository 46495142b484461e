package mpdomain

import "time"

// CardsRequest é o corpo da listagem paginada de cartões
type CardsRequest struct {
	Settings CardsSettings `json:"settings"`
}

type CardsSettings struct {
	Cursor CardsCursor `json:"cursor"`
	Filter CardsFilter `json:"filter"`
}

type CardsCursor struct {
	Limit     int        `json:"limit"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	NmID      int64      `json:"nmID,omitempty"`
	Total     int        `json:"total,omitempty"`
}

type CardsFilter struct {
	WithPhoto int `json:"withPhoto"`
}

type CardsResponse struct {
	Cards  []Card      `json:"cards"`
	Cursor CardsCursor `json:"cursor"`
}

type Card struct {
	NmID        int64     `json:"nmID"`
	VendorCode  string    `json:"vendorCode"`
	Title       string    `json:"title"`
	Brand       string    `json:"brand"`
	SubjectName string    `json:"subjectName"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
