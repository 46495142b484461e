package mpdomain

import "time"

// Advert é uma campanha como devolvida pela API de publicidade. Status e Type são códigos numéricos.
type Advert struct {
	AdvertID   int64     `json:"advertId"`
	Name       string    `json:"name"`
	Type       int       `json:"type"`
	Status     int       `json:"status"`
	ChangeTime time.Time `json:"changeTime"`
	NmIDs      []int64   `json:"nms"`
}

type AdvertStatsRequest struct {
	ID       int64    `json:"id"`
	Interval Interval `json:"interval"`
}

type Interval struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

type AdvertStats struct {
	AdvertID int64            `json:"advertId"`
	Days     []AdvertStatsDay `json:"days"`
}

type AdvertStatsDay struct {
	Date time.Time       `json:"date"`
	Nms  []AdvertStatsNm `json:"nm"`
}

type AdvertStatsNm struct {
	NmID   int64   `json:"nmId"`
	Views  int64   `json:"views"`
	Clicks int64   `json:"clicks"`
	Sum    float64 `json:"sum"`
}
