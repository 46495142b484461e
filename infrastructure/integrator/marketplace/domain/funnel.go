package mpdomain

// FunnelRequest consulta o histórico diário do funil de vendas por artigo
type FunnelRequest struct {
	NmIDs    []int64  `json:"nmIDs"`
	Period   Interval `json:"period"`
	Timezone string   `json:"timezone,omitempty"`
}

type FunnelResponse struct {
	Data  []FunnelCard `json:"data"`
	Error bool         `json:"error"`
}

type FunnelCard struct {
	NmID    int64       `json:"nmID"`
	History []FunnelDay `json:"history"`
}

type FunnelDay struct {
	Dt             string  `json:"dt"`
	OpenCardCount  int64   `json:"openCardCount"`
	AddToCartCount int64   `json:"addToCartCount"`
	OrdersCount    int64   `json:"ordersCount"`
	OrdersSumRub   float64 `json:"ordersSumRub"`
}
