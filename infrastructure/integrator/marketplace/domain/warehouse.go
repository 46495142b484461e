package mpdomain

type Warehouse struct {
	ID       int64  `json:"ID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	IsActive bool   `json:"isActive"`
}
