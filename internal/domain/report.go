package domain

// PeriodRequest é o período como chega na API, com datas no formato 2006-01-02
type PeriodRequest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type ReportSummaryRequest struct {
	Periods            []PeriodRequest `json:"periods"`
	ExcludedArticleIDs []int64         `json:"excluded_article_ids"`
}

type MetricSeriesRequest struct {
	Metric     string          `json:"metric"`
	Periods    []PeriodRequest `json:"periods"`
	ArticleIDs []int64         `json:"article_ids"`
}

type MetricSeriesResponse struct {
	Metric  MetricKey       `json:"metric"`
	Periods []Period        `json:"periods"`
	Series  []ArticleSeries `json:"series"`
}

type SyncResponse struct {
	Message     string `json:"message"`
	WorkspaceID string `json:"workspace_id,omitempty"`
}
