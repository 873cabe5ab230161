package models

// HistoricalPoint is one observation used for charting.
type HistoricalPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Indicator is a single economic indicator with its latest movement.
type Indicator struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Value          float64           `json:"value"`
	Change         float64           `json:"change"`
	ChangePercent  float64           `json:"changePercent"`
	LastUpdated    string            `json:"lastUpdated"`
	Source         string            `json:"source"`
	Description    string            `json:"description,omitempty"`
	HistoricalData []HistoricalPoint `json:"historicalData,omitempty"`
}

// NewsItem is a dashboard news entry.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url,omitempty"`
}

// TodayFeed is the /dashboard/today payload.
type TodayFeed struct {
	MarketStatus string      `json:"marketStatus"`
	LastUpdated  string      `json:"lastUpdated"`
	Indicators   []Indicator `json:"indicators"`
	News         []NewsItem  `json:"news"`
}

// MetricsSummary is the /dashboard/metrics payload.
type MetricsSummary struct {
	MarketStatus string      `json:"marketStatus"`
	LastUpdated  string      `json:"lastUpdated"`
	Metrics      []Indicator `json:"metrics"`
}

// BreakingNews is the /dashboard/breaking payload.
type BreakingNews struct {
	News []NewsItem `json:"news"`
}

// WeeklySummary is the /dashboard/weekly payload.
type WeeklySummary struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	WeekStart  string   `json:"weekStart,omitempty"`
	WeekEnd    string   `json:"weekEnd,omitempty"`
}
