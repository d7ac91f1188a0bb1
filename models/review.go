package models

// Review is a single guest review proxied from the supplier.
type Review struct {
	Name     string  `json:"name,omitempty"`
	Country  string  `json:"country,omitempty"`
	Date     string  `json:"date,omitempty"`
	Rating   float64 `json:"rating"`
	Headline string  `json:"headline,omitempty"`
	Pros     string  `json:"pros,omitempty"`
	Cons     string  `json:"cons,omitempty"`
}

// SentimentAnalysis is the supplier's aggregate review sentiment.
type SentimentAnalysis struct {
	Score      float64  `json:"score,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// ReviewPage is one page of reviews plus the optional sentiment block.
type ReviewPage struct {
	Data      []Review           `json:"data"`
	Total     int                `json:"total"`
	Sentiment *SentimentAnalysis `json:"sentimentAnalysis,omitempty"`
}
