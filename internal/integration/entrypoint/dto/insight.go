package dto

// InsightResponse represents a generated spending insight. Generated reports
// whether the text came from the provider rather than the static fallback.
type InsightResponse struct {
	Insight   string `json:"insight"`
	Generated bool   `json:"generated"`
}
