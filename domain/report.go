package domain

import "time"

// Report is everything a layout can render.
type Report struct {
	Property      PropertyInput
	Metrics       Metrics
	StrategyInput StrategyInput
	Strategies    []StrategyResult
}

// GeneratedReport records one spreadsheet written to disk.
type GeneratedReport struct {
	ID          string    `json:"id"`
	Layout      string    `json:"layout"`
	Path        string    `json:"path"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}
