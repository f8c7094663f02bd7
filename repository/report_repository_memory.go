package repository

import (
	"context"
	"sync"

	"brrrr-calculator/domain"
)

// ReportRepositoryMemory keeps the reports generated by the current run.
type ReportRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.GeneratedReport
}

// NewReportRepositoryMemory creates a new in-memory report repository.
func NewReportRepositoryMemory() *ReportRepositoryMemory {
	return &ReportRepositoryMemory{
		data: []domain.GeneratedReport{},
	}
}

// Save appends the report to the log.
func (r *ReportRepositoryMemory) Save(_ context.Context, report domain.GeneratedReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, report)
	return nil
}

// List returns the reports in the order they were saved.
func (r *ReportRepositoryMemory) List(_ context.Context) ([]domain.GeneratedReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.GeneratedReport, len(r.data))
	copy(out, r.data)
	return out, nil
}
