package repository

import (
	"context"

	"brrrr-calculator/domain"
)

type ReportRepository interface {
	Save(ctx context.Context, report domain.GeneratedReport) error
	List(ctx context.Context) ([]domain.GeneratedReport, error)
}
