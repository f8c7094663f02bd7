package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"brrrr-calculator/domain"
	"brrrr-calculator/repository"
	"brrrr-calculator/sheet"
)

type ReportOptions struct {
	OutputDir   string
	ColumnWidth float64
}

// ReportService turns the built-in deal into spreadsheet files.
type ReportService struct {
	metrics    *MetricsService
	strategies *StrategyService
	repo       repository.ReportRepository
	logger     *zap.Logger
	opts       ReportOptions

	property      domain.PropertyInput
	strategyInput domain.StrategyInput
	now           func() time.Time
}

func NewReportService(
	metrics *MetricsService,
	strategies *StrategyService,
	repo repository.ReportRepository,
	logger *zap.Logger,
	opts ReportOptions,
) *ReportService {
	return &ReportService{
		metrics:       metrics,
		strategies:    strategies,
		repo:          repo,
		logger:        logger,
		opts:          opts,
		property:      domain.SampleProperty(),
		strategyInput: domain.SampleStrategyInput(),
		now:           time.Now,
	}
}

// WithInputs returns a copy of s generating from the given records.
func (s *ReportService) WithInputs(property domain.PropertyInput, strategyInput domain.StrategyInput) *ReportService {
	c := *s
	c.property = property
	c.strategyInput = strategyInput
	return &c
}

// BuildReport computes everything the layouts render.
func (s *ReportService) BuildReport(ctx context.Context) (domain.Report, error) {
	metrics, err := s.metrics.Calculate(ctx, s.property)
	if err != nil {
		return domain.Report{}, fmt.Errorf("calculate metrics: %w", err)
	}
	strategies, err := s.strategies.Analyze(ctx, s.strategyInput)
	if err != nil {
		return domain.Report{}, fmt.Errorf("analyze strategies: %w", err)
	}
	return domain.Report{
		Property:      s.property,
		Metrics:       metrics,
		StrategyInput: s.strategyInput,
		Strategies:    strategies,
	}, nil
}

// Generate writes the named layout, overwriting a previous file.
func (s *ReportService) Generate(ctx context.Context, name string) (domain.GeneratedReport, error) {
	layout, ok := sheet.Lookup(name)
	if !ok {
		return domain.GeneratedReport{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	report, err := s.BuildReport(ctx)
	if err != nil {
		return domain.GeneratedReport{}, err
	}
	return s.write(ctx, layout, report)
}

// GenerateAll writes every layout from one computation of the report.
func (s *ReportService) GenerateAll(ctx context.Context) ([]domain.GeneratedReport, error) {
	report, err := s.BuildReport(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.GeneratedReport
	for _, layout := range sheet.Layouts() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		generated, err := s.write(ctx, layout, report)
		if err != nil {
			return out, err
		}
		out = append(out, generated)
	}
	return out, nil
}

// Reports lists what this service has generated.
func (s *ReportService) Reports(ctx context.Context) ([]domain.GeneratedReport, error) {
	return s.repo.List(ctx)
}

func (s *ReportService) write(ctx context.Context, layout sheet.Layout, report domain.Report) (domain.GeneratedReport, error) {
	path := filepath.Join(s.opts.OutputDir, layout.FileName)
	if err := sheet.Save(layout.Build(report), path, sheet.Options{ColumnWidth: s.opts.ColumnWidth}); err != nil {
		return domain.GeneratedReport{}, fmt.Errorf("generate %s: %w", layout.Name, err)
	}

	fingerprint, err := Fingerprint([]any{report.Property, report.StrategyInput})
	if err != nil {
		return domain.GeneratedReport{}, err
	}
	generated := domain.GeneratedReport{
		ID:          uuid.NewString(),
		Layout:      layout.Name,
		Path:        path,
		Fingerprint: fingerprint,
		CreatedAt:   s.now(),
	}

	// Not critical: the file is already on disk.
	if err := s.repo.Save(ctx, generated); err != nil {
		s.logger.Warn("failed to record generated report", zap.String("layout", layout.Name), zap.Error(err))
	}

	s.logger.Info("spreadsheet created",
		zap.String("id", generated.ID),
		zap.String("layout", layout.Name),
		zap.String("path", path),
	)
	return generated, nil
}
