package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"brrrr-calculator/domain"
	"brrrr-calculator/repository"
	"brrrr-calculator/sheet"
)

type MockReportRepository struct {
	Saved      []domain.GeneratedReport
	ForceError bool
}

func (m *MockReportRepository) Save(_ context.Context, r domain.GeneratedReport) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, r)
	return nil
}

func (m *MockReportRepository) List(context.Context) ([]domain.GeneratedReport, error) {
	return m.Saved, nil
}

func newTestReportService(t *testing.T, repo repository.ReportRepository) (*ReportService, string) {
	t.Helper()
	dir := t.TempDir()
	svc := NewReportService(
		NewMetricsService(NewMockCache(), zap.NewNop()),
		NewStrategyService(),
		repo,
		zap.NewNop(),
		ReportOptions{OutputDir: dir},
	)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, dir
}

func TestGenerateAll_WritesEveryLayout(t *testing.T) {
	repo := &MockReportRepository{}
	svc, dir := newTestReportService(t, repo)

	generated, err := svc.GenerateAll(context.Background())
	require.NoError(t, err)
	require.Len(t, generated, len(sheet.Layouts()))

	for i, l := range sheet.Layouts() {
		g := generated[i]
		assert.Equal(t, l.Name, g.Layout)
		assert.Equal(t, filepath.Join(dir, l.FileName), g.Path)
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, generated[0].Fingerprint, g.Fingerprint)

		_, err := os.Stat(g.Path)
		assert.NoError(t, err, l.Name)
	}

	listed, err := svc.Reports(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, len(generated))
}

func TestGenerate_UnknownLayout(t *testing.T) {
	svc, dir := newTestReportService(t, &MockReportRepository{})

	_, err := svc.Generate(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrUnknownLayout)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_RepositoryFailureIsNotFatal(t *testing.T) {
	svc, dir := newTestReportService(t, &MockReportRepository{ForceError: true})

	g, err := svc.Generate(context.Background(), "values")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "BRRRR_Property_Calculator.xlsx"), g.Path)
}

func TestGenerate_InvalidInput(t *testing.T) {
	svc, _ := newTestReportService(t, &MockReportRepository{})
	input := domain.SampleProperty()
	input.PurchasePrice = input.PurchasePrice.Neg()

	_, err := svc.WithInputs(input, domain.SampleStrategyInput()).Generate(context.Background(), "values")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerate_Deterministic(t *testing.T) {
	first, _ := newTestReportService(t, &MockReportRepository{})
	second, _ := newTestReportService(t, &MockReportRepository{})

	for _, l := range sheet.Layouts() {
		a, err := first.Generate(context.Background(), l.Name)
		require.NoError(t, err)
		b, err := second.Generate(context.Background(), l.Name)
		require.NoError(t, err)

		assert.Equal(t, a.Fingerprint, b.Fingerprint)
		assert.Equal(t, readCells(t, a.Path), readCells(t, b.Path), l.Name)
	}
}

func TestGenerate_Overwrites(t *testing.T) {
	svc, _ := newTestReportService(t, &MockReportRepository{})

	a, err := svc.Generate(context.Background(), "summary")
	require.NoError(t, err)
	b, err := svc.Generate(context.Background(), "summary")
	require.NoError(t, err)

	assert.Equal(t, a.Path, b.Path)
	assert.NotEqual(t, a.ID, b.ID)
}

// readCells returns every sheet's values and formulas.
func readCells(t *testing.T, path string) map[string][][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	out := make(map[string][][]string)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		require.NoError(t, err)
		for r, row := range rows {
			for c := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				formula, err := f.GetCellFormula(name, cell)
				require.NoError(t, err)
				if formula != "" {
					row[c] = "=" + formula
				}
			}
		}
		out[name] = rows
	}
	return out
}
