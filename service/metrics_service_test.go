package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brrrr-calculator/domain"
)

type MockCache struct {
	Data     map[string]string
	Gets     int
	Sets     int
	ForceErr bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.Gets++
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(_ context.Context, key, value string) error {
	m.Sets++
	if m.ForceErr {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got), msgAndArgs...)
	}
}

func TestComputeMetrics_Sample(t *testing.T) {
	m, err := ComputeMetrics(domain.SampleProperty())
	require.NoError(t, err)

	assertDecimal(t, "1050000", m.PurchasePrice)
	assertDecimal(t, "210000", m.DownPayment)
	assertDecimal(t, "840000", m.MortgageAmount)
	assertDecimal(t, "2380", m.MonthlyPayment)
	assertDecimal(t, "19040", m.CarryingCost)
	assertDecimal(t, "378040", m.TotalCost)
	assertDecimal(t, "3550", m.RentalIncome)
	assertDecimal(t, "2192", m.TotalExpenses)
	assertDecimal(t, "1358", m.MonthlyCashflow)
	assertDecimal(t, "16296", m.YearlyCashflow)
	assertDecimal(t, "1080000", m.RefinanceAmount)
	assertDecimal(t, "240000", m.CashPulledOut)
	assert.InDelta(t, 4.3106, m.ROI.InexactFloat64(), 0.0001)

	assertDecimal(t, "136000", m.RehabTotal)
	assertDecimal(t, "367000", m.UpfrontInvestment)
	assertDecimal(t, "127000", m.MoneyLeftInProperty)
	assert.InDelta(t, 12.0952, m.Leverage.InexactFloat64(), 0.0001)
	assertDecimal(t, "164000", m.NetValueIncrease)

	assert.InDelta(t, 4789.60, m.RefinanceMonthlyPayment.InexactFloat64(), 0.01)
}

func TestComputeMetrics_Schedules(t *testing.T) {
	m, err := ComputeMetrics(domain.SampleProperty())
	require.NoError(t, err)

	require.Len(t, m.Amortization, 5)
	for _, row := range m.Amortization {
		// interest-only: a year of interest equals a year of payments
		assertDecimal(t, "28560", row.Payment)
		assert.True(t, row.Principal.IsZero(), "year %d", row.Year)
		assertDecimal(t, "840000", row.Balance)
	}

	require.Len(t, m.RefinanceSchedule, 5)
	prev := m.RefinanceAmount
	paid := decimal.Zero
	for i, row := range m.RefinanceSchedule {
		assert.Equal(t, i+1, row.Year)
		assert.True(t, row.Balance.LessThan(prev))
		assert.True(t, row.Principal.Add(row.Interest).Equal(row.Payment))
		paid = paid.Add(row.Principal)
		prev = row.Balance
	}
	assert.True(t, paid.Equal(m.MortgagePaydown))
	assert.True(t, m.MortgagePaydown.IsPositive())

	last := m.FutureValues[len(m.FutureValues)-1]
	assert.True(t, last.Value.Sub(prev).Equal(m.Equity))
}

func TestComputeMetrics_FutureValues(t *testing.T) {
	m, err := ComputeMetrics(domain.SampleProperty())
	require.NoError(t, err)

	require.Len(t, m.FutureValues, 6)
	assert.Equal(t, 0, m.FutureValues[0].Year)
	assertDecimal(t, "1350000", m.FutureValues[0].Value)
	assertDecimal(t, "1983592.90368", m.FutureValues[5].Value)
	for i := 1; i < len(m.FutureValues); i++ {
		assert.True(t, m.FutureValues[i].Value.GreaterThan(m.FutureValues[i-1].Value))
	}
}

func TestComputeMetrics_NoAppreciation(t *testing.T) {
	input := domain.SampleProperty()
	input.AppreciationRate = decimal.Zero

	m, err := ComputeMetrics(input)
	require.NoError(t, err)

	require.Len(t, m.FutureValues, 6)
	for _, fv := range m.FutureValues {
		assertDecimal(t, "1350000", fv.Value, "year %d", fv.Year)
	}
}

func TestComputeMetrics_HorizonBeyondRefinanceTerm(t *testing.T) {
	input := domain.SampleProperty()
	input.AmortizationYears = 35

	m, err := ComputeMetrics(input)
	require.NoError(t, err)

	require.Len(t, m.FutureValues, 36)
	require.Len(t, m.RefinanceSchedule, 35)

	payoff := m.RefinanceSchedule[29]
	assert.True(t, payoff.Balance.IsZero())
	assert.True(t, payoff.Payment.Equal(m.RefinanceMonthlyPayment.Mul(decimal.NewFromInt(12))))
	for _, row := range m.RefinanceSchedule[30:] {
		assert.True(t, row.Payment.IsZero(), "year %d", row.Year)
		assert.True(t, row.Principal.IsZero(), "year %d", row.Year)
		assert.True(t, row.Interest.IsZero(), "year %d", row.Year)
		assert.True(t, row.Balance.IsZero(), "year %d", row.Year)
	}

	assert.True(t, m.MortgagePaydown.Equal(m.RefinanceAmount))
	assert.True(t, m.Equity.Equal(m.FutureValues[35].Value))
}

func TestComputeMetrics_ExplicitRefinanceRate(t *testing.T) {
	input := domain.SampleProperty()
	input.InterestRate = dec("5")
	input.RefinanceRate = decimal.NewNullDecimal(decimal.Zero)

	m, err := ComputeMetrics(input)
	require.NoError(t, err)
	assertDecimal(t, "3000", m.RefinanceMonthlyPayment)

	input.RefinanceRate = decimal.NullDecimal{}
	m, err = ComputeMetrics(input)
	require.NoError(t, err)
	assert.InDelta(t, 5797.67, m.RefinanceMonthlyPayment.InexactFloat64(), 0.01)
}

func TestComputeMetrics_LineItemOrderDoesNotMatter(t *testing.T) {
	input := domain.SampleProperty()
	reversed := domain.SampleProperty()
	slices.Reverse(reversed.RentIncome)
	slices.Reverse(reversed.OperatingExpenses)

	a, err := ComputeMetrics(input)
	require.NoError(t, err)
	b, err := ComputeMetrics(reversed)
	require.NoError(t, err)

	assert.True(t, a.RentalIncome.Equal(b.RentalIncome))
	assert.True(t, a.TotalExpenses.Equal(b.TotalExpenses))
	assert.True(t, a.ROI.Equal(b.ROI))
}

func TestComputeMetrics_NegativeCashPulledOut(t *testing.T) {
	input := domain.SampleProperty()
	input.PostRenoValue = dec("500000")

	m, err := ComputeMetrics(input)
	require.NoError(t, err)
	assertDecimal(t, "-440000", m.CashPulledOut)
}

func TestComputeMetrics_ZeroTotalCost(t *testing.T) {
	input := domain.SampleProperty()
	input.DownPaymentPercent = decimal.Zero
	input.ClosingCost = decimal.Zero
	input.RenovationCost = decimal.Zero
	input.CarryingCostMonths = 0

	_, err := ComputeMetrics(input)
	assert.ErrorIs(t, err, ErrZeroTotalCost)
}

func TestComputeMetrics_ZeroRefinanceRate(t *testing.T) {
	input := domain.SampleProperty()
	input.InterestRate = decimal.Zero

	m, err := ComputeMetrics(input)
	require.NoError(t, err)
	assertDecimal(t, "0", m.MonthlyPayment)
	assertDecimal(t, "3000", m.RefinanceMonthlyPayment)
	assertDecimal(t, "180000", m.MortgagePaydown)
}

func TestValidateProperty(t *testing.T) {
	cases := map[string]func(*domain.PropertyInput){
		"zero price":              func(p *domain.PropertyInput) { p.PurchasePrice = decimal.Zero },
		"price above limit":       func(p *domain.PropertyInput) { p.PurchasePrice = decimal.NewFromInt(MaxPurchasePrice + 1) },
		"down payment over 100":   func(p *domain.PropertyInput) { p.DownPaymentPercent = dec("101") },
		"negative rate":           func(p *domain.PropertyInput) { p.InterestRate = dec("-1") },
		"negative closing":        func(p *domain.PropertyInput) { p.ClosingCost = dec("-1") },
		"negative line item":      func(p *domain.PropertyInput) { p.OperatingExpenses[0].Amount = dec("-5") },
		"carrying months":         func(p *domain.PropertyInput) { p.CarryingCostMonths = -1 },
		"amortization too long":   func(p *domain.PropertyInput) { p.AmortizationYears = MaxAmortizationYears + 1 },
		"refinance term too long": func(p *domain.PropertyInput) { p.RefinanceAmortizationYears = MaxRefinanceTermYears + 1 },
		"refinance rate over max": func(p *domain.PropertyInput) { p.RefinanceRate = decimal.NewNullDecimal(dec("101")) },
		"appreciation below -100": func(p *domain.PropertyInput) { p.AppreciationRate = dec("-100") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := domain.SampleProperty()
			mutate(&input)
			assert.ErrorIs(t, ValidateProperty(input), ErrInvalidInput)
		})
	}

	assert.NoError(t, ValidateProperty(domain.SampleProperty()))
}

func TestCalculate_UsesCache(t *testing.T) {
	cache := NewMockCache()
	svc := NewMetricsService(cache, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Calculate(ctx, domain.SampleProperty())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Sets)
	require.Len(t, cache.Data, 1)

	second, err := svc.Calculate(ctx, domain.SampleProperty())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Sets, "second call must be served from cache")
	assert.True(t, first.ROI.Equal(second.ROI))
	assert.True(t, first.Equity.Equal(second.Equity))
	assert.Len(t, second.FutureValues, len(first.FutureValues))
}

func TestCalculate_CacheFailuresAreNotFatal(t *testing.T) {
	cache := NewMockCache()
	cache.ForceErr = true
	svc := NewMetricsService(cache, zap.NewNop())

	m, err := svc.Calculate(context.Background(), domain.SampleProperty())
	require.NoError(t, err)
	assertDecimal(t, "240000", m.CashPulledOut)
}

func TestCalculate_DiscardsCorruptEntry(t *testing.T) {
	cache := NewMockCache()
	svc := NewMetricsService(cache, zap.NewNop())

	fp, err := Fingerprint(domain.SampleProperty())
	require.NoError(t, err)
	cache.Data[metricsCacheKey+fp] = "{not json"

	m, err := svc.Calculate(context.Background(), domain.SampleProperty())
	require.NoError(t, err)
	assertDecimal(t, "1358", m.MonthlyCashflow)
	assert.Equal(t, 1, cache.Sets)
}

func TestCalculate_InvalidInputIsNotCached(t *testing.T) {
	cache := NewMockCache()
	svc := NewMetricsService(cache, zap.NewNop())

	input := domain.SampleProperty()
	input.PurchasePrice = decimal.Zero

	_, err := svc.Calculate(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, cache.Data)
}
