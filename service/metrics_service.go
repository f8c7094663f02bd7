package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"brrrr-calculator/domain"
	"brrrr-calculator/repository"
)

type MetricsService struct {
	cache  repository.CacheRepository
	logger *zap.Logger
}

// NewMetricsService creates a MetricsService backed by the given cache.
func NewMetricsService(cache repository.CacheRepository, logger *zap.Logger) *MetricsService {
	return &MetricsService{cache: cache, logger: logger}
}

// Calculate returns the metrics of input, serving repeated inputs from the
// cache. Cache failures only cost a recomputation.
func (s *MetricsService) Calculate(ctx context.Context, input domain.PropertyInput) (domain.Metrics, error) {
	fingerprint, err := Fingerprint(input)
	if err != nil {
		return domain.Metrics{}, err
	}
	key := metricsCacheKey + fingerprint

	if cached, ok := s.cache.Get(ctx, key); ok {
		var metrics domain.Metrics
		if err := json.Unmarshal([]byte(cached), &metrics); err == nil {
			s.logger.Debug("metrics served from cache", zap.String("fingerprint", fingerprint))
			return metrics, nil
		}
		s.logger.Warn("discarding unreadable cached metrics", zap.String("fingerprint", fingerprint))
	}

	metrics, err := ComputeMetrics(input)
	if err != nil {
		return domain.Metrics{}, err
	}

	data, err := json.Marshal(metrics)
	if err != nil {
		s.logger.Warn("failed to encode metrics for cache", zap.Error(err))
		return metrics, nil
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn("failed to cache metrics", zap.String("fingerprint", fingerprint), zap.Error(err))
	}
	return metrics, nil
}

// ComputeMetrics runs the BRRRR arithmetic on a validated input.
func ComputeMetrics(input domain.PropertyInput) (domain.Metrics, error) {
	if err := ValidateProperty(input); err != nil {
		return domain.Metrics{}, err
	}

	price := input.PurchasePrice
	downPayment := price.Mul(input.DownPaymentPercent).Div(hundred)
	mortgage := price.Sub(downPayment)
	monthlyPayment := interestOnlyPayment(mortgage, input.InterestRate)
	carryingCost := monthlyPayment.Mul(decimal.NewFromInt(int64(input.CarryingCostMonths)))
	totalCost := downPayment.Add(input.ClosingCost).Add(input.RenovationCost).Add(carryingCost)
	if totalCost.IsZero() {
		return domain.Metrics{}, ErrZeroTotalCost
	}

	income := domain.SumLineItems(input.RentIncome)
	expenses := domain.SumLineItems(input.OperatingExpenses)
	cashflow := income.Sub(expenses)
	yearlyCashflow := cashflow.Mul(twelve)

	refinanceAmount := input.PostRenoValue.Mul(input.RefinanceLTV).Div(hundred)
	cashPulledOut := refinanceAmount.Sub(mortgage)

	rehabTotal := input.RenovationCost.Add(input.Appliances).Add(input.ConstructionInsurance)
	upfront := downPayment.Add(input.ClosingCost).Add(rehabTotal)
	moneyLeft := upfront.Sub(cashPulledOut)

	refiRate := input.EffectiveRefinanceRate()
	refiMonths := input.EffectiveRefinanceYears() * monthsPerYear
	refiPayment := amortizingPayment(refinanceAmount, refiRate, refiMonths)
	refiSchedule := amortizedSchedule(refinanceAmount, refiRate, refiPayment, refiMonths, input.AmortizationYears)

	future := futureValues(input.PostRenoValue, input.AppreciationRate, input.AmortizationYears)
	refiBalance := refinanceAmount
	if n := len(refiSchedule); n > 0 {
		refiBalance = refiSchedule[n-1].Balance
	}

	return domain.Metrics{
		PurchasePrice:   price,
		DownPayment:     downPayment,
		MortgageAmount:  mortgage,
		MonthlyPayment:  monthlyPayment,
		CarryingCost:    carryingCost,
		ClosingCost:     input.ClosingCost,
		RenovationCost:  input.RenovationCost,
		TotalCost:       totalCost,
		RentalIncome:    income,
		TotalExpenses:   expenses,
		MonthlyCashflow: cashflow,
		YearlyCashflow:  yearlyCashflow,
		RefinanceAmount: refinanceAmount,
		CashPulledOut:   cashPulledOut,
		ROI:             yearlyCashflow.Mul(hundred).Div(totalCost),

		RehabTotal:          rehabTotal,
		UpfrontInvestment:   upfront,
		MoneyLeftInProperty: moneyLeft,
		Leverage:            moneyLeft.Mul(hundred).Div(price),
		NetValueIncrease:    input.PostRenoValue.Sub(price).Sub(rehabTotal),

		RefinanceMonthlyPayment: refiPayment,
		MortgagePaydown:         refinanceAmount.Sub(refiBalance),
		Equity:                  future[len(future)-1].Value.Sub(refiBalance),

		FutureValues:      future,
		Amortization:      naiveSchedule(mortgage, input.InterestRate, monthlyPayment, input.AmortizationYears),
		RefinanceSchedule: refiSchedule,
	}, nil
}

// ValidateProperty rejects inputs the arithmetic has no meaning for.
func ValidateProperty(input domain.PropertyInput) error {
	if !input.PurchasePrice.IsPositive() {
		return invalid("purchase price must be positive")
	}
	if input.PurchasePrice.GreaterThan(decimal.NewFromInt(MaxPurchasePrice)) {
		return invalid(fmt.Sprintf("purchase price exceeds %d", MaxPurchasePrice))
	}
	if err := checkPercent("down payment", input.DownPaymentPercent, 100); err != nil {
		return err
	}
	if err := checkPercent("interest rate", input.InterestRate, MaxInterestRate); err != nil {
		return err
	}
	if err := checkPercent("refinance rate", input.EffectiveRefinanceRate(), MaxInterestRate); err != nil {
		return err
	}
	if err := checkPercent("refinance LTV", input.RefinanceLTV, 100); err != nil {
		return err
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"closing cost", input.ClosingCost},
		{"renovation cost", input.RenovationCost},
		{"appliances", input.Appliances},
		{"construction insurance", input.ConstructionInsurance},
		{"post reno value", input.PostRenoValue},
		{"refinance penalty", input.RefinancePenalty},
		{"lawyer fees", input.LawyerFees},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return invalid(a.name + " must not be negative")
		}
	}
	for _, item := range append(append([]domain.LineItem{}, input.RentIncome...), input.OperatingExpenses...) {
		if item.Amount.IsNegative() {
			return invalid(fmt.Sprintf("line item %q must not be negative", item.Name))
		}
	}

	if input.CarryingCostMonths < 0 || input.CarryingCostMonths > MaxCarryingCostMonths {
		return invalid(fmt.Sprintf("carrying cost months must be between 0 and %d", MaxCarryingCostMonths))
	}
	if input.AmortizationYears < 0 || input.AmortizationYears > MaxAmortizationYears {
		return invalid(fmt.Sprintf("amortization years must be between 0 and %d", MaxAmortizationYears))
	}
	if input.EffectiveRefinanceYears() > MaxRefinanceTermYears {
		return invalid(fmt.Sprintf("refinance term exceeds %d years", MaxRefinanceTermYears))
	}
	if input.AppreciationRate.LessThanOrEqual(hundred.Neg()) {
		return invalid("appreciation rate must be above -100%")
	}
	return nil
}

func checkPercent(name string, value decimal.Decimal, limit int64) error {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(limit)) {
		return invalid(fmt.Sprintf("%s must be between 0 and %d%%", name, limit))
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
