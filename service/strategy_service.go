package service

import (
	"context"

	"github.com/shopspring/decimal"

	"brrrr-calculator/domain"
)

type StrategyService struct{}

func NewStrategyService() *StrategyService {
	return &StrategyService{}
}

// Analyze computes the metrics of every strategy for the same input. All
// strategies assume an interest-only mortgage; only BRR strategies report
// an equity gain.
func (s *StrategyService) Analyze(ctx context.Context, input domain.StrategyInput) ([]domain.StrategyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !input.PurchasePrice.IsPositive() {
		return nil, invalid("purchase price must be positive")
	}
	investment := input.Deposit.Add(input.RefurbishmentCost)
	if !investment.IsPositive() {
		return nil, invalid("deposit plus refurbishment cost must be positive")
	}
	if err := checkPercent("LTV", input.LTV, 100); err != nil {
		return nil, err
	}
	if err := checkPercent("mortgage interest rate", input.MortgageInterestRate, MaxInterestRate); err != nil {
		return nil, err
	}

	strategies := domain.Strategies()
	results := make([]domain.StrategyResult, 0, len(strategies))
	for _, strategy := range strategies {
		results = append(results, domain.StrategyResult{
			Strategy: strategy,
			Metrics:  strategyMetrics(strategy, input, investment),
		})
	}
	return results, nil
}

func strategyMetrics(strategy domain.Strategy, input domain.StrategyInput, investment decimal.Decimal) domain.StrategyMetrics {
	loan := input.PurchasePrice.Mul(input.LTV).Div(hundred)
	mortgagePayment := interestOnlyPayment(loan, input.MortgageInterestRate)

	cashFlow := input.RentIncome.Sub(mortgagePayment.Add(input.Expenses))
	annualCashFlow := cashFlow.Mul(twelve)

	metrics := domain.StrategyMetrics{
		MonthlyCashFlow: cashFlow,
		ROI:             annualCashFlow.Mul(hundred).Div(investment),
		GrossYield:      input.RentIncome.Mul(twelve).Mul(hundred).Div(input.PurchasePrice),
		NetYield:        annualCashFlow.Mul(hundred).Div(input.PurchasePrice),
	}

	if strategy.Acquisition == domain.BRR {
		arv := input.AfterRefurbishmentValue
		if arv.IsZero() {
			arv = input.PurchasePrice
		}
		gain := arv.Sub(loan.Add(input.RefurbishmentCost))
		metrics.EquityGain = &gain
	}
	return metrics
}
