package domain

import "github.com/shopspring/decimal"

type Acquisition string

const (
	Turnkey Acquisition = "Turnkey"
	BRR     Acquisition = "BRR"
)

type Letting string

const (
	BTL Letting = "BTL" // buy to let
	HMO Letting = "HMO" // house in multiple occupation
	SA  Letting = "SA"  // serviced accommodation
)

type Strategy struct {
	Acquisition Acquisition `json:"acquisition"`
	Letting     Letting     `json:"letting"`
}

func (s Strategy) Name() string {
	return string(s.Acquisition) + " " + string(s.Letting)
}

// Strategies lists every analyzed strategy in sheet order.
func Strategies() []Strategy {
	var out []Strategy
	for _, acquisition := range []Acquisition{Turnkey, BRR} {
		for _, letting := range []Letting{BTL, HMO, SA} {
			out = append(out, Strategy{Acquisition: acquisition, Letting: letting})
		}
	}
	return out
}

// StrategyInput is the flat record compared across strategies. LTV and
// MortgageInterestRate are percents.
type StrategyInput struct {
	PurchasePrice           decimal.Decimal `json:"purchase_price"`
	Deposit                 decimal.Decimal `json:"deposit"`
	LTV                     decimal.Decimal `json:"ltv"`
	MortgageInterestRate    decimal.Decimal `json:"mortgage_interest_rate"`
	RentIncome              decimal.Decimal `json:"rent_income"`
	Expenses                decimal.Decimal `json:"expenses"`
	RefurbishmentCost       decimal.Decimal `json:"refurbishment_cost"`
	AfterRefurbishmentValue decimal.Decimal `json:"after_refurbishment_value"`
}

type StrategyMetrics struct {
	MonthlyCashFlow decimal.Decimal `json:"monthly_cash_flow"`
	ROI             decimal.Decimal `json:"roi"`
	GrossYield      decimal.Decimal `json:"gross_yield"`
	NetYield        decimal.Decimal `json:"net_yield"`
	// EquityGain is only set for BRR strategies.
	EquityGain *decimal.Decimal `json:"equity_gain,omitempty"`
}

type StrategyResult struct {
	Strategy Strategy        `json:"strategy"`
	Metrics  StrategyMetrics `json:"metrics"`
}
