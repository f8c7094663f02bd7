package domain

import "github.com/shopspring/decimal"

type AmortizationRow struct {
	Year      int             `json:"year"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

type FutureValue struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

// Metrics is the computed side of a deal. Percent fields (ROI, Leverage)
// are already multiplied by 100.
type Metrics struct {
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	MortgageAmount  decimal.Decimal `json:"mortgage_amount"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	CarryingCost    decimal.Decimal `json:"carrying_cost"`
	ClosingCost     decimal.Decimal `json:"closing_cost"`
	RenovationCost  decimal.Decimal `json:"renovation_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	RentalIncome    decimal.Decimal `json:"rental_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	MonthlyCashflow decimal.Decimal `json:"monthly_cashflow"`
	YearlyCashflow  decimal.Decimal `json:"yearly_cashflow"`
	RefinanceAmount decimal.Decimal `json:"refinance_amount"`
	CashPulledOut   decimal.Decimal `json:"cash_pulled_out"`
	ROI             decimal.Decimal `json:"roi"`

	RehabTotal          decimal.Decimal `json:"rehab_total"`
	UpfrontInvestment   decimal.Decimal `json:"upfront_investment"`
	MoneyLeftInProperty decimal.Decimal `json:"money_left_in_property"`
	Leverage            decimal.Decimal `json:"leverage"`
	NetValueIncrease    decimal.Decimal `json:"net_value_increase"`

	RefinanceMonthlyPayment decimal.Decimal `json:"refinance_monthly_payment"`
	MortgagePaydown         decimal.Decimal `json:"mortgage_paydown"`
	Equity                  decimal.Decimal `json:"equity"`

	FutureValues      []FutureValue     `json:"future_values"`
	Amortization      []AmortizationRow `json:"amortization"`
	RefinanceSchedule []AmortizationRow `json:"refinance_schedule"`
}
