package domain

import "github.com/shopspring/decimal"

// LineItem is one named monthly amount (a rent source or an operating expense).
type LineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SumLineItems returns the total of all items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// PropertyInput holds every parameter of a BRRRR deal. Rates and ratios are
// expressed in percent (20 means 20%).
type PropertyInput struct {
	Address       string `json:"address,omitempty"`
	PropertyType  string `json:"property_type,omitempty"`
	SquareFootage int    `json:"square_footage,omitempty"`
	Units         int    `json:"units,omitempty"`

	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	DownPaymentPercent decimal.Decimal `json:"down_payment_percent"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	ClosingCost        decimal.Decimal `json:"closing_cost"`
	CarryingCostMonths int             `json:"carrying_cost_months"`

	RenovationCost        decimal.Decimal `json:"renovation_cost"`
	Appliances            decimal.Decimal `json:"appliances"`
	ConstructionInsurance decimal.Decimal `json:"construction_insurance"`

	RentIncome        []LineItem `json:"rent_income"`
	OperatingExpenses []LineItem `json:"operating_expenses"`

	PostRenoValue              decimal.Decimal     `json:"post_reno_value"`
	RefinanceLTV               decimal.Decimal     `json:"refinance_ltv"`
	RefinanceRate              decimal.NullDecimal `json:"refinance_rate"`
	RefinanceAmortizationYears int                 `json:"refinance_amortization_years"`
	RefinancePenalty           decimal.Decimal     `json:"refinance_penalty"`
	LawyerFees                 decimal.Decimal     `json:"lawyer_fees"`

	AmortizationYears int             `json:"amortization_years"`
	AppreciationRate  decimal.Decimal `json:"appreciation_rate"`
}

// EffectiveRefinanceRate is the new mortgage rate, falling back to the
// purchase mortgage rate when none is set. An explicit 0 is kept.
func (p PropertyInput) EffectiveRefinanceRate() decimal.Decimal {
	if !p.RefinanceRate.Valid {
		return p.InterestRate
	}
	return p.RefinanceRate.Decimal
}

// EffectiveRefinanceYears is the new mortgage term, 30 years unless set.
func (p PropertyInput) EffectiveRefinanceYears() int {
	if p.RefinanceAmortizationYears <= 0 {
		return DefaultRefinanceAmortizationYears
	}
	return p.RefinanceAmortizationYears
}

const DefaultRefinanceAmortizationYears = 30
