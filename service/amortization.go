package service

import (
	"github.com/shopspring/decimal"

	"brrrr-calculator/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(monthsPerYear)
)

// fraction turns a percent (3.4) into a ratio (0.034).
func fraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// interestOnlyPayment multiplies before dividing so that whole-cent results
// stay exact (840000 at 3.4% is 2380, not 2379.99...).
func interestOnlyPayment(principal, ratePct decimal.Decimal) decimal.Decimal {
	return principal.Mul(ratePct).Div(hundred).Div(twelve)
}

func monthlyRate(ratePct decimal.Decimal) decimal.Decimal {
	return ratePct.Div(hundred.Mul(twelve))
}

// compound returns (1+rate)^periods.
func compound(rate decimal.Decimal, periods int) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(rate)
	result := decimal.NewFromInt(1)
	for i := 0; i < periods; i++ {
		result = result.Mul(base).Round(paymentPrecision)
	}
	return result
}

// amortizingPayment is the level monthly payment that retires principal in
// months payments: P·i / (1 - (1+i)^-n).
func amortizingPayment(principal, annualRatePct decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	if annualRatePct.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(months)))
	}
	i := monthlyRate(annualRatePct)
	x := compound(i, months)
	return principal.Mul(i).Mul(x).Div(x.Sub(decimal.NewFromInt(1)))
}

// remainingBalance is the loan balance after the given number of monthly
// payments.
func remainingBalance(principal, annualRatePct, payment decimal.Decimal, months int) decimal.Decimal {
	if annualRatePct.IsZero() {
		return principal.Sub(payment.Mul(decimal.NewFromInt(int64(months))))
	}
	i := monthlyRate(annualRatePct)
	x := compound(i, months)
	return principal.Mul(x).Sub(payment.Mul(x.Sub(decimal.NewFromInt(1))).Div(i))
}

// naiveSchedule is the yearly decreasing-balance approximation: the annual
// payment is twelve monthly payments and a full year of interest is charged
// on the opening balance.
func naiveSchedule(mortgage, ratePct, monthlyPayment decimal.Decimal, years int) []domain.AmortizationRow {
	payment := monthlyPayment.Mul(twelve)
	rate := fraction(ratePct)
	balance := mortgage

	rows := make([]domain.AmortizationRow, 0, years)
	for year := 1; year <= years; year++ {
		interest := balance.Mul(rate)
		principal := payment.Sub(interest)
		balance = balance.Sub(principal)
		rows = append(rows, domain.AmortizationRow{
			Year:      year,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return rows
}

// amortizedSchedule aggregates a monthly amortizing loan of termMonths
// payments into yearly rows. Years after payoff have no payment and a zero
// balance.
func amortizedSchedule(amount, annualRatePct, monthlyPayment decimal.Decimal, termMonths, years int) []domain.AmortizationRow {
	prev := amount

	rows := make([]domain.AmortizationRow, 0, years)
	for year := 1; year <= years; year++ {
		paid := min(year*monthsPerYear, termMonths) - min((year-1)*monthsPerYear, termMonths)
		payment := monthlyPayment.Mul(decimal.NewFromInt(int64(paid)))

		balance := decimal.Zero
		if year*monthsPerYear < termMonths {
			balance = remainingBalance(amount, annualRatePct, monthlyPayment, year*monthsPerYear)
		}
		principal := prev.Sub(balance)
		rows = append(rows, domain.AmortizationRow{
			Year:      year,
			Payment:   payment,
			Interest:  payment.Sub(principal),
			Principal: principal,
			Balance:   balance,
		})
		prev = balance
	}
	return rows
}

// futureValues projects value for years 0..years at a fixed appreciation.
func futureValues(value, appreciationPct decimal.Decimal, years int) []domain.FutureValue {
	growth := decimal.NewFromInt(1).Add(fraction(appreciationPct))
	factor := decimal.NewFromInt(1)

	out := make([]domain.FutureValue, 0, years+1)
	for year := 0; year <= years; year++ {
		out = append(out, domain.FutureValue{Year: year, Value: value.Mul(factor)})
		factor = factor.Mul(growth)
	}
	return out
}
