package sheet

import (
	"fmt"
	"strings"

	"brrrr-calculator/domain"
)

func ref(key string) string {
	return "{" + key + "}"
}

func itemKey(prefix string, i int) string {
	return fmt.Sprintf("%s_%d", prefix, i+1)
}

// lineItems renders items as literal fields keyed prefix_1, prefix_2, ...
func lineItems(prefix string, items []domain.LineItem) ([]Field, []string) {
	fields := make([]Field, 0, len(items))
	keys := make([]string, 0, len(items))
	for i, item := range items {
		key := itemKey(prefix, i)
		fields = append(fields, Field{Key: key, Label: item.Name, Value: item.Amount})
		keys = append(keys, key)
	}
	return fields, keys
}

func sumOf(keys ...string) string {
	if len(keys) == 0 {
		return "0"
	}
	refs := make([]string, len(keys))
	for i, key := range keys {
		refs[i] = ref(key)
	}
	return "SUM(" + strings.Join(refs, ",") + ")"
}

// below returns fixed, or the first row after a one-row gap under the
// lowest of rows when fixed would overlap it.
func below(fixed int, rows ...int) int {
	next := fixed
	for _, row := range rows {
		if row+2 > next {
			next = row + 2
		}
	}
	return next
}

func inputFields(p domain.PropertyInput) []Field {
	return []Field{
		{Key: "address", Label: "Property Address", Value: p.Address},
		{Key: "property_type", Label: "Property Type", Value: p.PropertyType},
		{Key: "square_footage", Label: "Square Footage", Value: p.SquareFootage},
		{Key: "units", Label: "Number of Units", Value: p.Units},
		{Key: "purchase_price", Label: "Purchase Price", Value: p.PurchasePrice},
		{Key: "down_payment_pct", Label: "Down Payment %", Value: p.DownPaymentPercent},
		{Key: "interest_rate", Label: "Interest Rate", Value: p.InterestRate},
		{Key: "amortization_years", Label: "Amortization Years", Value: p.AmortizationYears},
		{Key: "closing_cost", Label: "Closing Cost", Value: p.ClosingCost},
		{Key: "renovation_cost", Label: "Renovation Cost", Value: p.RenovationCost},
		{Key: "carrying_months", Label: "Carrying Cost Months", Value: p.CarryingCostMonths},
		{Key: "post_reno_value", Label: "Post Reno Value", Value: p.PostRenoValue},
		{Key: "refinance_ltv", Label: "Refinance LTV %", Value: p.RefinanceLTV},
		{Key: "appreciation_rate", Label: "Appreciation Rate %", Value: p.AppreciationRate},
	}
}

const (
	downPaymentFormula    = "{purchase_price}*{down_payment_pct}/100"
	mortgageFormula       = "{purchase_price}*(1-{down_payment_pct}/100)"
	monthlyPaymentFormula = "{mortgage_amount}*{interest_rate}/100/12"
	refinanceFormula      = "{post_reno_value}*{refinance_ltv}/100"
	cashPulledOutFormula  = "{post_reno_value}*{refinance_ltv}/100-{mortgage_amount}"
	refiPaymentFormula    = "PMT({refi_rate}/1200,{refi_years}*12,-{refinance_amount})"
	upfrontFormula        = "{purchase_price}*{down_payment_pct}/100+{closing_cost}+{renovation_cost}+{appliances}+{construction_insurance}"
	totalCostFormula      = "{purchase_price}*{down_payment_pct}/100+{closing_cost}+{renovation_cost}+{monthly_payment}*{carrying_months}"
)

// buyFields is the "BUY THE PROPERTY" block of the formula layouts.
func buyFields(p domain.PropertyInput, withTotal bool) []Field {
	fields := []Field{
		{Key: "purchase_price", Label: "Purchased Price", Value: p.PurchasePrice},
		{Key: "down_payment_pct", Label: "Down Payment %", Value: p.DownPaymentPercent},
		{Key: "mortgage_amount", Label: "Mortgage Amount", Formula: mortgageFormula},
		{Key: "closing_cost", Label: "Closing Cost", Value: p.ClosingCost},
		{Key: "interest_rate", Label: "Interest Rate", Value: p.InterestRate},
		{Key: "amortization_term", Label: "Amortization", Value: p.EffectiveRefinanceYears()},
		{Key: "monthly_payment", Label: "Monthly Payment", Formula: monthlyPaymentFormula},
		{Key: "carrying_months", Label: "Months of Carrying Cost", Value: p.CarryingCostMonths},
	}
	if withTotal {
		fields = append(fields, Field{Key: "total_cost", Label: "Total Cost", Formula: totalCostFormula})
	}
	return fields
}

func rehabFields(p domain.PropertyInput, withTotal bool) []Field {
	fields := []Field{
		{Key: "renovation_cost", Label: "Renovation Cost", Value: p.RenovationCost},
		{Key: "appliances", Label: "Appliances", Value: p.Appliances},
		{Key: "construction_insurance", Label: "Construction Insurance", Value: p.ConstructionInsurance},
	}
	if withTotal {
		fields = append(fields, Field{
			Key:     "rehab_total",
			Label:   "Total Cost",
			Formula: sumOf("renovation_cost", "appliances", "construction_insurance"),
		})
	}
	return fields
}

// refinanceFields is the "REFINANCE POST RENO" block.
func refinanceFields(p domain.PropertyInput) []Field {
	return []Field{
		{Key: "post_reno_value", Label: "New Property Value", Value: p.PostRenoValue},
		{Key: "refinance_ltv", Label: "Refinance LTV %", Value: p.RefinanceLTV},
		{Key: "refinance_amount", Label: "New Mortgage Amount LTV", Formula: refinanceFormula},
		{Key: "old_balance", Label: "Old Mortgage Balance", Formula: ref("mortgage_amount")},
		{Key: "penalty", Label: "Penalty", Value: p.RefinancePenalty},
		{Key: "lawyer_fees", Label: "Lawyer Fees", Value: p.LawyerFees},
		{Key: "cash_pulled_out", Label: "Cash Pulled Out", Formula: "{refinance_amount}-{old_balance}"},
		{Key: "refi_rate", Label: "Interest Rate New Mortgage", Value: p.EffectiveRefinanceRate()},
		{Key: "refi_years", Label: "Amortization New Mortgage", Value: p.EffectiveRefinanceYears()},
		{Key: "refi_payment", Label: "Monthly Payment New Mortgage", Formula: refiPaymentFormula},
	}
}

// refinanceScheduleRows writes the yearly schedule of the refinance loan as
// formulas over the refinance block: the balance after k years is the
// closed form of monthly amortization, principal is the drop in balance.
// Years past the term pay nothing and leave a zero balance.
func refinanceScheduleRows(years int) [][]Field {
	const (
		growth  = "(1+{refi_rate}/1200)^(12*{%[1]s})"
		payment = "{refi_payment}*MAX(0,MIN(12,{refi_years}*12-12*({%[1]s}-1)))"
		balance = "IF(12*{%[1]s}>={refi_years}*12,0,IF({refi_rate}=0,{refinance_amount}-{refi_payment}*12*{%[1]s},{refinance_amount}*%[2]s-{refi_payment}*(%[2]s-1)/({refi_rate}/1200)))"
		diff    = "{%s}-{%s}"
	)
	rows := make([][]Field, 0, years)
	prev := "refinance_amount"
	for year := 1; year <= years; year++ {
		yearKey := itemKey("refi_year", year-1)
		payKey := itemKey("refi_pay", year-1)
		interestKey := itemKey("refi_interest", year-1)
		principalKey := itemKey("refi_principal", year-1)
		balanceKey := itemKey("refi_balance", year-1)
		g := fmt.Sprintf(growth, yearKey)

		rows = append(rows, []Field{
			{Key: yearKey, Value: year},
			{Key: payKey, Formula: fmt.Sprintf(payment, yearKey)},
			{Key: interestKey, Formula: fmt.Sprintf(diff, payKey, principalKey)},
			{Key: principalKey, Formula: fmt.Sprintf(diff, prev, balanceKey)},
			{Key: balanceKey, Formula: fmt.Sprintf(balance, yearKey, g)},
		})
		prev = balanceKey
	}
	return rows
}

// futureValueRows projects the post reno value for years 0..years.
func futureValueRows(years int) [][]Field {
	rows := make([][]Field, 0, years+1)
	for year := 0; year <= years; year++ {
		yearKey := fmt.Sprintf("fv_year_%d", year)
		rows = append(rows, []Field{
			{Key: yearKey, Value: year},
			{
				Key:     fmt.Sprintf("fv_%d", year),
				Formula: fmt.Sprintf("{post_reno_value}*(1+{appreciation_rate}/100)^{%s}", yearKey),
			},
		})
	}
	return rows
}

var amortizationHeaders = []string{"Year", "Payment", "Interest", "Principal", "Balance"}

func amortizationValueRows(schedule []domain.AmortizationRow) [][]Field {
	rows := make([][]Field, 0, len(schedule))
	for _, r := range schedule {
		rows = append(rows, []Field{
			{Value: r.Year},
			{Value: r.Payment},
			{Value: r.Interest},
			{Value: r.Principal},
			{Value: r.Balance},
		})
	}
	return rows
}
