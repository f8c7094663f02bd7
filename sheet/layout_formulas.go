package sheet

import (
	"fmt"

	"brrrr-calculator/domain"
)

func buildFormulas(r domain.Report) Workbook {
	expenseFields, expenseKeys := lineItems("expense", r.Property.OperatingExpenses)
	rentFields, rentKeys := lineItems("rent", r.Property.RentIncome)

	input := Section{Title: "INPUT FIELDS", Row: 1, Col: 1, Style: StyleHighlighted, Fields: inputFields(r.Property)}
	output := Section{Title: "OUTPUT FIELDS", Row: 1, Col: 5, Style: StyleHighlighted, Fields: []Field{
		{Key: "down_payment", Label: "Down Payment", Formula: downPaymentFormula},
		{Key: "mortgage_amount", Label: "Mortgage Amount", Formula: "{purchase_price}-{down_payment}"},
		{Key: "monthly_payment", Label: "Monthly Payment", Formula: monthlyPaymentFormula},
		{Key: "carrying_cost", Label: "Carrying Cost", Formula: "{monthly_payment}*{carrying_months}"},
		{Key: "total_cost", Label: "Total Cost", Formula: "{down_payment}+{closing_cost}+{renovation_cost}+{carrying_cost}"},
		{Key: "rental_income", Label: "Post Reno Income", Formula: sumOf(rentKeys...)},
		{Key: "total_expenses", Label: "Total Expenses", Formula: sumOf(expenseKeys...)},
		{Key: "monthly_cashflow", Label: "Monthly Cashflow", Formula: "{rental_income}-{total_expenses}"},
		{Key: "cash_pulled_out", Label: "Cash Pulled Out", Formula: cashPulledOutFormula},
		{Key: "roi", Label: "ROI (%)", Formula: "{monthly_cashflow}*12/{total_cost}*100"},
	}}

	row := below(20, input.LastRow(), output.LastRow())
	return Workbook{Sheets: []Sheet{{
		Name: calculatorSheet,
		Sections: []Section{
			input,
			output,
			{Title: "OPERATING EXPENSES", Row: row, Col: 1, Style: StyleHighlighted, Fields: expenseFields},
			{Title: "RENTAL INCOME SOURCES", Row: row, Col: 5, Style: StyleHighlighted, Fields: rentFields},
		},
	}}}
}

// expenseSection and rentSection close their block with a SUM row when
// withTotal is set.
func expenseSection(p domain.PropertyInput, style Style, withTotal bool) Section {
	fields, keys := lineItems("expense", p.OperatingExpenses)
	if withTotal {
		fields = append(fields, Field{Key: "total_expenses", Label: "Total Expenses", Formula: sumOf(keys...)})
	}
	return Section{Title: "POST RENO OPERATING EXPENSES", Row: 1, Col: 5, Style: style, Fields: fields}
}

func rentSection(p domain.PropertyInput, style Style, row int, withTotal bool) Section {
	fields, keys := lineItems("rent", p.RentIncome)
	if withTotal {
		fields = append(fields, Field{Key: "total_income", Label: "Total Income", Formula: sumOf(keys...)})
	}
	return Section{Title: "RENT MONTHLY INCOME POST RENO", Row: row, Col: 5, Style: style, Fields: fields}
}

func buildPlanner(r domain.Report, style Style) Workbook {
	p, m := r.Property, r.Metrics
	boxed := style == StyleBoxed

	buy := Section{Title: "BUY THE PROPERTY", Row: 1, Col: 1, Style: style, Fields: buyFields(p, boxed)}
	assumptions := Section{Title: "REFINANCE ASSUMPTIONS", Row: 1, Col: 9, Style: style, Fields: []Field{
		{Key: "post_reno_value", Label: "Post Reno Value", Value: p.PostRenoValue},
		{Key: "refinance_ltv", Label: "Refinance LTV %", Value: p.RefinanceLTV},
		{Key: "appreciation_rate", Label: "Appreciation Rate %", Value: p.AppreciationRate},
	}}

	expenses := expenseSection(p, style, boxed)
	rehabRow := 10
	if boxed {
		rehabRow = 12
	}
	rehabRow = below(rehabRow, buy.LastRow(), expenses.LastRow())
	rehab := Section{Title: "REHAB THE PROPERTY", Row: rehabRow, Col: 1, Style: style, Fields: rehabFields(p, boxed)}
	rent := rentSection(p, style, rehabRow, boxed)

	summaryRow := 15
	if boxed {
		summaryRow = 20
	}
	summaryRow = below(summaryRow, rehab.LastRow(), rent.LastRow())
	summary := Section{Title: "SUMMARY", Row: summaryRow, Col: 1, Style: style, Fields: []Field{
		{Key: "upfront_investment", Label: "Upfront Investment", Formula: upfrontFormula},
		{Key: "cash_pulled_out", Label: "Cash Pulled Out After Refinancing", Formula: cashPulledOutFormula},
		{Key: "money_left", Label: "Money Left In Property", Formula: "{upfront_investment}-{cash_pulled_out}"},
		{Key: "leverage", Label: "Percent Down (LEVERAGE)", Formula: "{money_left}/{purchase_price}*100"},
		{Key: "mortgage_paydown", Label: fmt.Sprintf("Mortgage Paydown After %d Years", p.AmortizationYears), Value: m.MortgagePaydown},
		{Key: "equity", Label: fmt.Sprintf("Equity in Property After %d Years", p.AmortizationYears), Value: m.Equity},
	}}

	future := Table{
		Row:     below(20, summary.LastRow()),
		Col:     1,
		Style:   style,
		Headers: []string{"Year", "Future Property Value"},
		Rows:    futureValueRows(p.AmortizationYears),
	}
	if boxed {
		future = Table{
			Title:   "FUTURE PROPERTY VALUE",
			Row:     summaryRow,
			Col:     5,
			Style:   style,
			Headers: []string{"Year", "Value"},
			Rows:    futureValueRows(p.AmortizationYears),
		}
	}

	return Workbook{Sheets: []Sheet{{
		Name:     calculatorSheet,
		Sections: []Section{buy, expenses, assumptions, rehab, rent, summary},
		Tables:   []Table{future},
	}}}
}

func refinanceTable(row, years int) Table {
	return Table{
		Title:   "FUTURE PROPERTY VALUE WITH AMORTIZATION",
		Row:     row,
		Col:     1,
		Style:   StyleBoxed,
		Headers: amortizationHeaders,
		Rows:    refinanceScheduleRows(years),
	}
}

func buildReturns(r domain.Report) Workbook {
	p := r.Property

	buy := Section{Title: "BUY THE PROPERTY", Row: 1, Col: 1, Style: StyleBoxed, Fields: buyFields(p, true)}
	expenses := expenseSection(p, StyleBoxed, true)
	rehabRow := below(12, buy.LastRow(), expenses.LastRow())
	rehab := Section{Title: "REHAB THE PROPERTY", Row: rehabRow, Col: 1, Style: StyleBoxed, Fields: rehabFields(p, true)}
	rent := rentSection(p, StyleBoxed, rehabRow, true)

	returnsRow := below(20, rehab.LastRow(), rent.LastRow())
	returns := Section{Title: "RETURNS", Row: returnsRow, Col: 1, Style: StyleBoxed, Fields: []Field{
		{Key: "net_value_increase", Label: "Net Value Increase", Formula: "{post_reno_value}-{purchase_price}-{rehab_total}"},
		{Key: "monthly_cashflow", Label: "Monthly Cashflow", Formula: "{total_income}-{total_expenses}"},
		{Key: "yearly_cashflow", Label: "Yearly Cashflow", Formula: "{monthly_cashflow}*12"},
		{Key: "roi", Label: "ROI (%)", Formula: "{yearly_cashflow}/{total_cost}*100"},
	}}
	refinance := Section{Title: "REFINANCE POST RENO", Row: returnsRow, Col: 5, Style: StyleBoxed, Fields: refinanceFields(p)}

	return Workbook{Sheets: []Sheet{{
		Name:     calculatorSheet,
		Sections: []Section{buy, expenses, rehab, rent, returns, refinance},
		Tables:   []Table{refinanceTable(below(30, returns.LastRow(), refinance.LastRow()), p.AmortizationYears)},
	}}}
}

func buildRefinance(r domain.Report) Workbook {
	p := r.Property

	fields := buyFields(p, false)
	fields = append(fields,
		Field{Key: "renovation_cost", Label: "Renovation Cost", Value: p.RenovationCost},
		Field{Key: "total_cost", Label: "Total Cost", Formula: totalCostFormula},
	)
	buy := Section{Title: "BUY THE PROPERTY", Row: 1, Col: 1, Style: StyleBoxed, Fields: fields}
	refinance := Section{Title: "REFINANCE POST RENO", Row: below(20, buy.LastRow()), Col: 5, Style: StyleBoxed, Fields: refinanceFields(p)}

	return Workbook{Sheets: []Sheet{{
		Name:     calculatorSheet,
		Sections: []Section{buy, refinance},
		Tables:   []Table{refinanceTable(below(30, refinance.LastRow()), p.AmortizationYears)},
	}}}
}
