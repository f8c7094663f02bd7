package sheet

import (
	"fmt"

	"brrrr-calculator/domain"
)

func outputValueFields(m domain.Metrics) []Field {
	return []Field{
		{Key: "out_purchase_price", Label: "Purchase Price", Value: m.PurchasePrice},
		{Key: "down_payment", Label: "Down Payment", Value: m.DownPayment},
		{Key: "mortgage_amount", Label: "Mortgage Amount", Value: m.MortgageAmount},
		{Key: "monthly_payment", Label: "Monthly Payment", Value: m.MonthlyPayment},
		{Key: "carrying_cost", Label: "Carrying Cost", Value: m.CarryingCost},
		{Key: "out_closing_cost", Label: "Closing Cost", Value: m.ClosingCost},
		{Key: "out_renovation_cost", Label: "Renovation Cost", Value: m.RenovationCost},
		{Key: "total_cost", Label: "Total Cost", Value: m.TotalCost},
		{Key: "rental_income", Label: "Post Reno Income", Value: m.RentalIncome},
		{Key: "total_expenses", Label: "Total Expenses", Value: m.TotalExpenses},
		{Key: "monthly_cashflow", Label: "Monthly Cashflow", Value: m.MonthlyCashflow},
		{Key: "cash_pulled_out", Label: "Cash Pulled Out", Value: m.CashPulledOut},
		{Key: "roi", Label: "ROI (%)", Value: m.ROI},
	}
}

func buildValues(r domain.Report) Workbook {
	input := Section{Title: "INPUT FIELDS", Row: 1, Col: 1, Style: StyleHighlighted, Fields: inputFields(r.Property)}
	output := Section{Title: "OUTPUT FIELDS", Row: 1, Col: 5, Style: StyleHighlighted, Fields: outputValueFields(r.Metrics)}

	expenses, _ := lineItems("expense", r.Property.OperatingExpenses)
	rents, _ := lineItems("rent", r.Property.RentIncome)
	row := below(20, input.LastRow(), output.LastRow())

	return Workbook{Sheets: []Sheet{{
		Name: calculatorSheet,
		Sections: []Section{
			input,
			output,
			{Title: "OPERATING EXPENSES", Row: row, Col: 1, Style: StyleHighlighted, Fields: expenses},
			{Title: "RENTAL INCOME SOURCES", Row: row, Col: 5, Style: StyleHighlighted, Fields: rents},
		},
	}}}
}

func buildSummary(r domain.Report) Workbook {
	m := r.Metrics
	buy := Section{Title: "BUY THE PROPERTY", Row: 1, Col: 1, Style: StylePlain, Fields: []Field{
		{Key: "purchase_price", Label: "Purchased Price", Value: m.PurchasePrice},
		{Key: "down_payment", Label: "Down Payment", Value: m.DownPayment},
		{Key: "mortgage_amount", Label: "Mortgage Amount", Value: m.MortgageAmount},
		{Key: "monthly_payment", Label: "Monthly Payment", Value: m.MonthlyPayment},
		{Key: "carrying_cost", Label: "Carrying Cost", Value: m.CarryingCost},
		{Key: "closing_cost", Label: "Closing Cost", Value: m.ClosingCost},
		{Key: "total_cost", Label: "Total Cost", Value: m.TotalCost},
	}}

	expenseFields, _ := lineItems("expense", r.Property.OperatingExpenses)
	row := below(10, buy.LastRow())
	expenses := Section{Title: "POST RENO OPERATING EXPENSES", Row: row, Col: 1, Style: StylePlain, Fields: expenseFields}
	rent := Section{Title: "RENT OUT THE PROPERTY", Row: row, Col: 5, Style: StylePlain, Fields: []Field{
		{Key: "rental_income", Label: "Post Reno Income", Value: m.RentalIncome},
		{Key: "total_expenses", Label: "Total Expenses", Value: m.TotalExpenses},
		{Key: "monthly_cashflow", Label: "Monthly Cashflow", Value: m.MonthlyCashflow},
	}}

	summary := Section{
		Title: "SUMMARY",
		Row:   below(20, expenses.LastRow(), rent.LastRow()),
		Col:   1,
		Style: StylePlain,
		Fields: []Field{
			{Key: "cash_pulled_out", Label: "Cash Pulled Out", Value: m.CashPulledOut},
			{Key: "roi", Label: "ROI (%)", Value: m.ROI},
		},
	}

	tableRow := below(25, summary.LastRow())
	futureRows := make([][]Field, 0, len(m.FutureValues))
	for _, fv := range m.FutureValues {
		futureRows = append(futureRows, []Field{{Value: fv.Year}, {Key: fmt.Sprintf("fv_%d", fv.Year), Value: fv.Value}})
	}

	return Workbook{Sheets: []Sheet{{
		Name:     calculatorSheet,
		Sections: []Section{buy, expenses, rent, summary},
		Tables: []Table{
			{
				Title:   "AMORTIZATION",
				Row:     tableRow,
				Col:     1,
				Style:   StylePlain,
				Headers: amortizationHeaders,
				Rows:    amortizationValueRows(m.Amortization),
			},
			{
				Title:   "FUTURE PROPERTY VALUE WITH APPRECIATION",
				Row:     tableRow,
				Col:     7,
				Style:   StylePlain,
				Headers: []string{"Year", "Value"},
				Rows:    futureRows,
			},
		},
	}}}
}
