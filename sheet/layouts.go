package sheet

import "brrrr-calculator/domain"

// Layout is one named spreadsheet variant.
type Layout struct {
	Name        string
	FileName    string
	Description string
	Build       func(domain.Report) Workbook
}

const calculatorSheet = "BRRRR Calculator"

var layouts = []Layout{
	{
		Name:        "values",
		FileName:    "BRRRR_Property_Calculator.xlsx",
		Description: "input and output tables with precomputed values, expenses and rent sources",
		Build:       buildValues,
	},
	{
		Name:        "summary",
		FileName:    "BRRRR_Property_Summary.xlsx",
		Description: "buy, rent and summary sections with the amortization and future value tables",
		Build:       buildSummary,
	},
	{
		Name:        "formulas",
		FileName:    "6-BRRRR_Property_Calculator.xlsx",
		Description: "input table with an output table of spreadsheet formulas",
		Build:       buildFormulas,
	},
	{
		Name:        "planner",
		FileName:    "7-BRRRR_Property_Calculator.xlsx",
		Description: "buy, rehab, rent and summary blocks with future value formulas",
		Build:       func(r domain.Report) Workbook { return buildPlanner(r, StyleHighlighted) },
	},
	{
		Name:        "boxed",
		FileName:    "8-BRRRR_Property_Calculator.xlsx",
		Description: "planner layout in colored boxes with block totals",
		Build:       func(r domain.Report) Workbook { return buildPlanner(r, StyleBoxed) },
	},
	{
		Name:        "returns",
		FileName:    "9-BRRRR_Property_Calculator.xlsx",
		Description: "boxed blocks with returns, refinance and the refinance amortization table",
		Build:       buildReturns,
	},
	{
		Name:        "refinance",
		FileName:    "10-BRRRR_Property_Calculator.xlsx",
		Description: "buy and refinance blocks with an amortizing new mortgage payment",
		Build:       buildRefinance,
	},
	{
		Name:        "strategies",
		FileName:    "Property_Strategy_Analyzer.xlsx",
		Description: "one sheet of metrics per investment strategy",
		Build:       buildStrategies,
	},
}

// Layouts returns every layout in generation order.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

func Lookup(name string) (Layout, bool) {
	for _, l := range layouts {
		if l.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}
