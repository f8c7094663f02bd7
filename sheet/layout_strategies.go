package sheet

import "brrrr-calculator/domain"

func buildStrategies(r domain.Report) Workbook {
	var wb Workbook
	for _, result := range r.Strategies {
		m := result.Metrics
		wb.Sheets = append(wb.Sheets, Sheet{
			Name: result.Strategy.Name(),
			Tables: []Table{{
				Row:     1,
				Col:     1,
				Style:   StylePlain,
				Headers: []string{"Metric", "Value"},
				Rows: [][]Field{
					{{Value: "Monthly Cash Flow"}, {Key: "monthly_cash_flow", Value: m.MonthlyCashFlow}},
					{{Value: "ROI (%)"}, {Key: "roi", Value: m.ROI}},
					{{Value: "Gross Yield (%)"}, {Key: "gross_yield", Value: m.GrossYield}},
					{{Value: "Net Yield (%)"}, {Key: "net_yield", Value: m.NetYield}},
					{{Value: "Equity Gain"}, {Key: "equity_gain", Value: m.EquityGain}},
				},
			}},
		})
	}
	return wb
}
