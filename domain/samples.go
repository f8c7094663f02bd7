package domain

import "github.com/shopspring/decimal"

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// SampleProperty is the built-in deal every layout is generated from.
func SampleProperty() PropertyInput {
	return PropertyInput{
		Address:            "123 Main St",
		PropertyType:       "Residential",
		SquareFootage:      1500,
		Units:              1,
		PurchasePrice:      money(1050000),
		DownPaymentPercent: money(20),
		InterestRate:       decimal.RequireFromString("3.4"),
		ClosingCost:        money(21000),
		CarryingCostMonths: 8,
		RenovationCost:     money(128000),
		Appliances:         money(8000),
		RentIncome: []LineItem{
			{Name: "Rent 1", Amount: money(3200)},
			{Name: "Parking", Amount: money(350)},
			{Name: "Laundry", Amount: money(0)},
		},
		OperatingExpenses: []LineItem{
			{Name: "Hydro", Amount: money(50)},
			{Name: "Water", Amount: money(50)},
			{Name: "Gas", Amount: money(100)},
			{Name: "Insurance", Amount: money(150)},
			{Name: "Property Tax", Amount: money(291)},
			{Name: "Vacancy", Amount: money(388)},
			{Name: "Maintenance", Amount: money(388)},
			{Name: "Property Management", Amount: money(775)},
		},
		PostRenoValue:              money(1350000),
		RefinanceLTV:               money(80),
		RefinanceAmortizationYears: DefaultRefinanceAmortizationYears,
		RefinancePenalty:           money(6965),
		LawyerFees:                 money(2000),
		AmortizationYears:          5,
		AppreciationRate:           money(8),
	}
}

// SampleStrategyInput is the built-in record for the strategy analyzer.
func SampleStrategyInput() StrategyInput {
	return StrategyInput{
		PurchasePrice:           money(100000),
		Deposit:                 money(25000),
		LTV:                     money(75),
		MortgageInterestRate:    money(5),
		RentIncome:              money(1000),
		Expenses:                money(300),
		RefurbishmentCost:       money(20000),
		AfterRefurbishmentValue: money(150000),
	}
}
