package service

const (
	MaxPurchasePrice      = 1_000_000_000 // 1 billion
	MaxInterestRate       = 100           // percent per year
	MaxAmortizationYears  = 50
	MaxCarryingCostMonths = 120
	MaxRefinanceTermYears = 50
)

const (
	monthsPerYear    = 12
	paymentPrecision = 18 // decimal places kept while compounding

	metricsCacheKey = "metrics:"
)
