package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 30.0 // % anual
	MaxTermMonths   = 600  // 50 años
	MinTermMonths   = 1

	// Límites del historial
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200

	MaxTransactionsPerRequest = 1000
)

// Scenario names used for cache keys, history records and metrics.
const (
	ScenarioLoan         = "loan"
	ScenarioReduceTenure = "reduce_tenure"
	ScenarioReduceEMI    = "reduce_emi"
	ScenarioExtraPayment = "extra_payment"
	ScenarioRefinance    = "refinance"
)
