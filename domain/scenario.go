package domain

// LoanPosition is an existing loan and how far into it the borrower is.
type LoanPosition struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annual_rate"`
	TenureMonths int     `json:"tenure_months"`
	MonthsPaid   int     `json:"months_paid"`
}

type PrepaymentInput struct {
	LoanPosition
	Prepayment float64 `json:"prepayment"`
}

type ExtraPaymentInput struct {
	LoanPosition
	MonthlyExtra float64 `json:"monthly_extra"`
}

type RefinanceInput struct {
	LoanPosition
	Prepayment      float64 `json:"prepayment"`
	NewAnnualRate   float64 `json:"new_annual_rate"`
	RefinanceCost   float64 `json:"refinance_cost"`
	NewTenureMonths int     `json:"new_tenure_months"`
}

// Outcome tells callers whether the numbers beside it are a real plan.
// Viable is false for strategies that cannot run their course.
type Outcome struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	Viable bool   `json:"viable"`
}

type TenureReductionResult struct {
	EMI                    float64 `json:"emi"`
	OutstandingPrincipal   float64 `json:"outstanding_principal"`
	BalanceAfterPrepayment float64 `json:"balance_after_prepayment"`
	RemainingTenure        int     `json:"remaining_tenure"`
	NewTenureAfterPrepay   int     `json:"new_tenure_after_prepay"`
	TenureReduced          int     `json:"tenure_reduced"`
	InterestSaved          float64 `json:"interest_saved"`
	TotalCostWithoutPrepay float64 `json:"total_cost_without_prepay"`
	TotalCostWithPrepay    float64 `json:"total_cost_with_prepay"`
	Outcome                Outcome `json:"outcome"`
}

type EMIReductionResult struct {
	OldEMI                 float64 `json:"old_emi"`
	NewEMI                 float64 `json:"new_emi"`
	EMIReduction           float64 `json:"emi_reduction"`
	OutstandingPrincipal   float64 `json:"outstanding_principal"`
	BalanceAfterPrepayment float64 `json:"balance_after_prepayment"`
	RemainingTenure        int     `json:"remaining_tenure"`
	InterestSaved          float64 `json:"interest_saved"`
	TotalCostWithoutPrepay float64 `json:"total_cost_without_prepay"`
	TotalCostWithPrepay    float64 `json:"total_cost_with_prepay"`
	Outcome                Outcome `json:"outcome"`
}

type ExtraPaymentResult struct {
	EMI                   float64 `json:"emi"`
	MonthlyExtra          float64 `json:"monthly_extra"`
	EffectivePayment      float64 `json:"effective_payment"`
	OutstandingPrincipal  float64 `json:"outstanding_principal"`
	RemainingTenure       int     `json:"remaining_tenure"`
	NewTenure             int     `json:"new_tenure"`
	TenureReduced         int     `json:"tenure_reduced"`
	TotalExtraPaid        float64 `json:"total_extra_paid"`
	InterestSaved         float64 `json:"interest_saved"`
	TotalCostWithoutExtra float64 `json:"total_cost_without_extra"`
	TotalCostWithExtra    float64 `json:"total_cost_with_extra"`
	Outcome               Outcome `json:"outcome"`
}

type RefinanceOption struct {
	Label        string  `json:"label"`
	EMI          float64 `json:"emi"`
	TenureMonths int     `json:"tenure_months"`
	TotalCost    float64 `json:"total_cost"`
	Savings      float64 `json:"savings"`
	Outcome      Outcome `json:"outcome"`
}

type RefinanceResult struct {
	EMI                  float64         `json:"emi"`
	OutstandingPrincipal float64         `json:"outstanding_principal"`
	RemainingTenure      int             `json:"remaining_tenure"`
	AmountPaid           float64         `json:"amount_paid"`
	Stay                 RefinanceOption `json:"stay"`
	PrepayOnly           RefinanceOption `json:"option_a"`
	RefinanceOnly        RefinanceOption `json:"option_b"`
	PrepayAndRefinance   RefinanceOption `json:"option_c"`
	BestOption           string          `json:"best_option"`
	MaxSavings           float64         `json:"max_savings"`
	DecisionRule         string          `json:"decision_rule"`
	Explanation          string          `json:"explanation,omitempty"`
}
