package domain

type Transaction struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type CashflowInput struct {
	Transactions []Transaction `json:"transactions"`
}

// CashflowResult summarizes a month of transactions. TotalSavings is
// income minus expenses.
type CashflowResult struct {
	TotalSavings      float64            `json:"total_savings"`
	Income            float64            `json:"income"`
	Expenses          float64            `json:"expenses"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	Advice            string             `json:"advice"`
}

type CategoryInput struct {
	Description string `json:"description"`
}

type CategoryResult struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}
