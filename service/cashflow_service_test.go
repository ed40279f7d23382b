package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-prepay/config"
	"loan-prepay/domain"
)

func newCashflowService() *CashflowService {
	return NewCashflowService(config.Default().Cashflow, nil)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"SALARY CREDIT - TCS", CategorySalary},
		{"accenture payroll", CategorySalary},
		{"ACH DEBIT - HDFC HOME LOAN", CategoryEMI},
		{"BAJAJ FINSERV EMI", CategoryEMI},
		{"UPI/RENT TRANSFER", CategoryRent},
		{"GROWW SIP", CategoryInvestment},
		{"JIO FIBER", CategoryUtilities},
		{"UPI/SWIGGY", CategoryFood},
		{"DOMINOS PIZZA", CategoryFood},
		{"AMAZON INDIA", CategoryShopping},
		{"SPOTIFY PREMIUM", CategoryEntertainment},
		{"DISNEY+ HOTSTAR", CategoryEntertainment},
		{"UBER TRIP", CategoryTransport},
		{"ATM WITHDRAWAL", CategoryOther},
	}
	service := newCashflowService()
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			result, err := service.Categorize(domain.CategoryInput{Description: tt.description})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Category)
		})
	}
}

func TestCategorize_EmptyDescription(t *testing.T) {
	_, err := newCashflowService().Categorize(domain.CategoryInput{Description: "   "})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAnalyze_SurplusAdvice(t *testing.T) {
	result, err := newCashflowService().Analyze(domain.CashflowInput{Transactions: []domain.Transaction{
		{Description: "SALARY CREDIT - TCS", Amount: 100000},
		{Description: "SBI HOME LOAN EMI", Amount: 40000},
		{Description: "HOUSE RENT", Amount: 20000},
		{Description: "UPI/ZOMATO", Amount: 5000},
	}})

	require.NoError(t, err)
	assert.Equal(t, 100000.0, result.Income)
	assert.Equal(t, 65000.0, result.Expenses)
	assert.Equal(t, 35000.0, result.TotalSavings)
	assert.Equal(t, map[string]float64{
		CategorySalary: 100000,
		CategoryEMI:    40000,
		CategoryRent:   20000,
		CategoryFood:   5000,
	}, result.CategoryBreakdown)
	assert.Equal(t, "You have ₹35000.00 extra! Prepay this to your loan to save interest.", result.Advice)
}

func TestAnalyze_FoodWarning(t *testing.T) {
	result, err := newCashflowService().Analyze(domain.CashflowInput{Transactions: []domain.Transaction{
		{Description: "INFOSYS SALARY", Amount: 20000},
		{Description: "UPI/SWIGGY", Amount: 4000},
		{Description: "BLINKIT", Amount: 2000},
		{Description: "AMAZON INDIA", Amount: 9000},
	}})

	require.NoError(t, err)
	assert.Equal(t, 5000.0, result.TotalSavings)
	assert.Equal(t, "Warning: High spending on Food this month.", result.Advice)
}

func TestAnalyze_BothAdvices(t *testing.T) {
	result, err := newCashflowService().Analyze(domain.CashflowInput{Transactions: []domain.Transaction{
		{Description: "SALARY", Amount: 50000},
		{Description: "STARBUCKS", Amount: 5000},
	}})

	require.NoError(t, err)
	assert.Equal(t,
		"You have ₹45000.00 extra! Prepay this to your loan to save interest. Warning: High spending on Food this month.",
		result.Advice)
}

func TestAnalyze_NoAdvice(t *testing.T) {
	result, err := newCashflowService().Analyze(domain.CashflowInput{Transactions: []domain.Transaction{
		{Description: "SALARY", Amount: 30000},
		{Description: "HOUSE RENT", Amount: 25000},
		{Description: "MCDONALDS", Amount: 500},
	}})

	require.NoError(t, err)
	assert.Equal(t, "No specific advice at this time.", result.Advice)
}

func TestAnalyze_InvalidInput(t *testing.T) {
	service := newCashflowService()

	_, err := service.Analyze(domain.CashflowInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"transactions must not be empty"}, verr.Problems)

	_, err = service.Analyze(domain.CashflowInput{Transactions: []domain.Transaction{
		{Description: "", Amount: 10},
		{Description: "RENT", Amount: -1},
	}})
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}
