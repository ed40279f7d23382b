package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"loan-prepay/config"
	"loan-prepay/domain"
)

const (
	CategorySalary        = "Salary"
	CategoryEMI           = "EMI"
	CategoryRent          = "Rent"
	CategoryInvestment    = "Investment"
	CategoryUtilities     = "Utilities"
	CategoryFood          = "Food"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryTransport     = "Transport"
	CategoryOther         = "Other"
)

const noAdvice = "No specific advice at this time."

type categoryRule struct {
	category string
	keywords []string
}

// categoryRules is checked in order against the words of a description;
// the first rule with a matching word wins.
var categoryRules = []categoryRule{
	{CategorySalary, []string{"SALARY", "PAYROLL", "STIPEND", "BONUS"}},
	{CategoryEMI, []string{"EMI", "LOAN", "MORTGAGE", "FINSERV"}},
	{CategoryRent, []string{"RENT", "LANDLORD", "NOBROKER"}},
	{CategoryInvestment, []string{"ZERODHA", "GROWW", "SIP", "PPF", "NPS", "MUTUAL"}},
	{CategoryUtilities, []string{"BILL", "BESCOM", "ELECTRICITY", "WATER", "GAS", "FIBER", "POSTPAID", "PREPAID", "JIO", "AIRTEL", "BROADBAND"}},
	{CategoryFood, []string{"SWIGGY", "ZOMATO", "STARBUCKS", "MCDONALDS", "DOMINOS", "PIZZA", "KFC", "GROCERY", "BLINKIT", "RESTAURANT", "CAFE"}},
	{CategoryShopping, []string{"AMAZON", "FLIPKART", "MYNTRA", "DECATHLON", "ZARA", "UNIQLO", "MALL"}},
	{CategoryEntertainment, []string{"NETFLIX", "SPOTIFY", "PVR", "BOOKMYSHOW", "HOTSTAR", "CINEMA", "CINEMAS", "PRIME"}},
	{CategoryTransport, []string{"UBER", "OLA", "RAPIDO", "METRO", "FUEL", "PETROL", "IRCTC", "TAXI"}},
}

// CashflowService categorizes bank transactions and suggests what to do
// with a monthly surplus.
type CashflowService struct {
	surplusThreshold decimal.Decimal
	foodSharePercent decimal.Decimal
	logger           *zap.Logger
}

func NewCashflowService(cfg config.CashflowConfig, logger *zap.Logger) *CashflowService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CashflowService{
		surplusThreshold: decimal.NewFromFloat(cfg.SurplusThreshold),
		foodSharePercent: decimal.NewFromFloat(cfg.FoodSharePercent),
		logger:           logger,
	}
}

// Categorize returns the category of a single transaction description.
func (s *CashflowService) Categorize(input domain.CategoryInput) (domain.CategoryResult, error) {
	var v validator
	v.check(strings.TrimSpace(input.Description) != "", "description must not be empty")
	if err := v.err(); err != nil {
		return domain.CategoryResult{}, err
	}

	return domain.CategoryResult{
		Description: input.Description,
		Category:    categorize(input.Description),
	}, nil
}

// Analyze totals income (Salary) against every other category and builds
// advice from the surplus and the share spent on food.
func (s *CashflowService) Analyze(input domain.CashflowInput) (domain.CashflowResult, error) {
	if err := validateCashflow(input); err != nil {
		return domain.CashflowResult{}, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	breakdown := make(map[string]decimal.Decimal)

	for _, tx := range input.Transactions {
		amount := toDecimal(tx.Amount)
		category := categorize(tx.Description)
		breakdown[category] = breakdown[category].Add(amount)

		if category == CategorySalary {
			income = income.Add(amount)
		} else {
			expenses = expenses.Add(amount)
		}
	}

	surplus := income.Sub(expenses)
	result := domain.CashflowResult{
		TotalSavings:      roundTo2Decimals(surplus),
		Income:            roundTo2Decimals(income),
		Expenses:          roundTo2Decimals(expenses),
		CategoryBreakdown: make(map[string]float64, len(breakdown)),
		Advice:            s.advice(surplus, expenses, breakdown[CategoryFood]),
	}
	for category, total := range breakdown {
		result.CategoryBreakdown[category] = roundTo2Decimals(total)
	}

	s.logger.Debug("analyzed cash flow",
		zap.Int("transactions", len(input.Transactions)),
		zap.Float64("surplus", result.TotalSavings),
	)
	return result, nil
}

func (s *CashflowService) advice(surplus, expenses, food decimal.Decimal) string {
	var messages []string

	if surplus.GreaterThan(s.surplusThreshold) {
		messages = append(messages,
			fmt.Sprintf("You have ₹%s extra! Prepay this to your loan to save interest.", surplus.StringFixed(2)))
	}

	if expenses.IsPositive() {
		share := food.Mul(decimal.NewFromInt(100)).Div(expenses)
		if share.GreaterThan(s.foodSharePercent) {
			messages = append(messages, "Warning: High spending on Food this month.")
		}
	}

	if len(messages) == 0 {
		return noAdvice
	}
	return strings.Join(messages, " ")
}

func categorize(description string) string {
	words := strings.FieldsFunc(strings.ToUpper(description), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			for _, word := range words {
				if word == keyword {
					return rule.category
				}
			}
		}
	}
	return CategoryOther
}

func validateCashflow(in domain.CashflowInput) error {
	var v validator
	v.check(len(in.Transactions) > 0, "transactions must not be empty")
	v.check(len(in.Transactions) <= MaxTransactionsPerRequest,
		fmt.Sprintf("at most %d transactions are accepted per request", MaxTransactionsPerRequest))
	for i, tx := range in.Transactions {
		v.check(strings.TrimSpace(tx.Description) != "", fmt.Sprintf("transactions[%d].description must not be empty", i))
		v.check(tx.Amount >= 0, fmt.Sprintf("transactions[%d].amount must not be negative", i))
	}
	return v.err()
}
