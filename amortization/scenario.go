package amortization

import (
	"github.com/shopspring/decimal"
)

// LoanTerms are the original terms of a loan.
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TenureMonths      int
}

// PaymentHistory records how many scheduled installments have been paid.
// MonthsPaid must be below the tenure; callers clamp upstream.
type PaymentHistory struct {
	MonthsPaid int
}

// Prepayment is a one-off lump sum applied to the outstanding principal.
type Prepayment struct {
	Amount decimal.Decimal
}

// RecurringExtra is added to every installment from now on.
type RecurringExtra struct {
	MonthlyAmount decimal.Decimal
}

// Refinance replaces the loan with a new one. Cost is capitalized into the
// new principal.
type Refinance struct {
	NewAnnualRatePercent decimal.Decimal
	Cost                 decimal.Decimal
	NewTenureMonths      int
}

// position is where a loan stands at the decision point.
type position struct {
	monthlyRate decimal.Decimal
	emi         decimal.Decimal
	outstanding decimal.Decimal
	remaining   int
	paidSoFar   decimal.Decimal
}

func positionOf(terms LoanTerms, history PaymentHistory) position {
	i := MonthlyRate(terms.AnnualRatePercent)
	emi, _ := installment(terms.Principal, i, terms.TenureMonths)

	remaining := terms.TenureMonths - history.MonthsPaid
	if remaining < 0 {
		remaining = 0
	}

	return position{
		monthlyRate: i,
		emi:         emi,
		outstanding: outstanding(terms.Principal, i, terms.TenureMonths, history.MonthsPaid),
		remaining:   remaining,
		paidSoFar:   emi.Mul(decimal.NewFromInt(int64(history.MonthsPaid))),
	}
}

// costOver is payment * months.
func costOver(payment decimal.Decimal, months int) decimal.Decimal {
	return payment.Mul(decimal.NewFromInt(int64(months)))
}

func clampMonths(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
