// Package amortization is the loan calculation engine: EMI, outstanding
// balance, payoff tenure and the prepayment, extra-payment and refinance
// scenarios built on them.
//
// All arithmetic is done on decimal.Decimal. Functions are pure and hold no
// state, so they are safe to call from any number of goroutines.
package amortization

import (
	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept by divisions and logarithms.
const Precision int32 = 28

// tenureScale is the scale N' is rounded to before taking the ceiling, so a
// result such as 180.0000000000000000001 still reads as 180 months.
const tenureScale int32 = 9

var (
	one            = decimal.NewFromInt(1)
	twelveHundred  = decimal.NewFromInt(1200)
	monthsPerYear  = decimal.NewFromInt(12)
	percentPerUnit = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual percentage rate (9 for 9%) to the decimal
// monthly rate (0.0075). A zero rate passes through as zero.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.DivRound(twelveHundred, Precision)
}

// AnnualRatePercent is the inverse of MonthlyRate.
func AnnualRatePercent(monthlyRate decimal.Decimal) decimal.Decimal {
	return monthlyRate.Mul(monthsPerYear).Mul(percentPerUnit)
}

// growth returns (1+i)^n rounded to Precision places.
func growth(i decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return one
	}
	f, err := one.Add(i).PowInt32(int32(n))
	if err != nil {
		// PowInt32 only fails for 0^0, which n > 0 rules out.
		panic(err)
	}
	return f.Round(Precision)
}

// EMI returns the equated monthly installment that amortizes principal over
// months payments at the given annual rate:
//
//	EMI = P * i * (1+i)^N / ((1+i)^N - 1)
//
// A zero rate degenerates to P/N. Non-positive principal or tenure, or a
// negative rate, yields zero.
func EMI(principal, annualRatePercent decimal.Decimal, months int) decimal.Decimal {
	emi, _ := installment(principal, MonthlyRate(annualRatePercent), months)
	return emi
}

// installment is EMI on a monthly rate. ok is false when the formula is
// undefined for the inputs (non-positive denominator, no principal or no
// months).
func installment(principal, i decimal.Decimal, months int) (decimal.Decimal, bool) {
	if months <= 0 || !principal.IsPositive() {
		return decimal.Zero, false
	}
	if i.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(months)), Precision), true
	}
	f := growth(i, months)
	denominator := f.Sub(one)
	if !denominator.IsPositive() {
		return decimal.Zero, false
	}
	return principal.Mul(i).Mul(f).DivRound(denominator, Precision), true
}

// Outstanding returns the principal left after paid of months scheduled
// payments at the original EMI:
//
//	B_k = P * ((1+i)^N - (1+i)^k) / ((1+i)^N - 1)
//
// It equals principal at paid <= 0 and zero at paid >= months.
func Outstanding(principal, annualRatePercent decimal.Decimal, months, paid int) decimal.Decimal {
	return outstanding(principal, MonthlyRate(annualRatePercent), months, paid)
}

func outstanding(principal, i decimal.Decimal, months, paid int) decimal.Decimal {
	switch {
	case paid <= 0:
		return principal
	case paid >= months:
		return decimal.Zero
	}
	if i.IsZero() {
		left := decimal.NewFromInt(int64(months - paid))
		return principal.Mul(left).DivRound(decimal.NewFromInt(int64(months)), Precision)
	}
	fN := growth(i, months)
	denominator := fN.Sub(one)
	if !denominator.IsPositive() {
		return decimal.Zero
	}
	fk := growth(i, paid)
	return principal.Mul(fN.Sub(fk)).DivRound(denominator, Precision)
}

// SolveTenure returns the number of whole months a fixed payment needs to
// retire balance at monthly rate i:
//
//	N' = ceil( ln(E / (E - B*i)) / ln(1+i) )
//
// A non-positive balance is already retired and returns (0, true). When the
// payment does not cover a month's interest the loan never amortizes and
// SolveTenure returns (0, false). The result is never negative.
func SolveTenure(balance, i, payment decimal.Decimal) (int, bool) {
	if !balance.IsPositive() {
		return 0, true
	}
	if !payment.IsPositive() || i.IsNegative() {
		return 0, false
	}
	if i.IsZero() {
		return ceilMonths(balance.DivRound(payment, Precision)), true
	}

	headroom := payment.Sub(balance.Mul(i))
	if !headroom.IsPositive() {
		return 0, false
	}

	ratio := payment.DivRound(headroom, Precision)
	num, err := ratio.Ln(Precision)
	if err != nil {
		return 0, false
	}
	den, err := one.Add(i).Ln(Precision)
	if err != nil || !den.IsPositive() {
		return 0, false
	}

	n := ceilMonths(num.DivRound(den, Precision))
	if n < 0 {
		return 0, false
	}
	return n, true
}

func ceilMonths(n decimal.Decimal) int {
	return int(n.Round(tenureScale).Ceil().IntPart())
}
