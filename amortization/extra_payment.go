package amortization

import (
	"github.com/shopspring/decimal"
)

// ExtraPayment is the outcome of adding a fixed amount to every installment.
type ExtraPayment struct {
	EMI              decimal.Decimal
	MonthlyExtra     decimal.Decimal
	EffectivePayment decimal.Decimal
	Outstanding      decimal.Decimal
	RemainingTenure  int
	NewTenure        int
	TenureReduced    int
	TotalExtraPaid   decimal.Decimal
	InterestSaved    decimal.Decimal
	TotalCostWithout decimal.Decimal
	TotalCostWith    decimal.Decimal
	Verdict          Verdict
}

// ApplyExtraPayment pays EMI + extra every month until the outstanding
// balance is cleared.
//
// A non-positive extra changes nothing. If the effective payment cannot
// amortize the balance the result carries NewTenure 0, TenureReduced equal to
// the remaining tenure, TotalCostWith 0 and StatusNotViable.
func ApplyExtraPayment(terms LoanTerms, history PaymentHistory, x RecurringExtra) ExtraPayment {
	pos := positionOf(terms, history)
	effective := pos.emi.Add(x.MonthlyAmount)

	r := ExtraPayment{
		EMI:              pos.emi,
		MonthlyExtra:     x.MonthlyAmount,
		EffectivePayment: effective,
		Outstanding:      pos.outstanding,
		RemainingTenure:  pos.remaining,
		TotalCostWithout: costOver(pos.emi, pos.remaining),
	}

	if !x.MonthlyAmount.IsPositive() {
		r.EffectivePayment = pos.emi
		r.NewTenure = pos.remaining
		r.TotalExtraPaid = decimal.Zero
		r.InterestSaved = decimal.Zero
		r.TotalCostWith = r.TotalCostWithout
		r.Verdict = verdict(StatusNoChange, "no extra payment")
		return r
	}

	newTenure, solved := SolveTenure(pos.outstanding, pos.monthlyRate, effective)
	if !solved {
		r.NewTenure = 0
		r.TenureReduced = pos.remaining
		r.TotalExtraPaid = decimal.Zero
		r.InterestSaved = decimal.Zero
		r.TotalCostWith = decimal.Zero
		r.Verdict = verdict(StatusNotViable, "payment does not cover interest on the outstanding balance")
		return r
	}

	r.NewTenure = newTenure
	r.TenureReduced = clampMonths(pos.remaining - newTenure)
	r.TotalExtraPaid = costOver(x.MonthlyAmount, newTenure)
	r.TotalCostWith = costOver(effective, newTenure)
	r.InterestSaved = r.TotalCostWithout.Sub(r.TotalCostWith)
	r.Verdict = ok()
	return r
}
