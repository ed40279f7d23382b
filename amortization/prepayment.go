package amortization

import (
	"github.com/shopspring/decimal"
)

// TenureReduction is the outcome of a lump-sum prepayment that keeps the EMI
// and shortens the loan.
type TenureReduction struct {
	EMI                    decimal.Decimal
	Outstanding            decimal.Decimal
	BalanceAfterPrepayment decimal.Decimal
	Prepayment             decimal.Decimal
	RemainingTenure        int
	NewTenure              int
	TenureReduced          int
	InterestSaved          decimal.Decimal
	TotalCostWithout       decimal.Decimal
	TotalCostWith          decimal.Decimal
	Verdict                Verdict
}

// ReduceTenure applies a prepayment and keeps paying the original EMI until
// the smaller balance is cleared.
//
// If the prepayment clears the balance NewTenure is 0 and the verdict is
// StatusPaidOff. If the EMI could not amortize the remaining balance the
// verdict is StatusNotViable and NewTenure is 0.
func ReduceTenure(terms LoanTerms, history PaymentHistory, p Prepayment) TenureReduction {
	pos := positionOf(terms, history)
	balanceAfter := pos.outstanding.Sub(p.Amount)

	r := TenureReduction{
		EMI:                    pos.emi,
		Outstanding:            pos.outstanding,
		BalanceAfterPrepayment: balanceAfter,
		Prepayment:             p.Amount,
		RemainingTenure:        pos.remaining,
		TotalCostWithout:       costOver(pos.emi, pos.remaining),
		Verdict:                ok(),
	}

	var newTenure int
	switch {
	case !p.Amount.IsPositive():
		newTenure = pos.remaining
		r.Verdict = verdict(StatusNoChange, "no prepayment")
	case !balanceAfter.IsPositive():
		newTenure = 0
		r.Verdict = verdict(StatusPaidOff, "prepayment clears the outstanding balance")
	default:
		n, solved := SolveTenure(balanceAfter, pos.monthlyRate, pos.emi)
		newTenure = n
		if !solved {
			r.Verdict = verdict(StatusNotViable, "EMI does not cover interest on the remaining balance")
		}
	}

	r.NewTenure = newTenure
	r.TenureReduced = clampMonths(pos.remaining - newTenure)
	r.TotalCostWith = costOver(pos.emi, newTenure).Add(p.Amount)
	r.InterestSaved = r.TotalCostWithout.Sub(r.TotalCostWith)
	return r
}

// EMIReduction is the outcome of a lump-sum prepayment that keeps the
// remaining tenure and lowers the EMI.
type EMIReduction struct {
	OldEMI                 decimal.Decimal
	NewEMI                 decimal.Decimal
	EMIReduction           decimal.Decimal
	Outstanding            decimal.Decimal
	BalanceAfterPrepayment decimal.Decimal
	Prepayment             decimal.Decimal
	RemainingTenure        int
	InterestSaved          decimal.Decimal
	TotalCostWithout       decimal.Decimal
	TotalCostWith          decimal.Decimal
	Verdict                Verdict
}

// ReduceEMI applies a prepayment and re-amortizes the balance over the same
// remaining tenure.
//
// When the prepayment clears the balance, or the balance cannot be
// re-amortized, NewEMI and InterestSaved are zero and TotalCostWith is the
// prepayment alone.
func ReduceEMI(terms LoanTerms, history PaymentHistory, p Prepayment) EMIReduction {
	pos := positionOf(terms, history)
	balanceAfter := pos.outstanding.Sub(p.Amount)

	r := EMIReduction{
		OldEMI:                 pos.emi,
		Outstanding:            pos.outstanding,
		BalanceAfterPrepayment: balanceAfter,
		Prepayment:             p.Amount,
		RemainingTenure:        pos.remaining,
		TotalCostWithout:       costOver(pos.emi, pos.remaining),
	}

	if !balanceAfter.IsPositive() {
		return r.degenerate(verdict(StatusPaidOff, "prepayment paid off the loan"))
	}
	newEMI, defined := installment(balanceAfter, pos.monthlyRate, pos.remaining)
	if !defined {
		return r.degenerate(verdict(StatusNotViable, "balance cannot be re-amortized over the remaining tenure"))
	}

	r.NewEMI = newEMI
	r.EMIReduction = pos.emi.Sub(newEMI)
	r.TotalCostWith = costOver(newEMI, pos.remaining).Add(p.Amount)
	r.InterestSaved = r.TotalCostWithout.Sub(r.TotalCostWith)
	r.Verdict = ok()
	if !p.Amount.IsPositive() {
		r.Verdict = verdict(StatusNoChange, "no prepayment")
	}
	return r
}

func (r EMIReduction) degenerate(v Verdict) EMIReduction {
	r.NewEMI = decimal.Zero
	r.EMIReduction = r.OldEMI
	r.InterestSaved = decimal.Zero
	r.TotalCostWith = r.Prepayment
	r.Verdict = v
	return r
}
