package amortization

import (
	"github.com/shopspring/decimal"
)

// OptionLabel names one of the four strategies compared by CompareRefinance.
type OptionLabel string

const (
	OptionStay               OptionLabel = "stay"
	OptionPrepayOnly         OptionLabel = "A"
	OptionRefinanceOnly      OptionLabel = "B"
	OptionPrepayAndRefinance OptionLabel = "C"
)

// Option is the projected cost of one strategy from the decision point on.
type Option struct {
	Label        OptionLabel
	EMI          decimal.Decimal
	TenureMonths int
	TotalCost    decimal.Decimal
	// Savings is Stay's total cost minus this option's.
	Savings decimal.Decimal
	Verdict Verdict
}

// RefinanceComparison is the four-way comparison with the chosen option.
type RefinanceComparison struct {
	EMI             decimal.Decimal
	Outstanding     decimal.Decimal
	RemainingTenure int
	AmountPaid      decimal.Decimal

	CurrentRatePercent decimal.Decimal
	NewRatePercent     decimal.Decimal
	Prepayment         decimal.Decimal
	RefinanceCost      decimal.Decimal

	Stay               Option
	PrepayOnly         Option
	RefinanceOnly      Option
	PrepayAndRefinance Option

	Best       OptionLabel
	MaxSavings decimal.Decimal
	// Rule is the name of the arbitration rule that picked Best.
	Rule string
}

// Options returns the four options in tie-break order.
func (c RefinanceComparison) Options() []Option {
	return []Option{c.Stay, c.PrepayOnly, c.RefinanceOnly, c.PrepayAndRefinance}
}

// Option returns the option with the given label.
func (c RefinanceComparison) Option(label OptionLabel) Option {
	switch label {
	case OptionPrepayOnly:
		return c.PrepayOnly
	case OptionRefinanceOnly:
		return c.RefinanceOnly
	case OptionPrepayAndRefinance:
		return c.PrepayAndRefinance
	}
	return c.Stay
}

// CompareRefinance projects staying on the current loan, prepaying only,
// refinancing only and prepaying then refinancing, and picks the best of
// them with the rules in arbitrationRules.
func CompareRefinance(terms LoanTerms, history PaymentHistory, p Prepayment, refi Refinance) RefinanceComparison {
	pos := positionOf(terms, history)

	c := RefinanceComparison{
		EMI:                pos.emi,
		Outstanding:        pos.outstanding,
		RemainingTenure:    pos.remaining,
		AmountPaid:         pos.paidSoFar,
		CurrentRatePercent: terms.AnnualRatePercent,
		NewRatePercent:     refi.NewAnnualRatePercent,
		Prepayment:         p.Amount,
		RefinanceCost:      refi.Cost,
	}

	c.Stay = Option{
		Label:        OptionStay,
		EMI:          pos.emi,
		TenureMonths: pos.remaining,
		TotalCost:    costOver(pos.emi, pos.remaining),
		Verdict:      ok(),
	}
	c.PrepayOnly = prepayOnly(pos, c.Stay, p)
	c.RefinanceOnly = refinanceOnly(pos, c.Stay, terms, refi)
	c.PrepayAndRefinance = prepayAndRefinance(pos, c.Stay, c.RefinanceOnly, terms, p, refi)

	for _, o := range []*Option{&c.Stay, &c.PrepayOnly, &c.RefinanceOnly, &c.PrepayAndRefinance} {
		o.Savings = c.Stay.TotalCost.Sub(o.TotalCost)
	}

	c.Best, c.Rule = arbitrate(c)
	c.MaxSavings = c.Stay.TotalCost.Sub(c.Option(c.Best).TotalCost)
	return c
}

// stayAs copies Stay's numbers under another label.
func stayAs(stay Option, label OptionLabel, v Verdict) Option {
	stay.Label = label
	stay.Verdict = v
	return stay
}

func prepayOnly(pos position, stay Option, p Prepayment) Option {
	switch {
	case !p.Amount.IsPositive():
		return stayAs(stay, OptionPrepayOnly, verdict(StatusNoChange, "no prepayment, same as staying"))
	case p.Amount.GreaterThanOrEqual(pos.outstanding):
		return stayAs(stay, OptionPrepayOnly, verdict(StatusExceedsBalance, "prepayment exceeds balance"))
	}

	newTenure, solved := SolveTenure(pos.outstanding.Sub(p.Amount), pos.monthlyRate, pos.emi)
	if !solved {
		return stayAs(stay, OptionPrepayOnly, verdict(StatusNotViable, "Invalid scenario"))
	}
	return Option{
		Label:        OptionPrepayOnly,
		EMI:          pos.emi,
		TenureMonths: newTenure,
		TotalCost:    costOver(pos.emi, newTenure).Add(p.Amount),
		Verdict:      ok(),
	}
}

func refinanceOnly(pos position, stay Option, terms LoanTerms, refi Refinance) Option {
	principal := pos.outstanding.Add(refi.Cost)
	emi, defined := installment(principal, MonthlyRate(refi.NewAnnualRatePercent), refi.NewTenureMonths)
	if !defined {
		return stayAs(stay, OptionRefinanceOnly, verdict(StatusNotViable, "Invalid scenario"))
	}

	o := Option{
		Label:        OptionRefinanceOnly,
		EMI:          emi,
		TenureMonths: refi.NewTenureMonths,
		TotalCost:    costOver(emi, refi.NewTenureMonths),
		Verdict:      ok(),
	}
	if !refinanceBeneficial(terms, refi, o, stay) {
		o.Verdict = verdict(StatusNoBenefit, "no benefit")
	}
	return o
}

func prepayAndRefinance(pos position, stay, refinanced Option, terms LoanTerms, p Prepayment, refi Refinance) Option {
	if p.Amount.IsZero() {
		refinanced.Label = OptionPrepayAndRefinance
		refinanced.Verdict = verdict(StatusSameAsRefinance, "no prepayment, same as refinance only")
		return refinanced
	}

	principal := pos.outstanding.Sub(p.Amount).Add(refi.Cost)
	if p.Amount.GreaterThanOrEqual(pos.outstanding) || !principal.IsPositive() {
		return stayAs(stay, OptionPrepayAndRefinance, verdict(StatusNotViable, "Invalid scenario"))
	}
	emi, defined := installment(principal, MonthlyRate(refi.NewAnnualRatePercent), refi.NewTenureMonths)
	if !defined {
		return stayAs(stay, OptionPrepayAndRefinance, verdict(StatusNotViable, "Invalid scenario"))
	}

	o := Option{
		Label:        OptionPrepayAndRefinance,
		EMI:          emi,
		TenureMonths: refi.NewTenureMonths,
		TotalCost:    costOver(emi, refi.NewTenureMonths).Add(p.Amount),
		Verdict:      ok(),
	}
	if !refinanceBeneficial(terms, refi, o, stay) {
		o.Verdict = verdict(StatusNoBenefit, "no benefit")
	}
	return o
}

// refinanceBeneficial holds when the new rate is lower and the option costs
// less than staying.
func refinanceBeneficial(terms LoanTerms, refi Refinance, o, stay Option) bool {
	return refi.NewAnnualRatePercent.LessThan(terms.AnnualRatePercent) &&
		o.TotalCost.LessThan(stay.TotalCost)
}
