package amortization

// rule is one row of the best-option decision table. Rules are tried in
// order and the first whose when holds decides.
type rule struct {
	name   string
	when   func(c RefinanceComparison) bool
	choose func(c RefinanceComparison) OptionLabel
}

var arbitrationRules = []rule{
	{
		name: "no-prepayment",
		when: func(c RefinanceComparison) bool {
			return c.Prepayment.IsZero()
		},
		choose: func(c RefinanceComparison) OptionLabel {
			if c.rateDrops() && beats(c.RefinanceOnly, c.Stay) {
				return OptionRefinanceOnly
			}
			return OptionStay
		},
	},
	{
		name: "no-rate-benefit",
		when: func(c RefinanceComparison) bool {
			return !c.rateDrops() && c.Prepayment.IsPositive()
		},
		choose: func(c RefinanceComparison) OptionLabel {
			if c.PrepayOnly.Verdict.Viable() && beats(c.PrepayOnly, c.Stay) {
				return OptionPrepayOnly
			}
			return OptionStay
		},
	},
	{
		name: "lowest-total-cost",
		when: func(RefinanceComparison) bool {
			return true
		},
		choose: func(c RefinanceComparison) OptionLabel {
			best := c.Stay
			for _, o := range c.Options()[1:] {
				// Strict comparison keeps the earlier option on a tie:
				// stay, then A, then B, then C.
				if o.TotalCost.LessThan(best.TotalCost) {
					best = o
				}
			}
			return best.Label
		},
	},
}

func (c RefinanceComparison) rateDrops() bool {
	return c.NewRatePercent.LessThan(c.CurrentRatePercent)
}

func beats(o, stay Option) bool {
	return o.TotalCost.LessThan(stay.TotalCost)
}

func arbitrate(c RefinanceComparison) (OptionLabel, string) {
	for _, r := range arbitrationRules {
		if r.when(c) {
			return r.choose(c), r.name
		}
	}
	return OptionStay, ""
}
