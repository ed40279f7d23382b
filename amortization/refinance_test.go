package amortization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refinanceAt(rate string, cost string, months int) Refinance {
	return Refinance{NewAnnualRatePercent: dec(rate), Cost: dec(cost), NewTenureMonths: months}
}

func TestCompareRefinance_RefinanceOnlyWins(t *testing.T) {
	terms, history := homeLoan()

	c := CompareRefinance(terms, history, Prepayment{Amount: decimal.Zero}, refinanceAt("7.5", "50000", 180))

	assert.Equal(t, OptionRefinanceOnly, c.Best)
	assert.Equal(t, "no-prepayment", c.Rule)
	assert.True(t, c.MaxSavings.IsPositive())
	assert.True(t, c.MaxSavings.Equal(c.Stay.TotalCost.Sub(c.RefinanceOnly.TotalCost)))
	assert.True(t, c.MaxSavings.Equal(c.RefinanceOnly.Savings))
	assertClose(t, dec("41579.77"), c.RefinanceOnly.EMI, "0.01")
	assertClose(t, dec("8097533.60"), c.Stay.TotalCost, "0.01")
	assert.True(t, c.AmountPaid.Equal(c.EMI.Mul(decimal.NewFromInt(60))))

	assert.Equal(t, StatusNoChange, c.PrepayOnly.Verdict.Status)
	assert.True(t, c.PrepayOnly.TotalCost.Equal(c.Stay.TotalCost))
	assert.Equal(t, StatusSameAsRefinance, c.PrepayAndRefinance.Verdict.Status)
	assert.True(t, c.PrepayAndRefinance.TotalCost.Equal(c.RefinanceOnly.TotalCost))
	assert.Equal(t, OptionPrepayAndRefinance, c.PrepayAndRefinance.Label)
}

func TestCompareRefinance_NoPrepaymentHigherRate(t *testing.T) {
	terms, history := homeLoan()

	for _, rate := range []string{"9", "10.5"} {
		c := CompareRefinance(terms, history, Prepayment{Amount: decimal.Zero}, refinanceAt(rate, "0", 180))

		assert.Equal(t, OptionStay, c.Best, "new rate %s", rate)
		assert.True(t, c.MaxSavings.IsZero())
		assert.Equal(t, StatusNoBenefit, c.RefinanceOnly.Verdict.Status)
	}
}

func TestCompareRefinance_NoPrepaymentLowerRateButCostly(t *testing.T) {
	terms, history := homeLoan()

	// Stretching to 300 months at 8.5% costs more in total than staying.
	c := CompareRefinance(terms, history, Prepayment{Amount: decimal.Zero}, refinanceAt("8.5", "50000", 300))

	assert.Equal(t, OptionStay, c.Best)
	assert.Equal(t, StatusNoBenefit, c.RefinanceOnly.Verdict.Status)
}

func TestCompareRefinance_PrepaymentWithoutRateBenefit(t *testing.T) {
	terms, history := homeLoan()

	for _, rate := range []string{"9", "11"} {
		c := CompareRefinance(terms, history, Prepayment{Amount: dec("500000")}, refinanceAt(rate, "0", 60))

		assert.Equal(t, "no-rate-benefit", c.Rule)
		assert.Contains(t, []OptionLabel{OptionStay, OptionPrepayOnly}, c.Best)
		assert.Equal(t, OptionPrepayOnly, c.Best, "new rate %s", rate)
		assert.Equal(t, 143, c.PrepayOnly.TenureMonths)
		assertClose(t, dec("6933040.58"), c.PrepayOnly.TotalCost, "0.01")
	}
}

func TestCompareRefinance_PrepaymentExceedsBalance(t *testing.T) {
	terms, history := homeLoan()

	c := CompareRefinance(terms, history, Prepayment{Amount: dec("9000000")}, refinanceAt("9.5", "0", 120))

	assert.Equal(t, StatusExceedsBalance, c.PrepayOnly.Verdict.Status)
	assert.False(t, c.PrepayOnly.Verdict.Viable())
	assert.True(t, c.PrepayOnly.TotalCost.Equal(c.Stay.TotalCost))
	assert.Equal(t, StatusNotViable, c.PrepayAndRefinance.Verdict.Status)
	assert.Equal(t, OptionStay, c.Best)
}

func TestCompareRefinance_LowestCostPrepayOnly(t *testing.T) {
	terms, history := homeLoan()

	c := CompareRefinance(terms, history, Prepayment{Amount: dec("500000")}, refinanceAt("7.5", "50000", 180))

	assert.Equal(t, "lowest-total-cost", c.Rule)
	assert.Equal(t, OptionPrepayOnly, c.Best)
	assertClose(t, dec("7150047.76"), c.PrepayAndRefinance.TotalCost, "0.01")
	assert.True(t, c.MaxSavings.Equal(c.PrepayOnly.Savings))
}

func TestCompareRefinance_LowestCostCombined(t *testing.T) {
	terms, history := homeLoan()

	c := CompareRefinance(terms, history, Prepayment{Amount: dec("500000")}, refinanceAt("7.5", "50000", 120))

	assert.Equal(t, "lowest-total-cost", c.Rule)
	assert.Equal(t, OptionPrepayAndRefinance, c.Best)
	assertClose(t, dec("6176820.64"), c.PrepayAndRefinance.TotalCost, "0.01")
	assertClose(t, dec("6389031.25"), c.RefinanceOnly.TotalCost, "0.01")
	for _, o := range c.Options() {
		assert.True(t, c.PrepayAndRefinance.TotalCost.LessThanOrEqual(o.TotalCost), "option %s", o.Label)
	}
}

func TestCompareRefinance_CapitalizedBalanceNotPositive(t *testing.T) {
	terms, history := homeLoan()
	balance := Outstanding(terms.Principal, terms.AnnualRatePercent, terms.TenureMonths, history.MonthsPaid)

	c := CompareRefinance(terms, history, Prepayment{Amount: balance}, refinanceAt("7", "0", 120))

	assert.Equal(t, StatusNotViable, c.PrepayAndRefinance.Verdict.Status)
	assert.Equal(t, "Invalid scenario", c.PrepayAndRefinance.Verdict.Reason)
	assert.True(t, c.PrepayAndRefinance.TotalCost.Equal(c.Stay.TotalCost))
}

func TestArbitrate_TieBreakOrder(t *testing.T) {
	cost := dec("1000")
	option := func(label OptionLabel, total decimal.Decimal) Option {
		return Option{Label: label, TotalCost: total, Verdict: ok()}
	}

	tests := []struct {
		name     string
		a, b, c  decimal.Decimal
		expected OptionLabel
	}{
		{"all equal keeps stay", cost, cost, cost, OptionStay},
		{"A ties B", dec("900"), dec("900"), cost, OptionPrepayOnly},
		{"B ties C", cost, dec("800"), dec("800"), OptionRefinanceOnly},
		{"C strictly lowest", dec("900"), dec("850"), dec("849.99"), OptionPrepayAndRefinance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RefinanceComparison{
				CurrentRatePercent: dec("9"),
				NewRatePercent:     dec("8"),
				Prepayment:         dec("1"),
				Stay:               option(OptionStay, cost),
				PrepayOnly:         option(OptionPrepayOnly, tt.a),
				RefinanceOnly:      option(OptionRefinanceOnly, tt.b),
				PrepayAndRefinance: option(OptionPrepayAndRefinance, tt.c),
			}

			best, rule := arbitrate(c)

			require.Equal(t, "lowest-total-cost", rule)
			assert.Equal(t, tt.expected, best)
		})
	}
}

func TestArbitrate_RuleTableOrder(t *testing.T) {
	names := make([]string, 0, len(arbitrationRules))
	for _, r := range arbitrationRules {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{"no-prepayment", "no-rate-benefit", "lowest-total-cost"}, names)
}
