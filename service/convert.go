package service

import (
	"github.com/shopspring/decimal"

	"loan-prepay/amortization"
	"loan-prepay/domain"
)

// roundTo2Decimals converts an engine amount to a float rounded to cents.
func roundTo2Decimals(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

func toDecimal(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

func toTerms(p domain.LoanPosition) (amortization.LoanTerms, amortization.PaymentHistory) {
	return amortization.LoanTerms{
			Principal:         toDecimal(p.Principal),
			AnnualRatePercent: toDecimal(p.AnnualRate),
			TenureMonths:      p.TenureMonths,
		}, amortization.PaymentHistory{
			MonthsPaid: p.MonthsPaid,
		}
}

func toOutcome(v amortization.Verdict) domain.Outcome {
	return domain.Outcome{
		Status: string(v.Status),
		Reason: v.Reason,
		Viable: v.Viable(),
	}
}

func toTenureReductionResult(r amortization.TenureReduction) domain.TenureReductionResult {
	return domain.TenureReductionResult{
		EMI:                    roundTo2Decimals(r.EMI),
		OutstandingPrincipal:   roundTo2Decimals(r.Outstanding),
		BalanceAfterPrepayment: roundTo2Decimals(r.BalanceAfterPrepayment),
		RemainingTenure:        r.RemainingTenure,
		NewTenureAfterPrepay:   r.NewTenure,
		TenureReduced:          r.TenureReduced,
		InterestSaved:          roundTo2Decimals(r.InterestSaved),
		TotalCostWithoutPrepay: roundTo2Decimals(r.TotalCostWithout),
		TotalCostWithPrepay:    roundTo2Decimals(r.TotalCostWith),
		Outcome:                toOutcome(r.Verdict),
	}
}

func toEMIReductionResult(r amortization.EMIReduction) domain.EMIReductionResult {
	return domain.EMIReductionResult{
		OldEMI:                 roundTo2Decimals(r.OldEMI),
		NewEMI:                 roundTo2Decimals(r.NewEMI),
		EMIReduction:           roundTo2Decimals(r.EMIReduction),
		OutstandingPrincipal:   roundTo2Decimals(r.Outstanding),
		BalanceAfterPrepayment: roundTo2Decimals(r.BalanceAfterPrepayment),
		RemainingTenure:        r.RemainingTenure,
		InterestSaved:          roundTo2Decimals(r.InterestSaved),
		TotalCostWithoutPrepay: roundTo2Decimals(r.TotalCostWithout),
		TotalCostWithPrepay:    roundTo2Decimals(r.TotalCostWith),
		Outcome:                toOutcome(r.Verdict),
	}
}

func toExtraPaymentResult(r amortization.ExtraPayment) domain.ExtraPaymentResult {
	return domain.ExtraPaymentResult{
		EMI:                   roundTo2Decimals(r.EMI),
		MonthlyExtra:          roundTo2Decimals(r.MonthlyExtra),
		EffectivePayment:      roundTo2Decimals(r.EffectivePayment),
		OutstandingPrincipal:  roundTo2Decimals(r.Outstanding),
		RemainingTenure:       r.RemainingTenure,
		NewTenure:             r.NewTenure,
		TenureReduced:         r.TenureReduced,
		TotalExtraPaid:        roundTo2Decimals(r.TotalExtraPaid),
		InterestSaved:         roundTo2Decimals(r.InterestSaved),
		TotalCostWithoutExtra: roundTo2Decimals(r.TotalCostWithout),
		TotalCostWithExtra:    roundTo2Decimals(r.TotalCostWith),
		Outcome:               toOutcome(r.Verdict),
	}
}

func toRefinanceOption(o amortization.Option) domain.RefinanceOption {
	return domain.RefinanceOption{
		Label:        string(o.Label),
		EMI:          roundTo2Decimals(o.EMI),
		TenureMonths: o.TenureMonths,
		TotalCost:    roundTo2Decimals(o.TotalCost),
		Savings:      roundTo2Decimals(o.Savings),
		Outcome:      toOutcome(o.Verdict),
	}
}

func toRefinanceResult(c amortization.RefinanceComparison) domain.RefinanceResult {
	return domain.RefinanceResult{
		EMI:                  roundTo2Decimals(c.EMI),
		OutstandingPrincipal: roundTo2Decimals(c.Outstanding),
		RemainingTenure:      c.RemainingTenure,
		AmountPaid:           roundTo2Decimals(c.AmountPaid),
		Stay:                 toRefinanceOption(c.Stay),
		PrepayOnly:           toRefinanceOption(c.PrepayOnly),
		RefinanceOnly:        toRefinanceOption(c.RefinanceOnly),
		PrepayAndRefinance:   toRefinanceOption(c.PrepayAndRefinance),
		BestOption:           string(c.Best),
		MaxSavings:           roundTo2Decimals(c.MaxSavings),
		DecisionRule:         c.Rule,
	}
}
