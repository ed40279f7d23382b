package service

import (
	"context"

	"loan-prepay/amortization"
	"loan-prepay/domain"
)

// ReduceTenure applies a lump-sum prepayment and keeps the EMI, shortening
// the loan.
func (s *LoanService) ReduceTenure(
	ctx context.Context,
	input domain.PrepaymentInput,
) (domain.TenureReductionResult, error) {
	if err := validatePrepayment(input); err != nil {
		return domain.TenureReductionResult{}, err
	}

	return run(ctx, s, ScenarioReduceTenure, input, func() (domain.TenureReductionResult, string, error) {
		terms, history := toTerms(input.LoanPosition)
		r := amortization.ReduceTenure(terms, history, amortization.Prepayment{Amount: toDecimal(input.Prepayment)})
		return toTenureReductionResult(r), string(r.Verdict.Status), nil
	})
}

// ReduceEMI applies a lump-sum prepayment and keeps the remaining tenure,
// lowering the EMI.
func (s *LoanService) ReduceEMI(
	ctx context.Context,
	input domain.PrepaymentInput,
) (domain.EMIReductionResult, error) {
	if err := validatePrepayment(input); err != nil {
		return domain.EMIReductionResult{}, err
	}

	return run(ctx, s, ScenarioReduceEMI, input, func() (domain.EMIReductionResult, string, error) {
		terms, history := toTerms(input.LoanPosition)
		r := amortization.ReduceEMI(terms, history, amortization.Prepayment{Amount: toDecimal(input.Prepayment)})
		return toEMIReductionResult(r), string(r.Verdict.Status), nil
	})
}

// ExtraPayment adds a fixed amount to every remaining installment.
func (s *LoanService) ExtraPayment(
	ctx context.Context,
	input domain.ExtraPaymentInput,
) (domain.ExtraPaymentResult, error) {
	if err := validateExtraPayment(input); err != nil {
		return domain.ExtraPaymentResult{}, err
	}

	return run(ctx, s, ScenarioExtraPayment, input, func() (domain.ExtraPaymentResult, string, error) {
		terms, history := toTerms(input.LoanPosition)
		r := amortization.ApplyExtraPayment(terms, history, amortization.RecurringExtra{MonthlyAmount: toDecimal(input.MonthlyExtra)})
		return toExtraPaymentResult(r), string(r.Verdict.Status), nil
	})
}

// CompareRefinance compares staying, prepaying, refinancing and both, picks
// the best option and explains the choice.
func (s *LoanService) CompareRefinance(
	ctx context.Context,
	input domain.RefinanceInput,
) (domain.RefinanceResult, error) {
	if err := validateRefinance(input); err != nil {
		return domain.RefinanceResult{}, err
	}

	return run(ctx, s, ScenarioRefinance, input, func() (domain.RefinanceResult, string, error) {
		terms, history := toTerms(input.LoanPosition)
		c := amortization.CompareRefinance(terms, history,
			amortization.Prepayment{Amount: toDecimal(input.Prepayment)},
			amortization.Refinance{
				NewAnnualRatePercent: toDecimal(input.NewAnnualRate),
				Cost:                 toDecimal(input.RefinanceCost),
				NewTenureMonths:      input.NewTenureMonths,
			},
		)

		result := toRefinanceResult(c)
		if s.advisor != nil {
			result.Explanation = s.advisor.ExplainRefinance(ctx, input, result)
		}
		return result, string(c.Best), nil
	})
}
