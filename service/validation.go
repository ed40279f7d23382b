package service

import (
	"fmt"

	"loan-prepay/domain"
)

func (v *validator) position(p domain.LoanPosition) {
	v.check(p.Principal > 0, "principal must be greater than zero")
	v.check(p.Principal <= MaxLoanAmount, fmt.Sprintf("principal exceeds the maximum of %.2f", MaxLoanAmount))
	v.rate("annual_rate", p.AnnualRate)
	v.tenure("tenure_months", p.TenureMonths)
	v.check(p.MonthsPaid >= 0, "months_paid must not be negative")
	v.check(p.MonthsPaid < p.TenureMonths, "months_paid must be less than tenure_months")
}

func (v *validator) rate(field string, rate float64) {
	v.check(rate > 0, field+" must be greater than zero")
	v.check(rate <= MaxInterestRate, fmt.Sprintf("%s exceeds the maximum of %.2f%%", field, MaxInterestRate))
}

func (v *validator) tenure(field string, months int) {
	v.check(months >= MinTermMonths, fmt.Sprintf("%s must be at least %d", field, MinTermMonths))
	v.check(months <= MaxTermMonths, fmt.Sprintf("%s exceeds the maximum of %d months", field, MaxTermMonths))
}

func (v *validator) amount(field string, amount float64) {
	v.check(amount >= 0, field+" must not be negative")
	v.check(amount <= MaxLoanAmount, fmt.Sprintf("%s exceeds the maximum of %.2f", field, MaxLoanAmount))
}

func validatePrepayment(in domain.PrepaymentInput) error {
	var v validator
	v.position(in.LoanPosition)
	v.amount("prepayment", in.Prepayment)
	return v.err()
}

func validateExtraPayment(in domain.ExtraPaymentInput) error {
	var v validator
	v.position(in.LoanPosition)
	v.amount("monthly_extra", in.MonthlyExtra)
	return v.err()
}

func validateRefinance(in domain.RefinanceInput) error {
	var v validator
	v.position(in.LoanPosition)
	v.amount("prepayment", in.Prepayment)
	v.rate("new_annual_rate", in.NewAnnualRate)
	v.amount("refinance_cost", in.RefinanceCost)
	v.tenure("new_tenure_months", in.NewTenureMonths)
	return v.err()
}

func validateLoan(in domain.LoanInput) error {
	var v validator
	v.check(in.Amount > 0, "amount must be greater than zero")
	v.check(in.Amount <= MaxLoanAmount, fmt.Sprintf("amount exceeds the maximum of %.2f", MaxLoanAmount))
	v.check(in.InterestRate >= 0, "interest_rate must not be negative")
	v.check(in.InterestRate <= MaxInterestRate, fmt.Sprintf("interest_rate exceeds the maximum of %.2f%%", MaxInterestRate))
	v.tenure("term_months", in.TermMonths)
	return v.err()
}
