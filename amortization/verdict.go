package amortization

// Status tags the outcome of a scenario so a degenerate result cannot be
// mistaken for a real one.
type Status string

const (
	StatusOK              Status = "ok"
	StatusNoChange        Status = "no_change"
	StatusPaidOff         Status = "paid_off"
	StatusExceedsBalance  Status = "exceeds_balance"
	StatusNotViable       Status = "not_viable"
	StatusNoBenefit       Status = "no_benefit"
	StatusSameAsRefinance Status = "same_as_refinance"
)

// Verdict pairs a Status with a short human-readable reason.
type Verdict struct {
	Status Status
	Reason string
}

// Viable reports whether the numbers next to the verdict describe a strategy
// that actually runs its course.
func (v Verdict) Viable() bool {
	switch v.Status {
	case StatusOK, StatusNoChange, StatusPaidOff, StatusNoBenefit, StatusSameAsRefinance:
		return true
	}
	return false
}

func ok() Verdict {
	return Verdict{Status: StatusOK}
}

func verdict(s Status, reason string) Verdict {
	return Verdict{Status: s, Reason: reason}
}
