package service

import (
	"errors"
	"strings"
)

// ErrUnavailable wraps failures of a backend the service depends on.
var ErrUnavailable = errors.New("service unavailable")

// ValidationError lists every input problem found in a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

type validator struct {
	problems []string
}

func (v *validator) check(ok bool, problem string) {
	if !ok {
		v.problems = append(v.problems, problem)
	}
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}
