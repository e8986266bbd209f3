package viewmodels

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type OutcomeKind int

const (
	Valid OutcomeKind = iota
	// BindingFailed means the submitted form could not be bound. The form is shown again.
	BindingFailed
	// RuleViolated means the form bound but broke a product rule. Nothing is
	// persisted and the caller is sent back to the listing.
	RuleViolated
)

func (k OutcomeKind) String() string {
	switch k {
	case Valid:
		return "valid"
	case BindingFailed:
		return "binding_failed"
	case RuleViolated:
		return "rule_violated"
	}
	return "unknown"
}

type ValidationOutcome struct {
	Kind   OutcomeKind       `json:"kind"`
	Errors map[string]string `json:"errors,omitempty"`
}

func ValidOutcome() ValidationOutcome {
	return ValidationOutcome{Kind: Valid}
}

func RuleViolation(errs map[string]string) ValidationOutcome {
	return ValidationOutcome{Kind: RuleViolated, Errors: errs}
}

// BindingFailure converts a gin binding error into an outcome, keeping
// per-field messages when the validator reports them.
func BindingFailure(err error) ValidationOutcome {
	errs := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs[fe.Field()] = fe.Error()
		}
	} else if err != nil {
		errs[""] = err.Error()
	}
	return ValidationOutcome{Kind: BindingFailed, Errors: errs}
}

func (o ValidationOutcome) IsValid() bool {
	return o.Kind == Valid
}
