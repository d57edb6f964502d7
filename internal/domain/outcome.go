package domain

import "fmt"

// Outcome is the result of a booking model mutation that may be refused.
// None of the refusals are errors: the caller decides whether to report,
// log or surface them.
type Outcome int

const (
	// OutcomeSuccess means the mutation was applied.
	OutcomeSuccess Outcome = iota
	// OutcomeCapacityReached means the activity had no free places.
	OutcomeCapacityReached
	// OutcomeInsufficientBalance means the passenger could not pay the
	// tier-adjusted price.
	OutcomeInsufficientBalance
	// OutcomePackageFull means the travel package passenger capacity is used up.
	OutcomePackageFull
)

var outcomeNames = map[Outcome]string{
	OutcomeSuccess:             "success",
	OutcomeCapacityReached:     "capacity_reached",
	OutcomeInsufficientBalance: "insufficient_balance",
	OutcomePackageFull:         "package_full",
}

// String returns the snake_case name used in logs, the ledger and JSON bodies.
func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseOutcome is the inverse of String. Unknown names return false.
func ParseOutcome(s string) (Outcome, bool) {
	for o, name := range outcomeNames {
		if name == s {
			return o, true
		}
	}
	return 0, false
}

// OK reports whether the outcome is OutcomeSuccess.
func (o Outcome) OK() bool { return o == OutcomeSuccess }

// Err maps a refusal to its sentinel error. It returns nil for OutcomeSuccess.
func (o Outcome) Err() error {
	switch o {
	case OutcomeSuccess:
		return nil
	case OutcomeCapacityReached:
		return ErrCapacityReached
	case OutcomeInsufficientBalance:
		return ErrInsufficientBalance
	case OutcomePackageFull:
		return ErrPackageFull
	}
	return ErrValidation
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name produced by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	v, ok := ParseOutcome(string(b))
	if !ok {
		return fmt.Errorf("%w: unknown outcome %q", ErrValidation, string(b))
	}
	*o = v
	return nil
}
