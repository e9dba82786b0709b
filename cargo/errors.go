package cargo

import "fmt"

// ValidationError reports malformed or out-of-range input. It always names
// the entity and, where known, the delivery period so the caller can trace
// the failure back to a specific cargo decision. It is never recovered
// locally.
type ValidationError struct {
	Entity string // "cargo", "destination", "counterparty", "volume"
	Name   string // offending identifier, if any
	Period string // period label, if known
	Reason string
}

func (e *ValidationError) Error() string {
	msg := "cargo: invalid " + e.Entity
	if e.Name != "" {
		msg += " " + e.Name
	}
	if e.Period != "" {
		msg += " (period " + e.Period + ")"
	}
	return msg + ": " + e.Reason
}

func validationf(entity, name, period, format string, args ...any) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Name:   name,
		Period: period,
		Reason: fmt.Sprintf(format, args...),
	}
}
