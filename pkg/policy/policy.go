// Package policy decides whether a diagnostic count is reported, and how.
package policy

import "fmt"

// Outcome is the result of evaluating a count against a threshold.
type Outcome int

// Outcomes.
const (
	// OutcomeNone means nothing is reported.
	OutcomeNone Outcome = iota
	// OutcomeWarn means a warning is recorded.
	OutcomeWarn
	// OutcomeFail means a failure is recorded.
	OutcomeFail
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWarn:
		return "warn"
	case OutcomeFail:
		return "fail"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Exceeds reports whether count is strictly greater than threshold.
func Exceeds(count, threshold int) bool {
	return count > threshold
}

// ShouldRender reports whether a lint pass has anything to show.
// A negative threshold never renders an empty set.
func ShouldRender(count, threshold int) bool {
	return count > 0 && Exceeds(count, threshold)
}

// Decide maps a count onto an outcome. Strict escalates to a failure.
func Decide(count, threshold int, strict bool) Outcome {
	switch {
	case !Exceeds(count, threshold):
		return OutcomeNone
	case strict:
		return OutcomeFail
	default:
		return OutcomeWarn
	}
}

// Summary is the single message recorded when a count exceeds the threshold.
func Summary(count int) string {
	return fmt.Sprintf("%d Pyright type checking issues found", count)
}
