package matcher

import (
	"fmt"

	"github.com/t14raptor/go-match/value"
)

// NoMatchError is returned when no arm matches and there is no else arm, or
// when an irrefutable assignment fails.
type NoMatchError struct {
	Value any
	// Pattern is the failed pattern's source, set by Assign.
	Pattern string
}

func (e *NoMatchError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("%s: pattern %s did not match", value.Inspect(e.Value), e.Pattern)
	}
	return fmt.Sprintf("no pattern matched %s", value.Inspect(e.Value))
}

// MalformedPatternError reports a structurally invalid pattern.
type MalformedPatternError struct {
	Pattern string
	Reason  string
}

func (e *MalformedPatternError) Error() string {
	if e.Pattern == "" {
		return "malformed pattern: " + e.Reason
	}
	return fmt.Sprintf("malformed pattern %s: %s", e.Pattern, e.Reason)
}
