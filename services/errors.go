package services

import "fmt"

// GatewayError means the LLM gateway was unreachable or answered with a
// non-success status. The upstream status and body ride along so the
// caller can log them; the user just sees a retry-prompting message.
type GatewayError struct {
	Status int
	Body   string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway error: %v", e.Err)
	}
	return fmt.Sprintf("gateway error %d: %s", e.Status, e.Body)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ParseError means the gateway response text contained no extractable
// JSON span, or the span did not parse. Raw carries the offending text
// for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid response format: %v", e.Err)
	}
	return "invalid response format: no JSON found"
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError means parsed JSON was not a non-empty array of
// plausible food items.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid food data: %s", e.Reason)
}

// UsageLimitError means the usage gate denied the request.
type UsageLimitError struct {
	Reason            string
	HoursUntilNextUse float64
}

func (e *UsageLimitError) Error() string {
	return fmt.Sprintf("%s: next free analysis in %.1f hours", e.Reason, e.HoursUntilNextUse)
}

// PersistenceError means the analysis succeeded but writing to the
// diary failed. Surfaced distinctly so the user knows the meal was
// analyzed but not saved.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
