package auth

import "github.com/jonwraymond/sapbridge/headers"

// Validator inspects the header map for one authentication method.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Purity: no I/O, no shared state; results depend only on the inputs.
// - Errors: expected validation failures are carried on the Candidate,
//   never returned as Go errors.
type Validator interface {
	// Name returns a unique identifier for this validator.
	Name() string

	// Supports reports whether the method's trigger headers are present.
	Supports(h headers.Headers) bool

	// Validate builds a candidate for the method. sapURL is the
	// already-extracted base URL; destination validators ignore it.
	// Only called when Supports returned true.
	Validate(h headers.Headers, sapURL string) *Candidate
}

// Candidate is the result of one validator run. A populated Method means
// the trigger headers were well-formed; a nil Method with errors means the
// trigger fired but the headers were malformed (a KindNone-priority
// candidate).
type Candidate struct {
	Method   *Method
	Errors   []string
	Warnings []string
}

// Rank returns the candidate's priority rank; errored candidates rank as
// KindNone.
func (c *Candidate) Rank() int {
	if c.Method == nil {
		return KindNone.Rank()
	}
	return c.Method.Kind.Rank()
}

func errorCandidate(errs ...string) *Candidate {
	return &Candidate{Errors: errs}
}
