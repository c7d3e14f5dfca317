package auth

// Report is the outcome of one resolution pass.
//
// Valid is true iff Errors is empty and a method was selected without
// internal errors. The absence of any recognizable auth header is not an
// error (the caller may resolve credentials out of band), so an empty
// header map yields Valid=false with an empty error list.
type Report struct {
	// Valid reports whether the selected method can be trusted.
	Valid bool

	// Method is the winning method, nil when none was selected.
	Method *Method

	// SAPURL is the validated base URL for KindJWT and KindBasic.
	// Empty for destination methods, whose URL is resolved externally.
	SAPURL string

	// Errors lists validation failures in the order they were found.
	// Each entry names the offending header and the expectation.
	Errors []string

	// Warnings lists headers that were provided but had no effect,
	// and other non-fatal findings. Warnings never fail a resolution.
	Warnings []string
}

func (r *Report) addError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *Report) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// invalidReport builds a failed Report carrying the given diagnostics.
func invalidReport(errs, warnings []string) *Report {
	return &Report{Errors: errs, Warnings: warnings}
}

// selectedReport builds a successful Report for a clean candidate.
func selectedReport(m *Method, sapURL string, warnings []string) *Report {
	return &Report{
		Valid:    true,
		Method:   m,
		SAPURL:   sapURL,
		Warnings: warnings,
	}
}
