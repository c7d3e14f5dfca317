package auth

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/sapbridge/headers"
)

// Resolver runs the four method validators in strict precedence order and
// selects the single winning method: SAP destination > MCP destination >
// direct JWT > basic. The zero value is not usable; call NewResolver.
//
// Contract:
// - Concurrency: safe for concurrent use; Resolve shares no state across
//   calls.
// - Purity: no I/O; identical header maps yield identical reports.
type Resolver struct {
	sap   Validator
	mcp   Validator
	jwt   Validator
	basic Validator
}

// NewResolver creates a resolver with the four standard validators.
func NewResolver() *Resolver {
	return &Resolver{
		sap:   NewSAPDestinationValidator(),
		mcp:   NewMCPDestinationValidator(),
		jwt:   NewJWTValidator(),
		basic: NewBasicValidator(),
	}
}

var defaultResolver = NewResolver()

// Resolve runs the default resolver against the header map.
func Resolve(h headers.Headers) *Report {
	return defaultResolver.Resolve(h)
}

// Resolve inspects the header map and returns the resolution report.
func (r *Resolver) Resolve(h headers.Headers) *Report {
	// Destination-service method: short-circuits everything else. It can
	// never be displaced and never coexists with another selection.
	if r.sap.Supports(h) {
		return shortCircuit(r.sap.Validate(h, ""))
	}

	// Candidate base URL for the remaining methods.
	sapURL, _ := headers.Get(h, headers.URL)

	// MCP destination: same short-circuit, but a present URL header is
	// tolerated and warned about (URL was historically optional-but-
	// ignored for this method).
	if r.mcp.Supports(h) {
		return shortCircuit(r.mcp.Validate(h, sapURL))
	}

	rep := &Report{}

	// No destination matched; without a base URL there is nothing left
	// to validate. Silence is not an error: the caller may fall back to
	// non-header configuration.
	if sapURL == "" {
		return rep
	}

	if !headers.IsValidURL(sapURL) {
		rep.addError(fmt.Sprintf("%s header is not a valid http(s) URL: %q",
			headers.URL, sapURL))
		return rep
	}
	rep.SAPURL = sapURL

	rawAuthType, _ := headers.Get(h, headers.AuthType)
	authType := strings.ToLower(rawAuthType)

	// Basic-pair cross-checks, run regardless of which method wins: the
	// login and password headers travel together or not at all.
	_, hasLogin := headers.Raw(h, headers.Login)
	_, hasPassword := headers.Raw(h, headers.Password)
	pairErrored := false
	switch {
	case hasLogin != hasPassword:
		missing, present := headers.Password, headers.Login
		if hasPassword {
			missing, present = headers.Login, headers.Password
		}
		rep.addError(fmt.Sprintf("%s header is required when %s is set", missing, present))
		pairErrored = true
	case hasLogin && authType != "basic":
		rep.addWarning(fmt.Sprintf("%s and %s headers are ignored unless %s is basic",
			headers.Login, headers.Password, headers.AuthType))
	case !hasLogin && authType == "basic":
		rep.addError(fmt.Sprintf("%s is basic but %s and %s headers are missing",
			headers.AuthType, headers.Login, headers.Password))
		pairErrored = true
	}

	// Declared auth type. A missing auth type is reported only when the
	// pair check above did not already flag the same gap.
	switch authType {
	case "":
		if !pairErrored {
			rep.addError(fmt.Sprintf("%s header is required when no destination header is set",
				headers.AuthType))
		}
	case "jwt", "xsuaa", "basic":
	default:
		rep.addError(fmt.Sprintf("%s header must be one of: jwt, xsuaa, basic (got %q)",
			headers.AuthType, rawAuthType))
	}

	// Method validators, mutually exclusive by auth type.
	var candidates []*Candidate
	switch authType {
	case "jwt", "xsuaa":
		if r.jwt.Supports(h) {
			candidates = append(candidates, r.jwt.Validate(h, sapURL))
		}
	case "basic":
		if r.basic.Supports(h) {
			candidates = append(candidates, r.basic.Validate(h, sapURL))
		}
	}

	// Highest rank wins. A same-rank tie keeps the first candidate
	// produced and says so.
	var winner *Candidate
	for _, c := range candidates {
		switch {
		case winner == nil || c.Rank() > winner.Rank():
			winner = c
		case c.Rank() == winner.Rank():
			rep.addWarning(fmt.Sprintf(
				"multiple authentication methods share priority rank %d; keeping the first",
				c.Rank()))
		}
	}

	if winner == nil {
		// Nothing was produced: name what the declared auth type still
		// needs, unless an earlier check already reported that exact gap.
		switch authType {
		case "jwt", "xsuaa":
			rep.addError(fmt.Sprintf("jwt authentication requires a %s, %s or %s header",
				headers.Destination, headers.MCPDestination, headers.JWTToken))
		case "basic":
			if !pairErrored {
				rep.addError(fmt.Sprintf("basic authentication requires both %s and %s headers",
					headers.Login, headers.Password))
			}
		}
		return rep
	}

	rep.Errors = append(rep.Errors, winner.Errors...)
	rep.Warnings = append(rep.Warnings, winner.Warnings...)
	if len(rep.Errors) == 0 && winner.Method != nil {
		rep.Valid = true
		rep.Method = winner.Method
	}
	return rep
}

// shortCircuit converts a destination candidate into its terminal report.
// Destination URLs are resolved externally, so SAPURL stays empty.
func shortCircuit(c *Candidate) *Report {
	if len(c.Errors) > 0 {
		return invalidReport(c.Errors, c.Warnings)
	}
	return selectedReport(c.Method, "", c.Warnings)
}
