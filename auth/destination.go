package auth

import (
	"fmt"

	"github.com/jonwraymond/sapbridge/headers"
)

// destinationValidator validates the two destination-based methods. Both
// trigger on a single header naming an externally-resolved destination;
// they differ only in the trigger header, the produced kind, and whether
// inline credentials may accompany the destination.
type destinationValidator struct {
	name        string
	trigger     string
	kind        MethodKind
	credentials bool
}

// NewSAPDestinationValidator creates the validator for the
// destination-service method, triggered by the x-sap-destination header.
func NewSAPDestinationValidator() Validator {
	return &destinationValidator{
		name:        "sap_destination",
		trigger:     headers.Destination,
		kind:        KindSAPDestination,
		credentials: true,
	}
}

// NewMCPDestinationValidator creates the validator for the MCP destination
// method, triggered by the x-mcp-destination header.
func NewMCPDestinationValidator() Validator {
	return &destinationValidator{
		name:    "mcp_destination",
		trigger: headers.MCPDestination,
		kind:    KindMCPDestination,
	}
}

// Name returns the validator identifier.
func (v *destinationValidator) Name() string {
	return v.name
}

// Supports reports whether the trigger header was sent with a non-empty
// raw value. The raw value is checked untrimmed so that "sent but blank"
// reaches Validate and is reported there.
func (v *destinationValidator) Supports(h headers.Headers) bool {
	raw, ok := headers.Raw(h, v.trigger)
	return ok && raw != ""
}

// Validate builds the destination candidate. The base URL is forced empty:
// destination methods resolve their URL externally from the destination
// name. A warning is attached for every header that is meaningless for
// this method but was sent anyway.
func (v *destinationValidator) Validate(h headers.Headers, _ string) *Candidate {
	dest, _ := headers.Get(h, v.trigger)
	if dest == "" {
		return errorCandidate(fmt.Sprintf("%s header is empty", v.trigger))
	}

	m := &Method{Kind: v.kind, Destination: dest}
	if client, ok := headers.Get(h, headers.Client); ok && client != "" {
		m.Client = client
	}
	if v.credentials {
		if login, ok := headers.Get(h, headers.Login); ok && login != "" {
			m.Username = login
		}
		if password, ok := headers.Get(h, headers.Password); ok && password != "" {
			m.Password = password
		}
	}

	c := &Candidate{Method: m}
	for _, ignored := range []string{headers.URL, headers.JWTToken, headers.AuthType} {
		if _, ok := headers.Raw(h, ignored); ok {
			c.Warnings = append(c.Warnings,
				fmt.Sprintf("%s header is ignored when %s is set", ignored, v.trigger))
		}
	}
	return c
}

// Ensure destinationValidator implements Validator
var _ Validator = (*destinationValidator)(nil)
