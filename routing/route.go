package routing

import (
	"fmt"

	"github.com/jonwraymond/sapbridge/headers"
)

// authHeaders are the headers whose presence marks a request as carrying
// authentication intent. Used by the direct-MCP predicate.
var authHeaders = []string{
	headers.Destination,
	headers.MCPDestination,
	headers.URL,
	headers.AuthType,
	headers.Login,
	headers.Password,
	headers.JWTToken,
}

// Route reports which routing-intent headers a request carries. Values
// are trimmed; presence flags reflect the raw headers. Built fresh per
// call, never mutated afterwards.
type Route struct {
	// BTPDestination, MCPDestination and MCPURL hold the trimmed header
	// values; empty when the header was absent or blank.
	BTPDestination string
	MCPDestination string
	MCPURL         string

	// Problems lists syntactic findings (blank names, malformed URL).
	// Classification never fails; problems are informational.
	Problems []string

	hasBTP     bool
	hasMCPDest bool
	hasMCPURL  bool
	hasAuth    bool
}

// Classify inspects the header map and returns the routing report.
func Classify(h headers.Headers) *Route {
	r := &Route{}

	r.BTPDestination, r.hasBTP = wellFormedName(h, headers.BTPDestination, &r.Problems)
	r.MCPDestination, r.hasMCPDest = wellFormedName(h, headers.MCPDestination, &r.Problems)

	if raw, ok := headers.Raw(h, headers.MCPURL); ok {
		r.hasMCPURL = true
		value, _ := headers.Get(h, headers.MCPURL)
		switch {
		case value == "":
			r.Problems = append(r.Problems, fmt.Sprintf("%s header is empty", headers.MCPURL))
		case !headers.IsValidURL(value):
			r.Problems = append(r.Problems, fmt.Sprintf(
				"%s header is not a valid http(s) URL: %q", headers.MCPURL, raw))
		default:
			r.MCPURL = value
		}
	}

	for _, name := range authHeaders {
		if _, ok := headers.Raw(h, name); ok {
			r.hasAuth = true
			break
		}
	}

	return r
}

// IsProxy reports whether any routing-intent header is present, meaning
// the request should be forwarded through the proxy path.
func (r *Route) IsProxy() bool {
	return r.hasBTP || r.hasMCPDest || r.hasMCPURL
}

// IsDirectMCP reports whether the request targets the MCP server
// directly: at least one authentication-relevant header is present and
// neither proxy-only header (BTP destination, MCP URL) was sent.
func (r *Route) IsDirectMCP() bool {
	return r.hasAuth && !r.hasBTP && !r.hasMCPURL
}

// wellFormedName extracts a name-shaped routing header, recording a
// problem when it was sent blank.
func wellFormedName(h headers.Headers, name string, problems *[]string) (string, bool) {
	if _, ok := headers.Raw(h, name); !ok {
		return "", false
	}
	value, _ := headers.Get(h, name)
	if value == "" {
		*problems = append(*problems, fmt.Sprintf("%s header is empty", name))
		return "", true
	}
	return value, true
}
