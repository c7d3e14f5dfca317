package headers

import (
	"net/url"
	"strings"
)

// Header names recognized by the resolution engine, grouped by concern.
// Names are stored lower-cased; Get and Raw also probe the caller's
// original casing, so callers with canonicalized maps need no conversion.
const (
	// Destination selects the destination-service entry whose
	// credentials and base URL are resolved by an external broker.
	Destination = "x-sap-destination"

	// MCPDestination selects a destination for MCP-routed requests.
	// Doubles as a routing-intent header (see the routing package).
	MCPDestination = "x-mcp-destination"

	// URL is the base URL of the target system for non-destination
	// methods. Destination methods resolve their URL externally and
	// ignore this header.
	URL = "x-sap-url"

	// AuthType declares the authentication method for non-destination
	// requests. Allowed values: "jwt", "xsuaa", "basic" (case-insensitive).
	AuthType = "x-sap-auth-type"

	// Client is the optional SAP client number (mandt).
	Client = "x-sap-client"

	// Login and Password carry basic-auth credentials. Both or neither.
	Login    = "x-sap-login"
	Password = "x-sap-password"

	// JWTToken carries a bearer token for direct JWT authentication.
	JWTToken = "x-sap-jwt-token"

	// RefreshToken optionally accompanies JWTToken.
	RefreshToken = "x-sap-refresh-token"

	// UAA endpoint triple for token refresh. Each field has two
	// accepted spellings; the x-sap-* form wins when both are sent.
	UAAURL           = "x-sap-uaa-url"
	UAAURLAlias      = "x-uaa-url"
	UAAClientID      = "x-sap-uaa-clientid"
	UAAClientIDAlias = "x-uaa-client-id"
	UAASecret        = "x-sap-uaa-clientsecret"
	UAASecretAlias   = "x-uaa-client-secret"

	// Routing-intent headers consumed by the routing package.
	BTPDestination = "x-btp-destination"
	MCPURL         = "x-mcp-url"
)

// Headers is a case-tolerant header collection. Values hold repeated
// headers in order; lookups use the first entry.
type Headers map[string][]string

// FromMap converts a single-valued header map into a Headers collection.
func FromMap(m map[string]string) Headers {
	h := make(Headers, len(m))
	for k, v := range m {
		h[k] = []string{v}
	}
	return h
}

// Get returns the trimmed first value of the named header.
// The lower-cased name is probed first, then the name as given.
// ok is false only when the header is absent; an empty trimmed value
// still reports ok=true so callers can distinguish "sent but blank"
// from "not sent".
func Get(h Headers, name string) (value string, ok bool) {
	raw, ok := Raw(h, name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// Raw returns the untrimmed first value of the named header, probing
// the lower-cased name first, then the name as given.
func Raw(h Headers, name string) (value string, ok bool) {
	if h == nil {
		return "", false
	}
	if vs, present := h[strings.ToLower(name)]; present && len(vs) > 0 {
		return vs[0], true
	}
	if vs, present := h[name]; present && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// IsValidURL reports whether s parses as an absolute http or https URL.
// No network access or DNS resolution is performed.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
