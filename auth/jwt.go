package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonwraymond/sapbridge/headers"
)

// MinTokenLength is the minimum accepted length for a direct JWT token.
// This is a crude shape check, not cryptographic validation.
const MinTokenLength = 10

// jwtValidator validates the direct-JWT method: a bearer token supplied
// verbatim in the x-sap-jwt-token header, applicable when the declared
// auth type is "jwt" or "xsuaa".
type jwtValidator struct {
	parser *jwt.Parser
}

// NewJWTValidator creates the direct-JWT validator.
func NewJWTValidator() Validator {
	return &jwtValidator{parser: jwt.NewParser()}
}

// Name returns "jwt".
func (v *jwtValidator) Name() string {
	return "jwt"
}

// Supports reports whether the declared auth type selects JWT and the
// token header is present.
func (v *jwtValidator) Supports(h headers.Headers) bool {
	at, _ := headers.Get(h, headers.AuthType)
	switch strings.ToLower(at) {
	case "jwt", "xsuaa":
	default:
		return false
	}
	_, ok := headers.Raw(h, headers.JWTToken)
	return ok
}

// Validate checks the token's shape and assembles the optional refresh
// token and UAA endpoint triple.
func (v *jwtValidator) Validate(h headers.Headers, _ string) *Candidate {
	token, _ := headers.Get(h, headers.JWTToken)
	if len(token) < MinTokenLength {
		return errorCandidate(fmt.Sprintf(
			"%s header value is too short to be a token (minimum %d characters)",
			headers.JWTToken, MinTokenLength))
	}

	m := &Method{Kind: KindJWT, Token: token}
	if client, ok := headers.Get(h, headers.Client); ok && client != "" {
		m.Client = client
	}
	if refresh, ok := headers.Raw(h, headers.RefreshToken); ok && refresh != "" {
		m.RefreshToken = refresh
	}

	c := &Candidate{Method: m}

	// Structural parse only: no signature or expiry verification. A token
	// that is not even three dot-separated segments will confuse the
	// downstream system, so flag it without blocking on it.
	if _, _, err := v.parser.ParseUnverified(token, jwt.MapClaims{}); err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf(
			"%s header does not look like a JWT (expected three dot-separated segments)",
			headers.JWTToken))
	}

	uaaURL := firstHeader(h, headers.UAAURL, headers.UAAURLAlias)
	uaaClientID := firstHeader(h, headers.UAAClientID, headers.UAAClientIDAlias)
	uaaSecret := firstHeader(h, headers.UAASecret, headers.UAASecretAlias)

	provided := 0
	for _, f := range []string{uaaURL, uaaClientID, uaaSecret} {
		if f != "" {
			provided++
		}
	}
	switch provided {
	case 3:
		m.UAA = &UAAConfig{URL: uaaURL, ClientID: uaaClientID, ClientSecret: uaaSecret}
	case 1, 2:
		// The triple only informs token refresh; it never gates
		// authorization, so incompleteness is a warning.
		c.Warnings = append(c.Warnings, fmt.Sprintf(
			"incomplete UAA configuration: %s, %s and %s should be provided together",
			headers.UAAURL, headers.UAAClientID, headers.UAASecret))
	}

	return c
}

// firstHeader returns the first non-empty trimmed value among the named
// headers.
func firstHeader(h headers.Headers, names ...string) string {
	for _, name := range names {
		if v, ok := headers.Get(h, name); ok && v != "" {
			return v
		}
	}
	return ""
}

// Ensure jwtValidator implements Validator
var _ Validator = (*jwtValidator)(nil)
