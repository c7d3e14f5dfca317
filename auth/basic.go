package auth

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/sapbridge/headers"
)

// basicValidator validates the username/password method, applicable when
// the declared auth type is "basic" and both credential headers were sent.
type basicValidator struct{}

// NewBasicValidator creates the basic-auth validator.
func NewBasicValidator() Validator {
	return &basicValidator{}
}

// Name returns "basic".
func (v *basicValidator) Name() string {
	return "basic"
}

// Supports reports whether the declared auth type is basic and both the
// login and password headers are present. Presence is checked on the raw
// values; blank-but-sent credentials reach Validate and error there.
func (v *basicValidator) Supports(h headers.Headers) bool {
	at, _ := headers.Get(h, headers.AuthType)
	if !strings.EqualFold(at, "basic") {
		return false
	}
	_, hasLogin := headers.Raw(h, headers.Login)
	_, hasPassword := headers.Raw(h, headers.Password)
	return hasLogin && hasPassword
}

// Validate checks both credentials for non-emptiness. Either one trimming
// to empty is a terminal failure for this attempt; there is no silent
// fallback to another method.
func (v *basicValidator) Validate(h headers.Headers, _ string) *Candidate {
	login, _ := headers.Get(h, headers.Login)
	password, _ := headers.Get(h, headers.Password)

	var errs []string
	if login == "" {
		errs = append(errs, fmt.Sprintf("%s header is empty", headers.Login))
	}
	if password == "" {
		errs = append(errs, fmt.Sprintf("%s header is empty", headers.Password))
	}
	if len(errs) > 0 {
		return errorCandidate(errs...)
	}

	return &Candidate{Method: &Method{
		Kind:     KindBasic,
		Username: login,
		Password: password,
	}}
}

// Ensure basicValidator implements Validator
var _ Validator = (*basicValidator)(nil)
