package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/sapbridge/auth"
)

// Sentinel errors for dispatching.
var (
	ErrInvalidReport = errors.New("broker: report is not valid")
	ErrNoMethod      = errors.New("broker: no authentication method selected")
)

// AccessToken is a token obtained from a TokenBroker.
type AccessToken struct {
	// Value is the raw token.
	Value string

	// ExpiresAt is when the token expires (zero = unknown).
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry. Tokens with an
// unknown expiry never report expired.
func (t AccessToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// TokenBroker exchanges a destination name for an access token.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Token must honor cancellation/deadlines.
// - Errors: Token returns an error for any failure to produce a token.
type TokenBroker interface {
	// Token returns an access token for the destination. client is the
	// optional SAP client number; empty means the destination default.
	Token(ctx context.Context, destination, client string) (AccessToken, error)
}

// DestinationResolver maps a destination name to a base URL.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Resolve must honor cancellation/deadlines.
type DestinationResolver interface {
	Resolve(ctx context.Context, destination string) (string, error)
}

// Credentials is the ready-to-use credential bundle for one request,
// produced by Dispatch from a valid resolution report.
type Credentials struct {
	// Source is the method the credentials came from.
	Source auth.MethodKind

	// BaseURL is the target system's base URL.
	BaseURL string

	// Token is set for destination- and JWT-sourced credentials.
	Token string

	// RefreshToken is set for JWT-sourced credentials when supplied.
	RefreshToken string

	// Username and Password are set for basic-sourced credentials.
	Username string
	Password string
}

// Dispatch routes a valid report to the credential path its method
// requires: destination methods go through the broker and resolver,
// direct JWT passes the token through, basic passes the credentials
// through.
func Dispatch(ctx context.Context, rep *auth.Report, tb TokenBroker, dr DestinationResolver) (*Credentials, error) {
	if rep == nil || !rep.Valid {
		return nil, ErrInvalidReport
	}
	m := rep.Method
	if m == nil || m.Kind == auth.KindNone {
		return nil, ErrNoMethod
	}

	switch m.Kind {
	case auth.KindSAPDestination, auth.KindMCPDestination:
		baseURL, err := dr.Resolve(ctx, m.Destination)
		if err != nil {
			return nil, fmt.Errorf("resolving destination %q: %w", m.Destination, err)
		}
		tok, err := tb.Token(ctx, m.Destination, m.Client)
		if err != nil {
			return nil, fmt.Errorf("fetching token for destination %q: %w", m.Destination, err)
		}
		return &Credentials{
			Source:  m.Kind,
			BaseURL: baseURL,
			Token:   tok.Value,
		}, nil

	case auth.KindJWT:
		return &Credentials{
			Source:       m.Kind,
			BaseURL:      rep.SAPURL,
			Token:        m.Token,
			RefreshToken: m.RefreshToken,
		}, nil

	case auth.KindBasic:
		return &Credentials{
			Source:   m.Kind,
			BaseURL:  rep.SAPURL,
			Username: m.Username,
			Password: m.Password,
		}, nil

	default:
		return nil, ErrNoMethod
	}
}
