package broker

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/sapbridge/auth"
	"github.com/jonwraymond/sapbridge/headers"
)

type staticBroker struct {
	token AccessToken
	err   error
	calls int
}

func (s *staticBroker) Token(_ context.Context, _, _ string) (AccessToken, error) {
	s.calls++
	if s.err != nil {
		return AccessToken{}, s.err
	}
	return s.token, nil
}

type staticResolver struct {
	baseURL string
	err     error
}

func (s *staticResolver) Resolve(_ context.Context, _ string) (string, error) {
	return s.baseURL, s.err
}

func TestDispatch_Destination(t *testing.T) {
	rep := auth.Resolve(headers.FromMap(map[string]string{
		"x-sap-destination": "S4HANA_E19",
	}))

	tb := &staticBroker{token: AccessToken{Value: "tok-123"}}
	dr := &staticResolver{baseURL: "https://resolved.example.com"}

	creds, err := Dispatch(context.Background(), rep, tb, dr)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if creds.Source != auth.KindSAPDestination {
		t.Errorf("Source = %v, want KindSAPDestination", creds.Source)
	}
	if creds.BaseURL != "https://resolved.example.com" {
		t.Errorf("BaseURL = %q, want the resolved URL", creds.BaseURL)
	}
	if creds.Token != "tok-123" {
		t.Errorf("Token = %q, want tok-123", creds.Token)
	}
}

func TestDispatch_JWTPassthrough(t *testing.T) {
	rep := auth.Resolve(headers.FromMap(map[string]string{
		"x-sap-url":           "https://erp.example.com",
		"x-sap-auth-type":     "jwt",
		"x-sap-jwt-token":     "0123456789abc",
		"x-sap-refresh-token": "refresh-1",
	}))

	// Neither collaborator should be consulted for direct JWT.
	creds, err := Dispatch(context.Background(), rep, nil, nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if creds.Token != "0123456789abc" || creds.RefreshToken != "refresh-1" {
		t.Errorf("tokens = (%q, %q), want passthrough values", creds.Token, creds.RefreshToken)
	}
	if creds.BaseURL != "https://erp.example.com" {
		t.Errorf("BaseURL = %q, want the header URL", creds.BaseURL)
	}
}

func TestDispatch_Basic(t *testing.T) {
	rep := auth.Resolve(headers.FromMap(map[string]string{
		"x-sap-url":       "https://erp.example.com",
		"x-sap-auth-type": "basic",
		"x-sap-login":     "alice",
		"x-sap-password":  "pw",
	}))

	creds, err := Dispatch(context.Background(), rep, nil, nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if creds.Username != "alice" || creds.Password != "pw" {
		t.Errorf("credentials = (%q, %q), want (alice, pw)", creds.Username, creds.Password)
	}
	if creds.Token != "" {
		t.Errorf("Token = %q, want empty for basic", creds.Token)
	}
}

func TestDispatch_InvalidReport(t *testing.T) {
	rep := auth.Resolve(headers.FromMap(map[string]string{}))

	_, err := Dispatch(context.Background(), rep, nil, nil)
	if !errors.Is(err, ErrInvalidReport) {
		t.Errorf("Dispatch() error = %v, want ErrInvalidReport", err)
	}
}

func TestDispatch_NilReport(t *testing.T) {
	_, err := Dispatch(context.Background(), nil, nil, nil)
	if !errors.Is(err, ErrInvalidReport) {
		t.Errorf("Dispatch() error = %v, want ErrInvalidReport", err)
	}
}

func TestDispatch_BrokerError(t *testing.T) {
	rep := auth.Resolve(headers.FromMap(map[string]string{
		"x-sap-destination": "DEST",
	}))

	brokerErr := errors.New("boom")
	tb := &staticBroker{err: brokerErr}
	dr := &staticResolver{baseURL: "https://resolved"}

	_, err := Dispatch(context.Background(), rep, tb, dr)
	if !errors.Is(err, brokerErr) {
		t.Errorf("Dispatch() error = %v, want wrapped broker error", err)
	}
}

func TestDispatch_ResolverError(t *testing.T) {
	rep := auth.Resolve(headers.FromMap(map[string]string{
		"x-sap-destination": "DEST",
	}))

	resolveErr := errors.New("no such destination")
	tb := &staticBroker{token: AccessToken{Value: "tok"}}
	dr := &staticResolver{err: resolveErr}

	_, err := Dispatch(context.Background(), rep, tb, dr)
	if !errors.Is(err, resolveErr) {
		t.Errorf("Dispatch() error = %v, want wrapped resolver error", err)
	}
	if tb.calls != 0 {
		t.Errorf("broker called %d times before resolution failed, want 0", tb.calls)
	}
}
