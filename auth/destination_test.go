package auth

import (
	"strings"
	"testing"

	"github.com/jonwraymond/sapbridge/headers"
)

func TestDestinationValidator_Supports(t *testing.T) {
	v := NewSAPDestinationValidator()

	tests := []struct {
		name string
		h    map[string]string
		want bool
	}{
		{"absent", map[string]string{}, false},
		{"present", map[string]string{"x-sap-destination": "DEST"}, true},
		{"whitespace still triggers", map[string]string{"x-sap-destination": "  "}, true},
		{"empty raw value does not trigger", map[string]string{"x-sap-destination": ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Supports(hdrs(tt.h)); got != tt.want {
				t.Errorf("Supports() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSAPDestinationValidator_InlineCredentials(t *testing.T) {
	v := NewSAPDestinationValidator()
	c := v.Validate(hdrs(map[string]string{
		"x-sap-destination": "DEST",
		"x-sap-client":      "100",
		"x-sap-login":       "alice",
		"x-sap-password":    "pw",
	}), "")

	if len(c.Errors) != 0 {
		t.Fatalf("Errors = %v, want none", c.Errors)
	}
	m := c.Method
	if m.Kind != KindSAPDestination || m.Destination != "DEST" {
		t.Errorf("Method = %+v, want SAP destination DEST", m)
	}
	if m.Client != "100" || m.Username != "alice" || m.Password != "pw" {
		t.Errorf("optional fields = (%q, %q, %q), want (100, alice, pw)", m.Client, m.Username, m.Password)
	}
}

func TestMCPDestinationValidator_NoInlineCredentials(t *testing.T) {
	v := NewMCPDestinationValidator()
	c := v.Validate(hdrs(map[string]string{
		"x-mcp-destination": "MCP_DEST",
		"x-sap-client":      "200",
		"x-sap-login":       "alice",
		"x-sap-password":    "pw",
	}), "")

	if len(c.Errors) != 0 {
		t.Fatalf("Errors = %v, want none", c.Errors)
	}
	m := c.Method
	if m.Kind != KindMCPDestination || m.Destination != "MCP_DEST" {
		t.Errorf("Method = %+v, want MCP destination MCP_DEST", m)
	}
	if m.Client != "200" {
		t.Errorf("Client = %q, want 200", m.Client)
	}
	if m.Username != "" || m.Password != "" {
		t.Errorf("credentials = (%q, %q), want empty for MCP destination", m.Username, m.Password)
	}
}

func TestDestinationValidator_IgnoredHeaderWarnings(t *testing.T) {
	v := NewMCPDestinationValidator()
	c := v.Validate(hdrs(map[string]string{
		"x-mcp-destination": "MCP_DEST",
		"x-sap-url":         "https://host",
		"x-sap-auth-type":   "jwt",
		"x-sap-jwt-token":   "0123456789abc",
	}), "https://host")

	if len(c.Warnings) != 3 {
		t.Fatalf("Warnings = %v, want one per ignored header", c.Warnings)
	}
	for _, name := range []string{headers.URL, headers.AuthType, headers.JWTToken} {
		found := false
		for _, w := range c.Warnings {
			if strings.Contains(w, name) {
				found = true
			}
		}
		if !found {
			t.Errorf("no warning names %s: %v", name, c.Warnings)
		}
	}
}

func TestDestinationValidator_BlankValue(t *testing.T) {
	v := NewSAPDestinationValidator()
	c := v.Validate(hdrs(map[string]string{"x-sap-destination": "\t "}), "")

	if c.Method != nil {
		t.Error("Method set for blank destination, want nil")
	}
	if c.Rank() != KindNone.Rank() {
		t.Errorf("Rank() = %d, want none rank", c.Rank())
	}
	if len(c.Errors) != 1 || !strings.Contains(c.Errors[0], "empty") {
		t.Errorf("Errors = %v, want one empty-header error", c.Errors)
	}
}

func TestDestinationValidator_TrimsValue(t *testing.T) {
	v := NewSAPDestinationValidator()
	c := v.Validate(hdrs(map[string]string{"x-sap-destination": "  DEST  "}), "")

	if c.Method == nil || c.Method.Destination != "DEST" {
		t.Errorf("Method = %+v, want trimmed destination DEST", c.Method)
	}
}
