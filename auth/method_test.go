package auth

import "testing"

func TestMethodKind_Rank(t *testing.T) {
	order := []MethodKind{KindSAPDestination, KindMCPDestination, KindJWT, KindBasic, KindNone}

	for i := 0; i < len(order)-1; i++ {
		if order[i].Rank() <= order[i+1].Rank() {
			t.Errorf("%v.Rank() = %d, must outrank %v (%d)",
				order[i], order[i].Rank(), order[i+1], order[i+1].Rank())
		}
	}
	if KindNone.Rank() != 0 {
		t.Errorf("KindNone.Rank() = %d, want 0", KindNone.Rank())
	}
}

func TestMethodKind_String(t *testing.T) {
	tests := []struct {
		kind MethodKind
		want string
	}{
		{KindNone, "none"},
		{KindBasic, "basic"},
		{KindJWT, "jwt"},
		{KindMCPDestination, "mcp_destination"},
		{KindSAPDestination, "sap_destination"},
		{MethodKind(42), "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
