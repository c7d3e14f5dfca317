package auth

// MethodKind identifies an authentication method. The zero value KindNone
// means no method; it is carried by candidates that failed validation.
type MethodKind int

// Method kinds in ascending priority order. The numeric value doubles as
// the priority rank used for tie-breaking, so the declaration order is
// load-bearing.
const (
	KindNone MethodKind = iota
	KindBasic
	KindJWT
	KindMCPDestination
	KindSAPDestination
)

// Rank returns the fixed priority rank of the kind. Higher wins.
func (k MethodKind) Rank() int {
	return int(k)
}

func (k MethodKind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindJWT:
		return "jwt"
	case KindMCPDestination:
		return "mcp_destination"
	case KindSAPDestination:
		return "sap_destination"
	default:
		return "none"
	}
}

// UAAConfig is the endpoint triple used for token refresh. It never
// gates authorization; an incomplete triple is reported as a warning and
// dropped, never attached partially.
type UAAConfig struct {
	URL          string
	ClientID     string
	ClientSecret string
}

// Method is the selected authentication method with the fields its kind
// carries. Fields not applicable to the kind are left zero. Values are
// built fresh per resolution and never mutated afterwards.
type Method struct {
	Kind MethodKind

	// Destination names the externally-resolved credential bundle.
	// Set for KindSAPDestination and KindMCPDestination.
	Destination string

	// Client is the optional SAP client number.
	Client string

	// Username and Password are set for KindBasic, and optionally for
	// KindSAPDestination when the caller supplied them alongside the
	// destination.
	Username string
	Password string

	// Token and RefreshToken are set for KindJWT.
	Token        string
	RefreshToken string

	// UAA is set for KindJWT when the complete endpoint triple was
	// provided.
	UAA *UAAConfig
}
