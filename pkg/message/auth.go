package message

import (
	"math/big"

	"github.com/paradex-labs/paradex-go/pkg/typeddata"
)

// OnboardingPayload is the signed shape of account onboarding. The shape
// carries no members; only the domain and account address feed the hash.
type OnboardingPayload struct{}

func (OnboardingPayload) EncodeField(name string) (*big.Int, error) {
	return nil, missingField("Onboarding", name)
}

// NewOnboardingTypedData binds the onboarding shape to the venue domain.
func NewOnboardingTypedData(chainID *big.Int) (*typeddata.TypedData, error) {
	return newTypedData("Onboarding", typeddata.TypeDef{}, chainID)
}

// AuthPayload is the signed shape of a session token request. Timestamp and
// Expiry are seconds since epoch.
type AuthPayload struct {
	Timestamp int64
	Expiry    int64
}

func (p *AuthPayload) EncodeField(name string) (*big.Int, error) {
	switch name {
	case "timestamp":
		return big.NewInt(p.Timestamp), nil
	case "expiry":
		return big.NewInt(p.Expiry), nil
	}
	return nil, missingField("Auth", name)
}

// NewAuthTypedData binds the authentication shape to the venue domain.
func NewAuthTypedData(chainID *big.Int) (*typeddata.TypedData, error) {
	return newTypedData("Auth", typeddata.TypeDef{Definitions: []typeddata.Definition{
		{Name: "timestamp", Type: "felt"},
		{Name: "expiry", Type: "felt"},
	}}, chainID)
}
