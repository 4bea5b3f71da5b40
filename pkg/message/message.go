// Package message defines the typed data shapes signed against the venue:
// orders, order modifications, onboarding, authentication and block trades.
// Each shape pairs a payload (the Message implementation) with a TypedData
// constructor binding the venue domain.
package message

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/felt"
	"github.com/paradex-labs/paradex-go/pkg/typeddata"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// Domain returns the venue domain separator for a chain identifier felt.
func Domain(chainID *big.Int) typeddata.Domain {
	return typeddata.Domain{
		Name:    "Paradex",
		ChainID: felt.ToHex(chainID),
		Version: "1",
	}
}

func domainTypeDef() typeddata.TypeDef {
	return typeddata.TypeDef{Definitions: []typeddata.Definition{
		{Name: "name", Type: "felt"},
		{Name: "chainId", Type: "felt"},
		{Name: "version", Type: "felt"},
	}}
}

func newTypedData(primaryType string, primaryDef typeddata.TypeDef, chainID *big.Int) (*typeddata.TypedData, error) {
	return typeddata.New(map[string]typeddata.TypeDef{
		typeddata.DomainTypeName: domainTypeDef(),
		primaryType:              primaryDef,
	}, primaryType, Domain(chainID))
}

func missingField(typeName, field string) error {
	return errors.Wrapf(types.ErrSigning, "%s has no field %q", typeName, field)
}
