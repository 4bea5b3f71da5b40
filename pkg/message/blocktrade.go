package message

import (
	"math/big"
	"strings"

	"github.com/paradex-labs/paradex-go/pkg/typeddata"
)

// BlockTradePayload is the signed shape of a block trade initiation. Markets
// and RequiredSigners are comma-joined into single felts, so the joined form
// of each list must fit in 31 bytes.
type BlockTradePayload struct {
	Timestamp       int64
	Markets         []string
	RequiredSigners []string
}

func (p *BlockTradePayload) EncodeField(name string) (*big.Int, error) {
	switch name {
	case "timestamp":
		return big.NewInt(p.Timestamp), nil
	case "markets":
		return typeddata.EncodeValue("felt", strings.Join(p.Markets, ","))
	case "required_signers":
		return typeddata.EncodeValue("felt", strings.Join(p.RequiredSigners, ","))
	}
	return nil, missingField("BlockTrade", name)
}

// NewBlockTradeTypedData binds the block trade shape to the venue domain.
func NewBlockTradeTypedData(chainID *big.Int) (*typeddata.TypedData, error) {
	return newTypedData("BlockTrade", typeddata.TypeDef{Definitions: []typeddata.Definition{
		{Name: "timestamp", Type: "felt"},
		{Name: "markets", Type: "felt"},
		{Name: "required_signers", Type: "felt"},
	}}, chainID)
}

// BlockOfferPayload is the signed shape of an offer against a block trade.
// Only the timestamp is signed; the offer legs travel in the request body.
type BlockOfferPayload struct {
	Timestamp int64
}

func (p *BlockOfferPayload) EncodeField(name string) (*big.Int, error) {
	if name == "timestamp" {
		return big.NewInt(p.Timestamp), nil
	}
	return nil, missingField("BlockOffer", name)
}

// NewBlockOfferTypedData binds the block offer shape to the venue domain.
func NewBlockOfferTypedData(chainID *big.Int) (*typeddata.TypedData, error) {
	return newTypedData("BlockOffer", typeddata.TypeDef{Definitions: []typeddata.Definition{
		{Name: "timestamp", Type: "felt"},
	}}, chainID)
}
