package message

import (
	"math/big"

	"github.com/paradex-labs/paradex-go/pkg/typeddata"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// OrderPayload is the signed shape of a new order.
type OrderPayload struct {
	Timestamp int64
	Market    string
	Side      types.OrderSide
	OrderType types.OrderType
	Size      string
	Price     string
}

// NewOrderPayload builds the signed shape from an order. The order must
// already carry its signature timestamp.
func NewOrderPayload(o *types.Order) *OrderPayload {
	return &OrderPayload{
		Timestamp: o.SignatureTimestamp,
		Market:    o.Market,
		Side:      o.Side,
		OrderType: o.Type,
		Size:      o.Size,
		Price:     o.ChainPrice(),
	}
}

func (p *OrderPayload) EncodeField(name string) (*big.Int, error) {
	switch name {
	case "timestamp":
		return big.NewInt(p.Timestamp), nil
	case "market":
		return typeddata.EncodeValue("felt", p.Market)
	case "side":
		return big.NewInt(p.Side.ChainSide()), nil
	case "orderType":
		return typeddata.EncodeValue("felt", string(p.OrderType))
	case "size":
		return typeddata.EncodeValue("felt", p.Size)
	case "price":
		return typeddata.EncodeValue("felt", p.Price)
	}
	return nil, missingField("Order", name)
}

// NewOrderTypedData binds the Order shape to the venue domain.
func NewOrderTypedData(chainID *big.Int) (*typeddata.TypedData, error) {
	return newTypedData("Order", typeddata.TypeDef{Definitions: []typeddata.Definition{
		{Name: "timestamp", Type: "felt"},
		{Name: "market", Type: "felt"},
		{Name: "side", Type: "felt"},
		{Name: "orderType", Type: "felt"},
		{Name: "size", Type: "felt"},
		{Name: "price", Type: "felt"},
	}}, chainID)
}

// ModifyOrderPayload is the signed shape of an order modification. It is an
// order payload extended with the venue-assigned order ID.
type ModifyOrderPayload struct {
	OrderPayload
	ID string
}

// NewModifyOrderPayload builds the modify shape from an order carrying a
// venue-assigned ID.
func NewModifyOrderPayload(o *types.Order) *ModifyOrderPayload {
	return &ModifyOrderPayload{OrderPayload: *NewOrderPayload(o), ID: o.ID}
}

func (p *ModifyOrderPayload) EncodeField(name string) (*big.Int, error) {
	switch name {
	case "id":
		return typeddata.EncodeValue("felt", p.ID)
	case "timestamp", "market", "side", "orderType", "size", "price":
		return p.OrderPayload.EncodeField(name)
	}
	return nil, missingField("ModifyOrder", name)
}

// NewModifyOrderTypedData binds the ModifyOrder shape to the venue domain.
// The member list is the Order list with the order ID appended.
func NewModifyOrderTypedData(chainID *big.Int) (*typeddata.TypedData, error) {
	return newTypedData("ModifyOrder", typeddata.TypeDef{Definitions: []typeddata.Definition{
		{Name: "timestamp", Type: "felt"},
		{Name: "market", Type: "felt"},
		{Name: "side", Type: "felt"},
		{Name: "orderType", Type: "felt"},
		{Name: "size", Type: "felt"},
		{Name: "price", Type: "felt"},
		{Name: "id", Type: "felt"},
	}}, chainID)
}
