package types

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderSide is the direction of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// ChainSide returns the integer side encoding used in signed messages.
func (s OrderSide) ChainSide() int64 {
	if s == OrderSideBuy {
		return 1
	}
	return 2
}

// OrderType is the execution type of an order.
type OrderType string

const (
	OrderTypeLimit            OrderType = "LIMIT"
	OrderTypeMarket           OrderType = "MARKET"
	OrderTypeStopMarket       OrderType = "STOP_MARKET"
	OrderTypeStopLossMarket   OrderType = "STOP_LOSS_MARKET"
	OrderTypeTakeProfitMarket OrderType = "TAKE_PROFIT_MARKET"
)

// OrderInstruction controls time-in-force behavior.
type OrderInstruction string

const (
	OrderInstructionGTC      OrderInstruction = "GTC"
	OrderInstructionPostOnly OrderInstruction = "POST_ONLY"
	OrderInstructionIOC      OrderInstruction = "IOC"
	OrderInstructionFOK      OrderInstruction = "FOK"
)

// Order is an order submitted to the venue. Size and Price are decimal
// strings already converted to the venue's quantum representation by the
// caller (see pkg/quantum). Signature and SignatureTimestamp are populated
// in place by Account.SignOrder and are not regenerated unless the caller
// explicitly re-signs.
type Order struct {
	Market       string           `json:"market"`
	Side         OrderSide        `json:"side"`
	Type         OrderType        `json:"type"`
	Size         string           `json:"size"`
	Price        string           `json:"price,omitempty"`
	ClientID     string           `json:"client_id,omitempty"`
	Instruction  OrderInstruction `json:"instruction,omitempty"`
	ReduceOnly   bool             `json:"reduce_only,omitempty"`
	TriggerPrice string           `json:"trigger_price,omitempty"`
	Signature    string           `json:"signature,omitempty"`

	// SignatureTimestamp is the signing time in milliseconds since epoch.
	// Zero means not yet signed.
	SignatureTimestamp int64 `json:"signature_timestamp,omitempty"`

	// ID is the venue-assigned order ID. A non-empty ID selects the
	// modify-order message shape when signing.
	ID string `json:"id,omitempty"`
}

// ChainPrice returns the price encoded into signed messages. Orders with no
// price (market orders) sign a zero price.
func (o *Order) ChainPrice() string {
	if o.Price == "" {
		return "0"
	}
	return o.Price
}

// OrderBuilder constructs orders with the mandatory fields enforced before
// a value can exist.
type OrderBuilder struct {
	order Order
}

// NewOrderBuilder returns an empty order builder.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{}
}

func (b *OrderBuilder) Market(market string) *OrderBuilder {
	b.order.Market = market
	return b
}

func (b *OrderBuilder) Side(side OrderSide) *OrderBuilder {
	b.order.Side = side
	return b
}

func (b *OrderBuilder) Type(orderType OrderType) *OrderBuilder {
	b.order.Type = orderType
	return b
}

func (b *OrderBuilder) Size(size string) *OrderBuilder {
	b.order.Size = size
	return b
}

func (b *OrderBuilder) Price(price string) *OrderBuilder {
	b.order.Price = price
	return b
}

func (b *OrderBuilder) ClientID(clientID string) *OrderBuilder {
	b.order.ClientID = clientID
	return b
}

// GeneratedClientID assigns a random UUID as the client order ID.
func (b *OrderBuilder) GeneratedClientID() *OrderBuilder {
	b.order.ClientID = uuid.NewString()
	return b
}

func (b *OrderBuilder) Instruction(instruction OrderInstruction) *OrderBuilder {
	b.order.Instruction = instruction
	return b
}

func (b *OrderBuilder) ReduceOnly(reduceOnly bool) *OrderBuilder {
	b.order.ReduceOnly = reduceOnly
	return b
}

func (b *OrderBuilder) TriggerPrice(triggerPrice string) *OrderBuilder {
	b.order.TriggerPrice = triggerPrice
	return b
}

// Build validates the mandatory fields and returns the order.
func (b *OrderBuilder) Build() (*Order, error) {
	switch {
	case b.order.Market == "":
		return nil, fmt.Errorf("market is required")
	case b.order.Side == "":
		return nil, fmt.Errorf("side is required")
	case b.order.Type == "":
		return nil, fmt.Errorf("order type is required")
	case b.order.Size == "":
		return nil, fmt.Errorf("size is required")
	}
	order := b.order
	return &order, nil
}
