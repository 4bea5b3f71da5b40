package types

// BlockTradeRequest initiates a block trade across one or more markets.
// Signature is populated by Account.SignBlockTrade.
type BlockTradeRequest struct {
	Markets            []string `json:"markets"`
	RequiredSigners    []string `json:"required_signers"`
	Signature          string   `json:"signature,omitempty"`
	SignatureTimestamp int64    `json:"signature_timestamp"`
}

// BlockOfferOrder is a single leg of a block offer.
type BlockOfferOrder struct {
	Market string `json:"market"`
	Side   string `json:"side"`
	Size   string `json:"size"`
	Price  string `json:"price"`
}

// BlockOfferRequest is an offer against an open block trade.
// Signature is populated by Account.SignBlockOffer.
type BlockOfferRequest struct {
	Orders             []BlockOfferOrder `json:"orders"`
	Signature          string            `json:"signature,omitempty"`
	SignatureTimestamp int64             `json:"signature_timestamp"`
}
