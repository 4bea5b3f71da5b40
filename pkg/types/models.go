package types

// Header is a single HTTP header emitted by the signing operations.
type Header struct {
	Key   string
	Value string
}

// Paradex authentication header names.
const (
	HeaderEthereumAccount     = "PARADEX-ETHEREUM-ACCOUNT"
	HeaderStarknetAccount     = "PARADEX-STARKNET-ACCOUNT"
	HeaderStarknetSignature   = "PARADEX-STARKNET-SIGNATURE"
	HeaderTimestamp           = "PARADEX-TIMESTAMP"
	HeaderSignatureExpiration = "PARADEX-SIGNATURE-EXPIRATION"
)

// OnboardingRequest is the body of POST /onboarding.
type OnboardingRequest struct {
	PublicKey string `json:"public_key"`
}

// AuthResponse is the body of a successful POST /auth.
type AuthResponse struct {
	JWTToken string `json:"jwt_token"`
}

// OrderResponse is the venue's acknowledgement of an order operation.
type OrderResponse struct {
	ID                 string `json:"id"`
	Account            string `json:"account"`
	Market             string `json:"market"`
	Side               string `json:"side"`
	Type               string `json:"type"`
	Size               string `json:"size"`
	Price              string `json:"price"`
	Status             string `json:"status"`
	ClientID           string `json:"client_id"`
	CreatedAt          int64  `json:"created_at"`
	LastUpdatedAt      int64  `json:"last_updated_at"`
	CancelReason       string `json:"cancel_reason,omitempty"`
	RemainingSize      string `json:"remaining_size"`
	SignatureTimestamp int64  `json:"signature_timestamp"`
}
