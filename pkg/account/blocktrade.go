package account

import (
	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/message"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// SignBlockTrade signs a block trade initiation in place and returns the
// signature string. A zero SignatureTimestamp is stamped with the current
// time in milliseconds.
func (a *Account) SignBlockTrade(request *types.BlockTradeRequest) (string, error) {
	if request == nil {
		return "", errors.Wrap(types.ErrSigning, "nil block trade request")
	}
	if request.SignatureTimestamp == 0 {
		request.SignatureTimestamp = a.now().UnixMilli()
	}
	td, err := message.NewBlockTradeTypedData(a.chainID)
	if err != nil {
		return "", err
	}
	signature, err := a.signTypedData(td, &message.BlockTradePayload{
		Timestamp:       request.SignatureTimestamp,
		Markets:         request.Markets,
		RequiredSigners: request.RequiredSigners,
	})
	if err != nil {
		return "", err
	}
	request.Signature = signature
	return signature, nil
}

// SignBlockOffer signs an offer against a block trade in place and returns
// the signature string. Only the timestamp is signed; the offer legs travel
// unsigned in the request body.
func (a *Account) SignBlockOffer(request *types.BlockOfferRequest) (string, error) {
	if request == nil {
		return "", errors.Wrap(types.ErrSigning, "nil block offer request")
	}
	if request.SignatureTimestamp == 0 {
		request.SignatureTimestamp = a.now().UnixMilli()
	}
	td, err := message.NewBlockOfferTypedData(a.chainID)
	if err != nil {
		return "", err
	}
	signature, err := a.signTypedData(td, &message.BlockOfferPayload{
		Timestamp: request.SignatureTimestamp,
	})
	if err != nil {
		return "", err
	}
	request.Signature = signature
	return signature, nil
}
