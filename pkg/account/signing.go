package account

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"github.com/paradex-labs/paradex-go/pkg/crypto"
	"github.com/paradex-labs/paradex-go/pkg/felt"
	"github.com/paradex-labs/paradex-go/pkg/message"
	"github.com/paradex-labs/paradex-go/pkg/typeddata"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// AuthExpirySeconds is the validity window requested for a session token.
const AuthExpirySeconds = 24 * 60 * 60

// SignOrder signs an order in place and returns the signature string. A zero
// SignatureTimestamp is stamped with the current time in milliseconds; a
// caller-supplied timestamp is kept, so re-signing the same order is
// deterministic up to the nonce. An order carrying a venue-assigned ID is
// signed with the modify shape.
func (a *Account) SignOrder(order *types.Order) (string, error) {
	if order == nil {
		return "", errors.Wrap(types.ErrSigning, "nil order")
	}
	if order.SignatureTimestamp == 0 {
		order.SignatureTimestamp = a.now().UnixMilli()
	}

	var (
		td  *typeddata.TypedData
		msg typeddata.Message
		err error
	)
	if order.ID != "" {
		td, err = message.NewModifyOrderTypedData(a.chainID)
		msg = message.NewModifyOrderPayload(order)
	} else {
		td, err = message.NewOrderTypedData(a.chainID)
		msg = message.NewOrderPayload(order)
	}
	if err != nil {
		return "", err
	}

	signature, err := a.signTypedData(td, msg)
	if err != nil {
		return "", err
	}
	order.Signature = signature
	return signature, nil
}

// OnboardingHeaders signs the onboarding message and returns exactly the
// three headers POST /onboarding requires.
func (a *Account) OnboardingHeaders() ([]types.Header, error) {
	td, err := message.NewOnboardingTypedData(a.chainID)
	if err != nil {
		return nil, err
	}
	signature, err := a.signTypedData(td, message.OnboardingPayload{})
	if err != nil {
		return nil, err
	}
	return []types.Header{
		{Key: types.HeaderEthereumAccount, Value: a.l1Address},
		{Key: types.HeaderStarknetAccount, Value: a.L2AddressHex()},
		{Key: types.HeaderStarknetSignature, Value: signature},
	}, nil
}

// AuthHeaders signs a session token request stamped with the current time
// and returns exactly the four headers POST /auth requires. The requested
// expiry is one day out.
func (a *Account) AuthHeaders() ([]types.Header, error) {
	timestamp := a.now().Unix()
	expiry := timestamp + AuthExpirySeconds

	td, err := message.NewAuthTypedData(a.chainID)
	if err != nil {
		return nil, err
	}
	signature, err := a.signTypedData(td, &message.AuthPayload{Timestamp: timestamp, Expiry: expiry})
	if err != nil {
		return nil, err
	}
	return []types.Header{
		{Key: types.HeaderStarknetAccount, Value: a.L2AddressHex()},
		{Key: types.HeaderStarknetSignature, Value: signature},
		{Key: types.HeaderTimestamp, Value: strconv.FormatInt(timestamp, 10)},
		{Key: types.HeaderSignatureExpiration, Value: strconv.FormatInt(expiry, 10)},
	}, nil
}

// SignHash signs an already computed message hash with the account's private
// scalar.
func (a *Account) SignHash(hash *big.Int) (r, s *big.Int, err error) {
	if hash == nil {
		return nil, nil, errors.Wrap(types.ErrSigning, "nil message hash")
	}
	r, s, err = crypto.Sign(hash, a.l2PrivateKey)
	if err != nil {
		return nil, nil, errors.Wrap(types.ErrSigning, err.Error())
	}
	return r, s, nil
}

func (a *Account) signTypedData(td *typeddata.TypedData, msg typeddata.Message) (string, error) {
	hash, err := td.MessageHash(a.l2Address, msg)
	if err != nil {
		return "", err
	}
	r, s, err := a.SignHash(hash)
	if err != nil {
		return "", err
	}
	return FlattenSignature(r, s), nil
}

// FlattenSignature renders an (r, s) pair in the venue's wire form:
// a bracketed pair of lowercase hex felts with no whitespace.
func FlattenSignature(r, s *big.Int) string {
	return fmt.Sprintf("[%s,%s]", felt.ToHex(r), felt.ToHex(s))
}
