package account

import (
	"math/big"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paradex-labs/paradex-go/pkg/crypto"
	"github.com/paradex-labs/paradex-go/pkg/felt"
	"github.com/paradex-labs/paradex-go/pkg/message"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

var signaturePattern = regexp.MustCompile(`^\[0x[0-9a-f]+,0x[0-9a-f]+\]$`)

func testOrder() *types.Order {
	return &types.Order{
		Market: "BTC-USD-PERP",
		Side:   types.OrderSideBuy,
		Type:   types.OrderTypeLimit,
		Size:   "100000000",
		Price:  "5000000000000",
	}
}

// parseSignature splits the bracketed hex pair back into (r, s).
func parseSignature(t *testing.T, sig string) (*big.Int, *big.Int) {
	t.Helper()
	require.Regexp(t, signaturePattern, sig)
	parts := strings.Split(strings.Trim(sig, "[]"), ",")
	require.Len(t, parts, 2)
	r, ok := new(big.Int).SetString(strings.TrimPrefix(parts[0], "0x"), 16)
	require.True(t, ok)
	s, ok := new(big.Int).SetString(strings.TrimPrefix(parts[1], "0x"), 16)
	require.True(t, ok)
	return r, s
}

// Known-good vectors computed independently with the reference Pedersen
// parameters and starknet-keccak. They pin the whole hash pipeline end to
// end: type hashes, struct hashes, domain binding and account binding. A
// different hash here means signatures stop verifying on chain.
func TestOrderMessageHashVector(t *testing.T) {
	acct := testAccount(t)
	order := testOrder()
	order.SignatureTimestamp = fixedMillis

	td, err := message.NewOrderTypedData(acct.ChainID())
	require.NoError(t, err)
	hash, err := td.MessageHash(acct.L2Address(), message.NewOrderPayload(order))
	require.NoError(t, err)

	require.Equal(t, "0x482be5a136db68f8dd3fbe4bd579719cab4f6f1565c2c638eea4c58a9c6d0b1",
		felt.ToHex(hash))
}

func TestAuthMessageHashVector(t *testing.T) {
	acct := testAccount(t)

	td, err := message.NewAuthTypedData(acct.ChainID())
	require.NoError(t, err)
	timestamp := fixedMillis / 1000
	hash, err := td.MessageHash(acct.L2Address(), &message.AuthPayload{
		Timestamp: timestamp,
		Expiry:    timestamp + AuthExpirySeconds,
	})
	require.NoError(t, err)

	require.Equal(t, "0x5b67bbe68db2c68f7a4a7d99c318642c512e8026b2e0406171d99e7496abbfc",
		felt.ToHex(hash))
}

func TestSignOrderStampsTimestamp(t *testing.T) {
	acct := testAccount(t)
	order := testOrder()

	_, err := acct.SignOrder(order)
	require.NoError(t, err)
	require.Equal(t, fixedMillis, order.SignatureTimestamp)
	require.NotEmpty(t, order.Signature)
}

func TestSignOrderKeepsCallerTimestamp(t *testing.T) {
	acct := testAccount(t)
	order := testOrder()
	order.SignatureTimestamp = 42

	_, err := acct.SignOrder(order)
	require.NoError(t, err)
	require.Equal(t, int64(42), order.SignatureTimestamp, "caller-supplied timestamp must survive signing")
}

func TestSignOrderSignatureVerifies(t *testing.T) {
	acct := testAccount(t)
	order := testOrder()
	order.SignatureTimestamp = fixedMillis

	sig, err := acct.SignOrder(order)
	require.NoError(t, err)
	r, s := parseSignature(t, sig)

	td, err := message.NewOrderTypedData(acct.ChainID())
	require.NoError(t, err)
	hash, err := td.MessageHash(acct.L2Address(), message.NewOrderPayload(order))
	require.NoError(t, err)

	pubX, pubY, err := crypto.PublicKeyPoint(acct.l2PrivateKey)
	require.NoError(t, err)
	require.True(t, crypto.Verify(hash, r, s, pubX, pubY),
		"order signature must verify against the recomputed message hash")
}

func TestSignOrderModifyShapeDiffers(t *testing.T) {
	acct := testAccount(t)

	create := testOrder()
	create.SignatureTimestamp = fixedMillis
	modify := testOrder()
	modify.SignatureTimestamp = fixedMillis
	modify.ID = "1234567890"

	createTD, err := message.NewOrderTypedData(acct.ChainID())
	require.NoError(t, err)
	createHash, err := createTD.MessageHash(acct.L2Address(), message.NewOrderPayload(create))
	require.NoError(t, err)

	modifyTD, err := message.NewModifyOrderTypedData(acct.ChainID())
	require.NoError(t, err)
	modifyHash, err := modifyTD.MessageHash(acct.L2Address(), message.NewModifyOrderPayload(modify))
	require.NoError(t, err)

	require.NotEqual(t, createHash, modifyHash, "modify shape must not collide with create shape")

	// Both shapes still sign successfully end to end.
	_, err = acct.SignOrder(create)
	require.NoError(t, err)
	_, err = acct.SignOrder(modify)
	require.NoError(t, err)
}

func TestSignOrderNil(t *testing.T) {
	acct := testAccount(t)
	_, err := acct.SignOrder(nil)
	require.ErrorIs(t, err, types.ErrSigning)
}

func TestOnboardingHeaders(t *testing.T) {
	acct := testAccount(t)

	headers, err := acct.OnboardingHeaders()
	require.NoError(t, err)
	require.Len(t, headers, 3, "onboarding emits exactly three headers")

	require.Equal(t, types.HeaderEthereumAccount, headers[0].Key)
	require.Equal(t, testL1Address, headers[0].Value)
	require.Equal(t, types.HeaderStarknetAccount, headers[1].Key)
	require.Equal(t, acct.L2AddressHex(), headers[1].Value)
	require.Equal(t, types.HeaderStarknetSignature, headers[2].Key)
	require.Regexp(t, signaturePattern, headers[2].Value)
}

func TestAuthHeaders(t *testing.T) {
	acct := testAccount(t)

	headers, err := acct.AuthHeaders()
	require.NoError(t, err)
	require.Len(t, headers, 4, "auth emits exactly four headers")

	require.Equal(t, types.HeaderStarknetAccount, headers[0].Key)
	require.Equal(t, acct.L2AddressHex(), headers[0].Value)
	require.Equal(t, types.HeaderStarknetSignature, headers[1].Key)
	require.Regexp(t, signaturePattern, headers[1].Value)
	require.Equal(t, types.HeaderTimestamp, headers[2].Key)
	require.Equal(t, "1716913057", headers[2].Value)
	require.Equal(t, types.HeaderSignatureExpiration, headers[3].Key)
	require.Equal(t, "1716999457", headers[3].Value, "expiry is timestamp plus one day")
}

func TestAuthHeadersSignatureVerifies(t *testing.T) {
	acct := testAccount(t)

	headers, err := acct.AuthHeaders()
	require.NoError(t, err)
	r, s := parseSignature(t, headers[1].Value)

	td, err := message.NewAuthTypedData(acct.ChainID())
	require.NoError(t, err)
	hash, err := td.MessageHash(acct.L2Address(), &message.AuthPayload{
		Timestamp: fixedMillis / 1000,
		Expiry:    fixedMillis/1000 + AuthExpirySeconds,
	})
	require.NoError(t, err)

	pubX, pubY, err := crypto.PublicKeyPoint(acct.l2PrivateKey)
	require.NoError(t, err)
	require.True(t, crypto.Verify(hash, r, s, pubX, pubY))
}

func TestSignBlockTrade(t *testing.T) {
	acct := testAccount(t)
	request := &types.BlockTradeRequest{
		Markets:         []string{"BTC-USD-PERP"},
		RequiredSigners: []string{"0x1f"},
	}

	sig, err := acct.SignBlockTrade(request)
	require.NoError(t, err)
	require.Equal(t, sig, request.Signature)
	require.Equal(t, fixedMillis, request.SignatureTimestamp)
	require.Regexp(t, signaturePattern, sig)
}

func TestSignBlockOffer(t *testing.T) {
	acct := testAccount(t)
	request := &types.BlockOfferRequest{
		Orders: []types.BlockOfferOrder{{Market: "BTC-USD-PERP", Side: "BUY", Size: "1", Price: "2"}},
	}

	sig, err := acct.SignBlockOffer(request)
	require.NoError(t, err)
	require.Equal(t, sig, request.Signature)
	require.Equal(t, fixedMillis, request.SignatureTimestamp)
	require.Regexp(t, signaturePattern, sig)
}

func TestSignHashNil(t *testing.T) {
	acct := testAccount(t)
	_, _, err := acct.SignHash(nil)
	require.ErrorIs(t, err, types.ErrSigning)
}

func TestFlattenSignatureFormat(t *testing.T) {
	sig := FlattenSignature(big.NewInt(0xABC), big.NewInt(0x1))
	require.Equal(t, "[0xabc,0x1]", sig)
}
