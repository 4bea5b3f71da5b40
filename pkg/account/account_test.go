package account

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paradex-labs/paradex-go/pkg/types"
)

const (
	testL1Address    = "0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"
	testL1PrivateKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"
	testL2PrivateKey = "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

	fixedMillis = int64(1716913057000)
)

func testConfig() *types.SystemConfig {
	return &types.SystemConfig{
		L1ChainID:                 "11155111",
		StarknetChainID:           "PRIVATE_SN_POTC_SEPOLIA",
		ParaclearAccountHash:      "0x033434ad846cdd5f23eb73ff09fe6fddd568284a0fb7d1be20ee482f044dabe2",
		ParaclearAccountProxyHash: "0x3530cc4759d78042f1b543bf797f5f3d647cde0388c33734cf91b7f7b9314a9",
		ParaclearDecimals:         8,
	}
}

func testAccount(t *testing.T) *Account {
	t.Helper()
	acct, err := FromL2PrivateKeyHex(testConfig(), testL1Address, testL2PrivateKey)
	require.NoError(t, err)
	acct.now = func() time.Time { return time.UnixMilli(fixedMillis) }
	return acct
}

// Known-good vector computed independently with the reference Pedersen
// parameters and starknet-keccak. Any change to the address pipeline
// (selector, call data layout, hash-on-elements) breaks these constants.
func TestAccountDerivationVector(t *testing.T) {
	acct, err := FromL2PrivateKeyHex(testConfig(), testL1Address, testL2PrivateKey)
	require.NoError(t, err)

	require.Equal(t, "0x25ad4b10066af140f8a05c1ef423a109ba774f6e64b12c614c24f8982f3c3d1",
		acct.L2PublicKeyHex())
	require.Equal(t, "0x6c7d42ffd762ce78286d280b67a46efe1bdbda799a4166a1263d8510e81d229",
		acct.L2AddressHex())
}

func TestFromL1PrivateKeyDeterministic(t *testing.T) {
	first, err := FromL1PrivateKey(testConfig(), testL1Address, testL1PrivateKey)
	require.NoError(t, err)
	second, err := FromL1PrivateKey(testConfig(), testL1Address, "0x"+testL1PrivateKey)
	require.NoError(t, err)

	require.Equal(t, first.L2AddressHex(), second.L2AddressHex(),
		"same L1 key must derive the same account")
	require.Equal(t, first.L2PublicKeyHex(), second.L2PublicKeyHex())
}

func TestDerivationDependsOnChainID(t *testing.T) {
	mainnet, err := DeriveL2PrivateKey(testL1PrivateKey, 1)
	require.NoError(t, err)
	sepolia, err := DeriveL2PrivateKey(testL1PrivateKey, 11155111)
	require.NoError(t, err)
	require.NotEqual(t, mainnet, sepolia, "chain id is part of the derivation message")
}

func TestFromL2PrivateKeyHexReducesLargeKeys(t *testing.T) {
	// The example key exceeds the curve order; construction must still
	// succeed by reduction.
	acct, err := FromL2PrivateKeyHex(testConfig(), testL1Address, testL2PrivateKey)
	require.NoError(t, err)
	require.NotEmpty(t, acct.L2AddressHex())

	again, err := FromL2PrivateKeyHex(testConfig(), testL1Address, testL2PrivateKey)
	require.NoError(t, err)
	require.Equal(t, acct.L2AddressHex(), again.L2AddressHex())
}

func TestConstructionErrorKinds(t *testing.T) {
	_, err := FromL2PrivateKeyHex(nil, testL1Address, testL2PrivateKey)
	require.ErrorIs(t, err, types.ErrConfigFormat)

	_, err = FromL2PrivateKeyHex(testConfig(), testL1Address, "not-hex")
	require.ErrorIs(t, err, types.ErrCredentialFormat)

	_, err = FromL2PrivateKeyHex(testConfig(), testL1Address, "0x0")
	require.ErrorIs(t, err, types.ErrCredentialFormat)

	cfg := testConfig()
	cfg.ParaclearAccountHash = "zzz"
	_, err = FromL2PrivateKeyHex(cfg, testL1Address, testL2PrivateKey)
	require.ErrorIs(t, err, types.ErrConfigFormat)

	cfg = testConfig()
	cfg.StarknetChainID = ""
	_, err = FromL2PrivateKeyHex(cfg, testL1Address, testL2PrivateKey)
	require.ErrorIs(t, err, types.ErrConfigFormat)

	cfg = testConfig()
	cfg.L1ChainID = "mainnet"
	_, err = FromL1PrivateKey(cfg, testL1Address, testL1PrivateKey)
	require.ErrorIs(t, err, types.ErrConfigFormat)

	_, err = FromL1PrivateKey(testConfig(), testL1Address, "short")
	require.ErrorIs(t, err, types.ErrCredentialFormat)
}

func TestBuildStarkKeyMessage(t *testing.T) {
	require.Equal(t, "Paradex Stark Key Derivation: 1", BuildStarkKeyMessage(1))
	require.Equal(t, "Paradex Stark Key Derivation: 11155111", BuildStarkKeyMessage(11155111))
}

func TestComputeAddressSensitivity(t *testing.T) {
	acct := testAccount(t)
	cfg := testConfig()

	// A different public key moves the address.
	other, err := FromL2PrivateKeyHex(cfg, testL1Address, "0x2222")
	require.NoError(t, err)
	require.NotEqual(t, acct.L2AddressHex(), other.L2AddressHex())

	// A different proxy class moves the address for the same key.
	cfg.ParaclearAccountProxyHash = "0x1111"
	moved, err := FromL2PrivateKeyHex(cfg, testL1Address, testL2PrivateKey)
	require.NoError(t, err)
	require.NotEqual(t, acct.L2AddressHex(), moved.L2AddressHex())
}

func TestSessionTokenConcurrentAccess(t *testing.T) {
	acct := testAccount(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			acct.SetSessionToken(fmt.Sprintf("token-%d", i))
			_ = acct.SessionToken()
		}(i)
	}
	wg.Wait()
	require.NotEmpty(t, acct.SessionToken())
}
