package types

// SystemConfig is the venue configuration returned by GET /system/config.
// It is fetched once before account construction and treated as immutable
// for the lifetime of the account built from it.
type SystemConfig struct {
	L1ChainID                 string         `json:"l1_chain_id"`
	StarknetChainID           string         `json:"starknet_chain_id"`
	StarknetFullnodeRPCURL    string         `json:"starknet_fullnode_rpc_url"`
	StarknetGatewayURL        string         `json:"starknet_gateway_url"`
	BlockExplorerURL          string         `json:"block_explorer_url"`
	ParaclearAddress          string         `json:"paraclear_address"`
	ParaclearDecimals         int32          `json:"paraclear_decimals"`
	ParaclearAccountProxyHash string         `json:"paraclear_account_proxy_hash"`
	ParaclearAccountHash      string         `json:"paraclear_account_hash"`
	BridgedTokens             []BridgedToken `json:"bridged_tokens"`
	L1CoreContractAddress     string         `json:"l1_core_contract_address"`
	L1OperatorAddress         string         `json:"l1_operator_address"`
}

// BridgedToken describes a token bridged between L1 and L2.
type BridgedToken struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Decimals        int32  `json:"decimals"`
	L1TokenAddress  string `json:"l1_token_address"`
	L1BridgeAddress string `json:"l1_bridge_address"`
	L2TokenAddress  string `json:"l2_token_address"`
	L2BridgeAddress string `json:"l2_bridge_address"`
}
