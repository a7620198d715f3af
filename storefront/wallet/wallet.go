// Package wallet models the browser-injected blockchain account
// provider used for the MetaMask payment method.
package wallet

import (
	"context"
	"fmt"
	"math/big"
)

// Provider is the EIP-1193 request surface the storefront talks to.
type Provider interface {
	Request(ctx context.Context, method string, params ...interface{}) (interface{}, error)
}

// Provider error codes per EIP-1193 / MetaMask.
const (
	CodeUserRejected      = 4001
	CodeUnrecognizedChain = 4902
)

type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("wallet: %s (code %d)", e.Message, e.Code)
}

// NativeCurrency describes the chain's value token.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Network carries the wallet_addEthereumChain parameters for a chain.
type Network struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

var TelosMainnet = Network{
	ChainID:           "0x28", // 40 in decimal
	ChainName:         "Telos EVM Mainnet",
	NativeCurrency:    NativeCurrency{Name: "TLOS", Symbol: "TLOS", Decimals: 18},
	RPCURLs:           []string{"https://mainnet.telos.net/evm"},
	BlockExplorerURLs: []string{"https://teloscan.io/"},
}

var TelosTestnet = Network{
	ChainID:           "0x29", // 41 in decimal
	ChainName:         "Telos EVM Testnet",
	NativeCurrency:    NativeCurrency{Name: "TLOS", Symbol: "TLOS", Decimals: 18},
	RPCURLs:           []string{"https://testnet.telos.net/evm"},
	BlockExplorerURLs: []string{"https://testnet.teloscan.io/"},
}

// Transaction is the eth_sendTransaction parameter block.
type Transaction struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Gas   string `json:"gas"`
}

var weiPerToken = new(big.Float).SetFloat64(1e18)

// ToWeiHex converts a token amount to a 0x-prefixed wei value
// (1 token = 10^18 wei), rounding to the nearest wei.
func ToWeiHex(amount float64) string {
	wei := new(big.Float).Mul(new(big.Float).SetFloat64(amount), weiPerToken)
	rounded, _ := new(big.Float).Add(wei, big.NewFloat(0.5)).Int(nil)
	return "0x" + rounded.Text(16)
}
