package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt ... int64 that accepts both JSON numbers and quoted numbers, as thornode mixes the two
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	value, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(value)
	return nil
}

// Pool ... entry of the thornode pool listing
type Pool struct {
	Asset         string  `json:"asset"`
	Status        string  `json:"status"`
	Decimals      FlexInt `json:"decimals"`
	BalanceAsset  string  `json:"balance_asset"`
	BalanceRune   string  `json:"balance_rune"`
	AssetTorPrice string  `json:"asset_tor_price"`
}

// InboundAddress ... entry of the thornode inbound address listing
type InboundAddress struct {
	Chain              string `json:"chain"`
	Address            string `json:"address"`
	Router             string `json:"router,omitempty"`
	Halted             bool   `json:"halted"`
	ChainTradingPaused bool   `json:"chain_trading_paused"`
	DustThreshold      string `json:"dust_threshold"`
	GasRate            string `json:"gas_rate"`
}

// MemoReference ... reference bound to a registration transaction
type MemoReference struct {
	Asset        string  `json:"asset"`
	Memo         string  `json:"memo"`
	Reference    string  `json:"reference"`
	Height       FlexInt `json:"height"`
	RegisteredBy string  `json:"registered_by"`
}

// MemoCheck ... usage statistics of the reference an amount decodes to
type MemoCheck struct {
	Reference  string  `json:"reference"`
	Available  bool    `json:"available"`
	ExpiresAt  FlexInt `json:"expires_at"`
	UsageCount FlexInt `json:"usage_count"`
	MaxUse     FlexInt `json:"max_use"`
	Memo       string  `json:"memo"`
}

// LastBlock ... thornode last block entry, one per external chain
type LastBlock struct {
	Chain          string  `json:"chain"`
	LastObservedIn FlexInt `json:"last_observed_in"`
	LastSignedOut  FlexInt `json:"last_signed_out"`
	Thorchain      FlexInt `json:"thorchain"`
}

// Network ... subset of the thornode network constants
type Network struct {
	NativeTxFeeRune       string `json:"native_tx_fee_rune"`
	NativeOutboundFeeRune string `json:"native_outbound_fee_rune"`
}

// Coin ... cosmos bank coin
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Balances ... cosmos bank balances of an address
type Balances struct {
	Balances []Coin `json:"balances"`
}

var _ json.Unmarshaler = (*FlexInt)(nil)
