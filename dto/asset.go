package dto

import "time"

// Asset ... pool enriched with its decimals and USD valuation
type Asset struct {
	Asset        string `json:"asset"`
	Chain        string `json:"chain"`
	Symbol       string `json:"symbol"`
	Status       string `json:"status"`
	Decimals     int    `json:"decimals"`
	PriceUSD     string `json:"price_usd"`
	LiquidityUSD string `json:"liquidity_usd"`
	Available    bool   `json:"available"`
}

// AssetList ... GET /assets body
type AssetList struct {
	Assets    []Asset   `json:"assets"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackTransactionRequest ... body of POST /track-transaction
type TrackTransactionRequest struct {
	TxHash string `json:"tx_hash" validate:"required"`
}

// TrackTransactionResponse ...
type TrackTransactionResponse struct {
	TxHash string `json:"tx_hash"`
	URL    string `json:"url"`
}

// WalletHealth ...
type WalletHealth struct {
	Configured bool   `json:"configured"`
	Address    string `json:"address,omitempty"`
	Balance    string `json:"balance,omitempty"`
	Ready      bool   `json:"ready"`
}

// ChainHealth ...
type ChainHealth struct {
	Connected bool  `json:"connected"`
	Height    int64 `json:"height,omitempty"`
}

// HealthResponse ... GET /health body
type HealthResponse struct {
	Status      string       `json:"status"`
	Wallet      WalletHealth `json:"wallet"`
	Chain       ChainHealth  `json:"chain"`
	Persistence string       `json:"persistence"`
}
