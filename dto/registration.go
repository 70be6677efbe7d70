package dto

import "time"

// RegisterRequest ... body of POST /register
type RegisterRequest struct {
	Asset                  string `json:"asset" validate:"required,asset"`
	Memo                   string `json:"memo" validate:"required"`
	RequestedInAssetAmount string `json:"requested_in_asset_amount,omitempty"`
}

// RegisterResponse ... confirmed registration returned to the caller
type RegisterResponse struct {
	InternalAPIID          string `json:"internal_api_id,omitempty"`
	Asset                  string `json:"asset"`
	Memo                   string `json:"memo"`
	Reference              string `json:"reference"`
	ReferenceLength        int    `json:"reference_length"`
	Height                 int64  `json:"height"`
	RegistrationHash       string `json:"registration_hash"`
	RegisteredBy           string `json:"registered_by"`
	TxHash                 string `json:"txHash"`
	Decimals               int    `json:"decimals"`
	MinimumAmountToSend    string `json:"minimum_amount_to_send"`
	SuggestedInAssetAmount string `json:"suggested_in_asset_amount,omitempty"`
}

// RegistrationStatus ... body of GET /register/{id}
type RegistrationStatus struct {
	InternalAPIID       string    `json:"internal_api_id"`
	Asset               string    `json:"asset"`
	Memo                string    `json:"memo"`
	ModifiedMemo        string    `json:"modified_memo,omitempty"`
	Status              string    `json:"status"`
	TxHash              string    `json:"txHash,omitempty"`
	Reference           string    `json:"reference,omitempty"`
	ReferenceLength     int       `json:"reference_length,omitempty"`
	Height              int64     `json:"height,omitempty"`
	RegisteredBy        string    `json:"registered_by,omitempty"`
	Decimals            int       `json:"decimals,omitempty"`
	MinimumAmountToSend string    `json:"minimum_amount_to_send,omitempty"`
	FailureReason       string    `json:"failure_reason,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// BroadcastRequest ... payload sent to the transaction signer
type BroadcastRequest struct {
	Memo    string `json:"memo"`
	Asset   string `json:"asset"`
	Network string `json:"network"`
}

// BroadcastResponse ... signer answer once the registration transaction is in the mempool
type BroadcastResponse struct {
	TxHash string `json:"tx_hash"`
	Code   int    `json:"code,omitempty"`
	RawLog string `json:"raw_log,omitempty"`
}
