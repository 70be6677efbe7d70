package dto

import "time"

const (
	EVENT_REGISTRATION_SUCCEEDED = "registration.succeeded"
	EVENT_REGISTRATION_FAILED    = "registration.failed"
	EVENT_LOW_BALANCE            = "wallet.low_balance"
)

// SuccessNotification ... webhook payload for a confirmed registration
type SuccessNotification struct {
	Event            string    `json:"event"`
	Asset            string    `json:"asset"`
	Reference        string    `json:"reference"`
	Network          string    `json:"network"`
	HotWalletAddress string    `json:"hot_wallet_address"`
	HotWalletBalance string    `json:"hot_wallet_balance"`
	TxHash           string    `json:"tx_hash"`
	Memo             string    `json:"memo"`
	RegistrationID   string    `json:"registration_id"`
	Timestamp        time.Time `json:"timestamp"`
}

// FailureNotification ... webhook payload for a failed registration or an operational alert
type FailureNotification struct {
	Event            string    `json:"event"`
	Asset            string    `json:"asset"`
	Network          string    `json:"network"`
	HotWalletAddress string    `json:"hot_wallet_address"`
	HotWalletBalance string    `json:"hot_wallet_balance"`
	TxHash           string    `json:"tx_hash"`
	Memo             string    `json:"memo"`
	Error            string    `json:"error"`
	ErrorDetails     string    `json:"error_details,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}
