package dto

// PreflightRequest ... body of POST /preflight; asset and reference take precedence over internal_api_id
type PreflightRequest struct {
	InternalAPIID string `json:"internal_api_id,omitempty"`
	Asset         string `json:"asset,omitempty" validate:"omitempty,asset"`
	Reference     string `json:"reference,omitempty" validate:"omitempty,digits"`
	Amount        string `json:"amount" validate:"required"`
}

// PreflightFailure ... one failed preflight check
type PreflightFailure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PreflightResponse ... outcome of a preflight evaluation
type PreflightResponse struct {
	Valid              bool               `json:"valid"`
	InternalAPIID      string             `json:"internal_api_id,omitempty"`
	RegistrationStatus string             `json:"registration_status,omitempty"`
	Asset              string             `json:"asset"`
	Reference          string             `json:"reference"`
	Amount             string             `json:"amount"`
	Decimals           int                `json:"decimals"`
	Memo               string             `json:"memo,omitempty"`
	UsageCount         int64              `json:"usage_count"`
	MaxUse             int64              `json:"max_use"`
	RemainingUses      int64              `json:"remaining_uses"`
	MinimumAmount      string             `json:"minimum_amount_to_send,omitempty"`
	InboundAddress     string             `json:"inbound_address,omitempty"`
	PaymentURI         string             `json:"payment_uri,omitempty"`
	QRPayload          string             `json:"qr_payload,omitempty"`
	ExpiresAtBlock     int64              `json:"expires_at_block,omitempty"`
	CurrentBlock       int64              `json:"current_block,omitempty"`
	BlocksRemaining    int64              `json:"blocks_remaining,omitempty"`
	SecondsRemaining   int64              `json:"seconds_remaining,omitempty"`
	Errors             []PreflightFailure `json:"errors,omitempty"`
}
