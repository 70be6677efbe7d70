package model

import (
	"memoless-api/utility/constants"
)

// Registration ... one memo registration attempt and, once confirmed, the reference bound to it
type Registration struct {
	BaseModel
	Asset           string  `gorm:"type:VARCHAR(100);not null" json:"asset"`
	Memo            string  `gorm:"type:TEXT;not null" json:"memo"`
	ModifiedMemo    string  `gorm:"type:TEXT" json:"modified_memo,omitempty"`
	Status          string  `gorm:"type:VARCHAR(20);not null;default:'pending'" json:"status"`
	TxHash          *string `gorm:"type:VARCHAR(100);unique_index" json:"tx_hash,omitempty"`
	Reference       string  `gorm:"type:VARCHAR(50);index" json:"reference,omitempty"`
	ReferenceLength int     `json:"reference_length,omitempty"`
	Height          int64   `json:"height,omitempty"`
	RegisteredBy    string  `gorm:"type:VARCHAR(100)" json:"registered_by,omitempty"`
	Decimals        int     `json:"decimals,omitempty"`
	MinimumAmount   string  `gorm:"type:VARCHAR(100)" json:"minimum_amount_to_send,omitempty"`
	FailureReason   string  `gorm:"type:TEXT" json:"failure_reason,omitempty"`
}

// Confirmation ... the reference metadata written together when a registration is confirmed
type Confirmation struct {
	Reference       string
	ReferenceLength int
	Height          int64
	RegisteredBy    string
	Decimals        int
	MinimumAmount   string
}

// Valid ... a confirmation needs a reference, a height and the registering address
func (c Confirmation) Valid() bool {
	return c.Reference != "" && c.Height > 0 && c.RegisteredBy != ""
}

// IsTerminal ... confirmed and failed registrations are never updated again
func (r Registration) IsTerminal() bool {
	return r.Status == constants.REGISTRATION_CONFIRMED || r.Status == constants.REGISTRATION_FAILED
}

// Hash ... the broadcast transaction hash, empty until it is known
func (r Registration) Hash() string {
	if r.TxHash == nil {
		return ""
	}
	return *r.TxHash
}
