package services

import "errors"

var (
	// ErrSequenceMismatch ... the signer rejected the broadcast because the account sequence moved
	ErrSequenceMismatch = errors.New("account sequence mismatch")
	// ErrReferenceNotReady ... the registration transaction is not indexed yet
	ErrReferenceNotReady = errors.New("memo reference not available yet")
)
