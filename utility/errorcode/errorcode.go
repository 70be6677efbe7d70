package errorcode

// Machine readable codes returned in the "code" field of every error response
const (
	INPUT_ERR_CODE           = "INPUT_ERR"
	VALIDATION_ERR_CODE      = "VALIDATION_ERR"
	SERVER_ERR_CODE          = "SERVER_ERR"
	RECORD_NOT_FOUND         = "RECORD_NOT_FOUND"
	RATE_LIMITED             = "RATE_LIMITED"
	ASSET_NOT_FOUND          = "ASSET_NOT_FOUND"
	CHAIN_UNAVAILABLE        = "CHAIN_UNAVAILABLE"
	MALFORMED_AMOUNT         = "MALFORMED_AMOUNT"
	EXCESS_PRECISION         = "EXCESS_PRECISION"
	UNSUPPORTED_MEMO_KIND    = "UNSUPPORTED_MEMO_KIND"
	INVALID_AFFILIATE_INPUT  = "INVALID_AFFILIATE_INPUT"
	REFERENCE_NOT_REGISTERED = "REFERENCE_NOT_REGISTERED"
	REFERENCE_EXHAUSTED      = "REFERENCE_EXHAUSTED"
	REFERENCE_EXPIRED        = "REFERENCE_EXPIRED"
	AMOUNT_MISMATCH          = "AMOUNT_MISMATCH"
	BELOW_DUST_THRESHOLD     = "BELOW_DUST_THRESHOLD"
	BROADCAST_FAILED         = "BROADCAST_FAILED"
	CONFIRMATION_UNAVAILABLE = "CONFIRMATION_UNAVAILABLE"
	REGISTRATION_NOT_FOUND   = "REGISTRATION_NOT_FOUND"
	PERSISTENCE_DISABLED     = "PERSISTENCE_DISABLED"
	SEQUENCE_MISMATCH        = "SEQUENCE_MISMATCH"
	DUPLICATE_RECORD         = "DUPLICATE_RECORD"
	SQL_404                  = "record not found"
)

// Human readable messages paired with the codes above
const (
	INPUT_ERR                = "Invalid Input Supplied. See documentation"
	SERVER_ERR               = "Request Could Not Be Processed. Server encountered an error"
	VALIDATION_ERR           = "Validation Failed For Some Fields"
	RATE_LIMITED_ERR         = "Too many requests, slow down and retry shortly"
	PERSISTENCE_DISABLED_ERR = "Registration lookups are unavailable, persistence is disabled"
	REGISTRATION_404_ERR     = "Registration not found"
)
