package constants

const (
	REGISTRATION_PENDING   = "pending"
	REGISTRATION_CONFIRMED = "confirmed"
	REGISTRATION_FAILED    = "failed"

	PERSISTENCE_ENABLED     = "enabled"
	PERSISTENCE_DISABLED    = "disabled"
	PERSISTENCE_UNREACHABLE = "unreachable"

	FAILED_TO_SUBMIT          = "failed to submit"
	BROADCAST_FAILED_MSG      = "Memo reference registration could not be broadcast"
	CONFIRMATION_FAILED_MSG   = "Memo reference was broadcast but the reference could not be read back"
	LOW_BALANCE_MSG           = "Hot wallet balance is below the alert threshold"
	LOW_BALANCE_ALERT_KEY     = "memoless:alert:low-balance"
	ASSET_CACHE_KEY           = "memoless:assets"
	AVAILABLE_POOL_STATUS     = "Available"
	SEQUENCE_MISMATCH_PATTERN = "account sequence mismatch"
)
