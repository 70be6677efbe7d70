package services

import "memoless-api/utility/logger"

// AdvisoryResult ... outcome of a best effort side effect. Callers log it and move on.
type AdvisoryResult struct {
	Operation string
	Skipped   bool
	Err       error
}

// OK ...
func (r AdvisoryResult) OK() bool {
	return r.Err == nil
}

func advisory(operation string, err error) AdvisoryResult {
	return AdvisoryResult{Operation: operation, Err: err}
}

func skipped(operation string) AdvisoryResult {
	return AdvisoryResult{Operation: operation, Skipped: true}
}

// Log ... records a failed advisory operation without surfacing it
func (r AdvisoryResult) Log() {
	switch {
	case r.Err != nil:
		logger.Warning("Advisory operation %s failed and was ignored : %s", r.Operation, r.Err)
	case r.Skipped:
		logger.Debug("Advisory operation %s skipped", r.Operation)
	}
}
