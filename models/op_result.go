package models

// OpResult is the value every engine operation returns to its caller.
// Failures are data, not errors: the store stays untouched and the caller
// decides whether to retry or surface the message.
type OpResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func OpOk(message string) OpResult {
	return OpResult{OK: true, Message: message}
}

func OpFail(message string) OpResult {
	return OpResult{OK: false, Message: message}
}
