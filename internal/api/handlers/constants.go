package handlers

const (
	errorCodeInvalidInput   = "invalid_input"
	errorCodeInputTooLong   = "input_too_long"
	errorCodeSignInRequired = "sign_in_required"
	errorCodeRejectedInput  = "rejected_input"
	errorCodeNotFound       = "not_found"
	errorCodeUnauthorized   = "unauthorized"
	errorCodeInternal       = "internal_error"
)
