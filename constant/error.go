package constant

import "errors"

// Structured error codes for reporter failures
var (
	ErrMissingRPCURL          = errors.New("VTC-0001")
	ErrUnexpectedResultFormat = errors.New("VTC-0002")
	ErrContractCallFailed     = errors.New("VTC-0003")
	ErrInvalidContractAddress = errors.New("VTC-0004")
	ErrInvalidABI             = errors.New("VTC-0005")
	ErrInternalServer         = errors.New("VTC-0006")
)
