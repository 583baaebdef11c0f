package pkg

import (
	"fmt"
	"strings"

	"github.com/Rendinex/VTCRendinex/constant"
)

// ValidationError records an error indicating the input or the data returned
// by the node did not have the expected shape.
type ValidationError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string
	Message    string
	Code       string
	Err        error `json:"err,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// FailedPreconditionError indicates a precondition failed before the report could run.
type FailedPreconditionError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e FailedPreconditionError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

func (e FailedPreconditionError) Unwrap() error {
	return e.Err
}

// InternalServerError indicates an unexpected failure inside the reporter.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

func (e InternalServerError) Unwrap() error {
	return e.Err
}

// Methods to create errors for different scenarios:

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
//
// Parameters:
// - err: The error to be validated.
// - entityType: The type of the entity associated with the error.
//
// Returns:
// - An InternalServerError with the appropriate code, title, message.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       constant.ErrInternalServer.Error(),
		Title:      "Internal Error",
		Message:    "The reporter encountered an unexpected error.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title, and message.
// error: The appropriate business error with code, title, and message.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	switch err {
	case constant.ErrMissingRPCURL:
		return FailedPreconditionError{
			EntityType: entityType,
			Code:       constant.ErrMissingRPCURL.Error(),
			Title:      "Missing node endpoint",
			Message:    fmt.Sprintf("The %s environment variable is not set. Please configure the URL of the node to query.", constant.EnvRPCURL),
			Err:        err,
		}
	case constant.ErrUnexpectedResultFormat:
		return ValidationError{
			EntityType: entityType,
			Code:       constant.ErrUnexpectedResultFormat.Error(),
			Title:      "Unexpected result format",
			Message:    fmt.Sprintf("The %s call returned a result that cannot be read as a license report: %s", constant.GetLicensesMethod, fmt.Sprint(args...)),
			Err:        err,
		}
	case constant.ErrInvalidContractAddress:
		return FailedPreconditionError{
			EntityType: entityType,
			Code:       constant.ErrInvalidContractAddress.Error(),
			Title:      "Invalid contract address",
			Message:    fmt.Sprintf("The contract address '%s' is not a valid hex address.", fmt.Sprint(args...)),
			Err:        err,
		}
	case constant.ErrInvalidABI:
		return FailedPreconditionError{
			EntityType: entityType,
			Code:       constant.ErrInvalidABI.Error(),
			Title:      "Invalid contract interface",
			Message:    fmt.Sprintf("The contract interface could not be used: %s", fmt.Sprint(args...)),
			Err:        err,
		}
	}

	return err
}
