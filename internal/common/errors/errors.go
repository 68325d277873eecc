// Package errors provides standardized error handling for the chat Lambda handlers.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration errors - reported before any request-specific logic runs.
	ErrCodeConfigMissing ErrorCode = "CONFIG_MISSING"

	// Validation errors - malformed or missing request fields.
	ErrCodeRequestInvalid ErrorCode = "REQUEST_INVALID"
	ErrCodeUnknownAction  ErrorCode = "UNKNOWN_ACTION"

	// External-call errors - converted at the call site, never retried.
	ErrCodeSessionGetFailed   ErrorCode = "SESSION_GET_FAILED"
	ErrCodeSessionPutFailed   ErrorCode = "SESSION_PUT_FAILED"
	ErrCodeExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	ErrCodeFileFetchFailed    ErrorCode = "FILE_FETCH_FAILED"
	ErrCodeChatStartFailed    ErrorCode = "CHAT_START_FAILED"
	ErrCodeBotAssociateFailed ErrorCode = "BOT_ASSOCIATE_FAILED"
	ErrCodeAssetUploadFailed  ErrorCode = "ASSET_UPLOAD_FAILED"
	ErrCodeCallbackSendFailed ErrorCode = "CALLBACK_SEND_FAILED"

	// Domain terminal states - defined outcomes, not system failures.
	ErrCodeWageFieldNotFound ErrorCode = "WAGE_FIELD_NOT_FOUND"
	ErrCodeRetryCeiling      ErrorCode = "RETRY_CEILING_REACHED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewConfigMissingError reports a missing required configuration value.
func NewConfigMissingError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigMissing,
		Message:   "Required configuration value is missing",
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestInvalidError reports a malformed or incomplete request body.
func NewRequestInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestInvalid,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownActionError reports an unrecognized action value.
func NewUnknownActionError(action string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownAction,
		Message:   "Unknown action type",
		Details:   fmt.Sprintf("action: %s", action),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionGetFailedError wraps a Lex GetSession failure.
func NewSessionGetFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionGetFailed,
		Message:   "Lex get session error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionPutFailedError wraps a Lex PutSession failure.
func NewSessionPutFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionPutFailed,
		Message:   "Lex put session error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExtractionFailedError wraps a document analysis failure.
func NewExtractionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExtractionFailed,
		Message:   "Document extraction error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileFetchFailedError wraps an uploaded-file retrieval failure.
func NewFileFetchFailedError(url string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileFetchFailed,
		Message:   "Uploaded file retrieval error",
		Details:   fmt.Sprintf("url: %s, error: %s", url, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWageFieldNotFoundError reports a document with no recognizable wage
// field. A domain terminal state, not retryable.
func NewWageFieldNotFoundError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWageFieldNotFound,
		Message:   "Wage field not found in document",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewChatStartFailedError wraps a StartChatContact failure.
func NewChatStartFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatStartFailed,
		Message:   "Start chat contact error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBotAssociateFailedError wraps a Connect bot association failure.
func NewBotAssociateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBotAssociateFailed,
		Message:   "Connect bot association error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssetUploadFailedError wraps an S3 asset upload failure.
func NewAssetUploadFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssetUploadFailed,
		Message:   "Website asset upload error",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCallbackSendFailedError wraps a provisioning callback delivery failure.
func NewCallbackSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCallbackSendFailed,
		Message:   "Provisioning callback delivery error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
