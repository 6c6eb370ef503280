package rightsignature

// errors.go defines the error taxonomy returned by the client

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	// ErrCodeConnection indicates that no response was obtained from the API.
	ErrCodeConnection ErrorCode = "connection"

	// ErrCodeParse indicates that the response body was not valid JSON or decoded to null.
	ErrCodeParse ErrorCode = "parse"

	// ErrCodeAPI indicates that the API answered with an error object.
	ErrCodeAPI ErrorCode = "api"

	// ErrCodeMissingIdentifier indicates that no guid could be resolved for an operation that needs one.
	ErrCodeMissingIdentifier ErrorCode = "missing_identifier"

	// ErrCodeNoLoadedResource indicates that Get was called before anything was loaded.
	ErrCodeNoLoadedResource ErrorCode = "no_loaded_resource"

	// ErrCodeInvalidArgument indicates a caller supplied value the API cannot accept.
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"

	// ErrCodeFile indicates that a local document could not be read.
	ErrCodeFile ErrorCode = "file"

	// ErrCodeEncode indicates that a request body could not be built.
	ErrCodeEncode ErrorCode = "encode"
)

// Error is the structured error returned by every operation in this package.
type Error struct {
	// code classifies the failure
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Unwrap() error   { return e.wrapped }

// HasCode reports whether err (or anything it wraps) is an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	var rsErr *Error
	if errors.As(err, &rsErr) {
		return rsErr.code == code
	}
	return false
}

// WrapConnectionError is used when the transport could not obtain a response.
func WrapConnectionError(err error, msg string) error {
	return &Error{code: ErrCodeConnection, message: msg, wrapped: err}
}

// NewParseError is used when the response body decodes to JSON null.
func NewParseError(msg string) error {
	return &Error{code: ErrCodeParse, message: msg}
}

// WrapParseError is used when the response body is not valid JSON.
func WrapParseError(err error, msg string) error {
	return &Error{code: ErrCodeParse, message: msg, wrapped: err}
}

// NewAPIError carries the API's own error message verbatim.
func NewAPIError(msg string) error {
	return &Error{code: ErrCodeAPI, message: msg}
}

// NewMissingIdentifierError is returned before any I/O when no guid can be resolved.
func NewMissingIdentifierError(resource string) error {
	return &Error{code: ErrCodeMissingIdentifier, message: fmt.Sprintf("no %s guid given, loaded or set", resource)}
}

// NewNoLoadedResourceError is returned by Get when nothing has been loaded yet.
func NewNoLoadedResourceError(resource string) error {
	return &Error{code: ErrCodeNoLoadedResource, message: fmt.Sprintf("no %s loaded", resource)}
}

// NewInvalidArgumentError is returned before any I/O when a caller supplied value is unusable.
func NewInvalidArgumentError(msg string) error {
	return &Error{code: ErrCodeInvalidArgument, message: msg}
}

// WrapFileError is used when a local document can not be read.
func WrapFileError(err error, msg string) error {
	return &Error{code: ErrCodeFile, message: msg, wrapped: err}
}

// WrapEncodeError is used when a request body can not be marshalled.
func WrapEncodeError(err error, msg string) error {
	return &Error{code: ErrCodeEncode, message: msg, wrapped: err}
}
