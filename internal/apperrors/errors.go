package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTransferFailed indicates that a transfer violated a business rule
// (currency mismatch, insufficient funds, persistence conflict) and any
// partially written records were rolled back. A failed transfer leaves no
// partial state visible, so callers may retry.
var ErrTransferFailed = errors.New("transfer failed")

// ErrUnsupported indicates a transaction kind the engine does not implement.
var ErrUnsupported = errors.New("unsupported transaction kind")
