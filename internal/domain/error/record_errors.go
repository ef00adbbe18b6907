package error

import "errors"

// Income, expense and transaction record errors.
var (
	// ErrInvalidAmount is returned when an amount on a creation request is
	// negative or malformed. Stored amounts, by contrast, degrade to zero.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidExpenseCategory is returned when the base category is not one
	// of need/wants/guilts.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidExpenseDate is returned when an expense date cannot be parsed.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrMissingBillName is returned when a recurring expense does not name
	// the bill it should spawn.
	ErrMissingBillName = errors.New("bill name required for recurring expense")

	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// RecordErrorCode defines error codes for record validation errors.
type RecordErrorCode string

const (
	ErrCodeInvalidAmount          RecordErrorCode = "REC-010001"
	ErrCodeInvalidExpenseCategory RecordErrorCode = "REC-010002"
	ErrCodeInvalidExpenseDate     RecordErrorCode = "REC-010003"
	ErrCodeMissingRecordFields    RecordErrorCode = "REC-010004"
	ErrCodeMissingBillName        RecordErrorCode = "REC-010005"
	ErrCodeTransactionNotFound    RecordErrorCode = "REC-010006"
)

// RecordError represents a record validation error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
