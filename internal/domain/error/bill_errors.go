package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill id does not resolve within the
	// caller's user scope.
	ErrBillNotFound = errors.New("bill not found")

	// ErrBillAlreadyAdvanced is returned when a concurrent mark-paid advanced
	// the bill's due date first; the losing call must not advance again.
	ErrBillAlreadyAdvanced = errors.New("bill due date already advanced")

	// ErrNoBillFieldsToUpdate is returned when an update request carries no
	// updatable fields.
	ErrNoBillFieldsToUpdate = errors.New("no updatable fields")

	// ErrInvalidBillAmount is returned when the bill amount is negative or malformed.
	ErrInvalidBillAmount = errors.New("invalid bill amount")

	// ErrInvalidBillDueDate is returned when a due date cannot be parsed.
	ErrInvalidBillDueDate = errors.New("invalid bill due date")
)

// BillErrorCode defines error codes for bill errors.
type BillErrorCode string

const (
	ErrCodeBillNotFound        BillErrorCode = "BIL-010001"
	ErrCodeBillAlreadyAdvanced BillErrorCode = "BIL-010002"
	ErrCodeNoBillFields        BillErrorCode = "BIL-010003"
	ErrCodeInvalidBillAmount   BillErrorCode = "BIL-010004"
	ErrCodeInvalidBillDueDate  BillErrorCode = "BIL-010005"
	ErrCodeMissingBillFields   BillErrorCode = "BIL-010006"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
