package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a booking session does not exist or has
// expired from the cache.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// FlowError codes. Handlers map these to client-facing statuses; they are the
// server-side analog of the original UI disabling forward navigation.
const (
	CodeInvalidTransition   = "invalidTransition"
	CodeUnknownStep         = "unknownStep"
	CodeServiceRequired     = "serviceRequired"
	CodeSlotRequired        = "slotRequired"
	CodeSlotUnavailable     = "slotUnavailable"
	CodeDateMismatch        = "dateMismatch"
	CodeInvalidDate         = "invalidDate"
	CodeNotPackage          = "notPackage"
	CodeSelectionFull       = "selectionFull"
	CodeSelectionIncomplete = "selectionIncomplete"
	CodeSlotNotSelected     = "slotNotSelected"
	CodeOutsideWindow       = "outsideWindow"
)

// FlowError describes why a wizard operation was rejected.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, format string, args ...any) error {
	return &FlowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
