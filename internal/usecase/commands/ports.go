package commands

import (
	"context"
)

// ConfirmationNotifier hands a freshly assigned code to the delivery side.
// Implementations must not block the caller and must not report failures back.
type ConfirmationNotifier interface {
	ScheduleConfirmationCode(ctx context.Context, code string)
}

// Metrics receives lifecycle counters. Satisfied by *metrics.Registry.
type Metrics interface {
	ObserveOperation(operation string, err error)
	ObserveTouch(err error)
	AddCodesAssigned(n int)
}

const (
	opCreate      = "create"
	opUpdate      = "update"
	opDestroy     = "destroy"
	opAssignCode  = "assign_code"
	opAdjustLines = "adjust_line_items"
)
