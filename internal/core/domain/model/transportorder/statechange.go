package transportorder

import (
	"errors"
	"fmt"

	"transportation/internal/core/domain/model/kernel"
)

// Sentinel errors classifying why a state change was rejected. Every
// StateChangeError unwraps to exactly one of them.
var (
	// ErrNullTargetState is returned when the requested state is absent or
	// not a known lifecycle state.
	ErrNullTargetState = errors.New("target state is null or undefined")

	// ErrBackwardTransition is returned when the requested state is not
	// ordered after the current one. States must not move backward.
	ErrBackwardTransition = errors.New("state must not move backward")

	// ErrIllegalFromCreated is returned when a Created order is asked to move
	// anywhere but Initialized or Canceled.
	ErrIllegalFromCreated = errors.New("created order may only be initialized or canceled")

	// ErrIncompleteOrder is returned when an order misses its transport unit
	// or both targets and therefore cannot be initialized.
	ErrIncompleteOrder = errors.New("order is not complete enough to be initialized")

	// ErrIllegalFromInitialized is returned when an Initialized order is asked
	// to move anywhere but Started, Canceled or OnFailure.
	ErrIllegalFromInitialized = errors.New("initialized order may only be started, canceled or set on failure")

	// ErrUnitAlreadyMoving is returned when another order for the same
	// transport unit is already Started.
	ErrUnitAlreadyMoving = errors.New("transport unit already has a started order")

	// ErrAlreadyCompleted is returned for any state change requested on an
	// order in a terminal state.
	ErrAlreadyCompleted = errors.New("order has already been completed")

	// ErrUnreachableState is returned when the current state is outside the
	// known lifecycle. This indicates corrupted data or a versioning bug and
	// must be treated as a defect, not retried.
	ErrUnreachableState = errors.New("order is in an unmanaged state")
)

// Message codes identifying a rejected state change towards the Translator
// collaborator. The core never renders text itself; presentation layers
// translate these codes.
const (
	CodeStateChangeNullState      = "order.state.change.null"
	CodeStateChangeBackwards      = "order.state.change.backwards"
	CodeStateChangeNotReady       = "order.state.change.notready"
	CodeStateChangeIncomplete     = "order.state.change.incomplete"
	CodeStateChangeInitialized    = "order.state.change.initialized"
	CodeStateChangeAlreadyStarted = "order.state.change.alreadystarted"
	CodeStateChangeCompleted      = "order.state.change.completed"
	CodeStateChangeUnreachable    = "order.state.change.unreachable"
)

// StateChangeError describes a rejected transition with enough context for the
// caller to render a message: order identity, both states and the transport
// unit involved. It unwraps to one of the sentinel kinds above, so callers
// classify with errors.Is.
type StateChangeError struct {
	OrderID        kernel.UUID
	CurrentState   State
	RequestedState State
	TransportUnit  string
	MessageCode    string

	kind error
}

func newStateChangeError(kind error, code string, o *TransportOrder, requested State) *StateChangeError {
	var unit string
	if bk := o.TransportUnitBK(); bk != nil {
		unit = bk.String()
	}
	return &StateChangeError{
		OrderID:        o.ID(),
		CurrentState:   o.State(),
		RequestedState: requested,
		TransportUnit:  unit,
		MessageCode:    code,
		kind:           kind,
	}
}

func (e *StateChangeError) Error() string {
	return fmt.Sprintf("state change of order %s from %s to %s rejected: %s",
		e.OrderID, e.CurrentState, e.RequestedState, e.kind)
}

func (e *StateChangeError) Unwrap() error {
	return e.kind
}

// TranslationArgs returns the arguments matching the error's message code, in
// the order the translation catalog expects them.
func (e *StateChangeError) TranslationArgs() []any {
	switch e.MessageCode {
	case CodeStateChangeNotReady, CodeStateChangeInitialized:
		return []any{e.RequestedState, e.OrderID}
	case CodeStateChangeAlreadyStarted:
		return []any{e.TransportUnit, e.OrderID}
	case CodeStateChangeUnreachable:
		return []any{e.CurrentState, e.OrderID}
	default:
		return []any{e.OrderID}
	}
}
