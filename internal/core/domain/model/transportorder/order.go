package transportorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transportation/internal/core/domain/model/kernel"
)

// ErrTransportOrderIsNotConstructed is returned when a TransportOrder instance
// was not created through NewTransportOrder or RestoreTransportOrder.
var ErrTransportOrderIsNotConstructed = errors.New(
	"TransportOrder must be created via NewTransportOrder constructor")

// StartedCounter answers how many orders for a transport unit are currently
// in the Started state. It is consulted before an order may be started and is
// typically backed by the order store.
//
// The check-then-act sequence around CountStarted is racy across concurrent
// callers: both can observe zero before either commits. Callers must hold a
// lock keyed by the transport unit for the whole check-and-commit, or enforce
// the uniqueness in the store itself.
type StartedCounter interface {
	CountStarted(ctx context.Context, transportUnitBK kernel.Barcode) (int, error)
}

// TransportOrder is the aggregate root for moving a transport unit to a
// target. Its state may only change through ChangeState, which enforces the
// lifecycle rules and stamps the start and end dates.
//
// Invariants:
//   - the state never moves to an earlier lifecycle state
//   - a terminal state is final
//   - startDate is set iff the order has reached Started
//   - endDate is set iff the order is in a terminal state
type TransportOrder struct {
	id                  kernel.UUID
	transportUnitBK     *kernel.Barcode
	priority            PriorityLevel
	sourceLocation      string
	targetLocation      string
	targetLocationGroup string
	startDate           *time.Time
	endDate             *time.Time
	problem             *Message
	state               State

	isConstructed bool
}

// NewTransportOrder creates a transport order in Created state. The transport
// unit may be nil; it must be assigned before the order can be initialized.
func NewTransportOrder(id kernel.UUID, transportUnitBK *kernel.Barcode) (*TransportOrder, error) {
	o := &TransportOrder{
		state:         Created,
		priority:      PriorityNormal,
		isConstructed: true,
	}

	if err := o.setID(id); err != nil {
		return nil, err
	}
	if err := o.SetTransportUnitBK(transportUnitBK); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreTransportOrder rehydrates a transport order from persistence without
// running it through the lifecycle again. State and priority must be valid;
// the timestamp invariants are the store's responsibility.
func RestoreTransportOrder(
	id kernel.UUID,
	transportUnitBK *kernel.Barcode,
	priority PriorityLevel,
	sourceLocation, targetLocation, targetLocationGroup string,
	state State,
	startDate, endDate *time.Time,
	problem *Message,
) (*TransportOrder, error) {
	o := &TransportOrder{
		priority:            priority,
		sourceLocation:      sourceLocation,
		targetLocation:      targetLocation,
		targetLocationGroup: targetLocationGroup,
		state:               state,
		startDate:           startDate,
		endDate:             endDate,
		problem:             problem,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.SetTransportUnitBK(transportUnitBK),
		state.Validate(),
		priority.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the TransportOrder was created through a constructor.
func (o *TransportOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrTransportOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *TransportOrder) IsEqual(other *TransportOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *TransportOrder) ID() kernel.UUID {
	return o.id
}

// TransportUnitBK returns the barcode of the transport unit to move, or nil
// when no unit is assigned yet.
func (o *TransportOrder) TransportUnitBK() *kernel.Barcode {
	return o.transportUnitBK
}

// Priority returns the order's execution priority.
func (o *TransportOrder) Priority() PriorityLevel {
	return o.priority
}

// SourceLocation returns where the transport unit currently is, if known.
func (o *TransportOrder) SourceLocation() string {
	return o.sourceLocation
}

// TargetLocation returns the target location, empty when none is set.
func (o *TransportOrder) TargetLocation() string {
	return o.targetLocation
}

// TargetLocationGroup returns the target location group, empty when none is set.
func (o *TransportOrder) TargetLocationGroup() string {
	return o.targetLocationGroup
}

// StartDate returns when the order entered Started, or nil.
func (o *TransportOrder) StartDate() *time.Time {
	return o.startDate
}

// EndDate returns when the order entered a terminal state, or nil.
func (o *TransportOrder) EndDate() *time.Time {
	return o.endDate
}

// Problem returns the last reported problem, or nil.
func (o *TransportOrder) Problem() *Message {
	return o.problem
}

// State returns the current lifecycle state.
func (o *TransportOrder) State() State {
	return o.state
}

// HasProblem reports whether a problem was reported on this order.
func (o *TransportOrder) HasProblem() bool {
	return o.problem != nil
}

// SetTransportUnitBK assigns the transport unit to move. Passing nil unlinks
// the unit, which is only meaningful before the order is initialized.
func (o *TransportOrder) SetTransportUnitBK(transportUnitBK *kernel.Barcode) error {
	if transportUnitBK != nil {
		if err := transportUnitBK.Validate(); err != nil {
			return err
		}
	}
	o.transportUnitBK = transportUnitBK
	return nil
}

// SetPriority changes the execution priority.
func (o *TransportOrder) SetPriority(priority PriorityLevel) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

// SetSourceLocation records where the transport unit currently is.
func (o *TransportOrder) SetSourceLocation(sourceLocation string) {
	o.sourceLocation = sourceLocation
}

// SetTargetLocation sets the target location.
func (o *TransportOrder) SetTargetLocation(targetLocation string) {
	o.targetLocation = targetLocation
}

// SetTargetLocationGroup sets the target location group.
func (o *TransportOrder) SetTargetLocationGroup(targetLocationGroup string) {
	o.targetLocationGroup = targetLocationGroup
}

// ReportProblem records the last reported problem. Problems are tracked
// independently of the lifecycle state.
func (o *TransportOrder) ReportProblem(problem Message) error {
	if err := problem.Validate(); err != nil {
		return err
	}
	o.problem = &problem
	return nil
}

// HasTargetChanged reports whether either target differs between this order
// and other.
func (o *TransportOrder) HasTargetChanged(other *TransportOrder) bool {
	if other == nil {
		return false
	}
	return o.targetLocation != other.targetLocation ||
		o.targetLocationGroup != other.targetLocationGroup
}

// ChangeState requests a transition to newState and applies it when legal.
//
// The request is validated in this order: the target state must be defined; a
// completed order rejects everything; the target must not be ordered at or
// before the current state; finally the transition table for the current
// state decides, together with the state-specific preconditions (order
// completeness for Created -> Initialized, the one-started-order-per-unit rule
// for Initialized -> Started, checked through counter).
//
// On success, entering Started stamps the start date and entering a terminal
// state stamps the end date, then the state is assigned. On any rejection a
// *StateChangeError is returned and nothing is mutated.
func (o *TransportOrder) ChangeState(ctx context.Context, counter StartedCounter, newState State) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if newState == Unknown || newState.Validate() != nil {
		return newStateChangeError(ErrNullTargetState, CodeStateChangeNullState, o, newState)
	}

	if o.state.IsTerminal() {
		return newStateChangeError(ErrAlreadyCompleted, CodeStateChangeCompleted, o, newState)
	}

	// A request for the current state is refused as well; transitions are
	// strictly forward.
	if !o.state.comesBefore(newState) {
		return newStateChangeError(ErrBackwardTransition, CodeStateChangeBackwards, o, newState)
	}

	switch o.state {
	case Created:
		if !o.state.CanTransitionTo(newState) {
			return newStateChangeError(ErrIllegalFromCreated, CodeStateChangeNotReady, o, newState)
		}
		if newState == Initialized && !o.readyForInitialization() {
			return newStateChangeError(ErrIncompleteOrder, CodeStateChangeIncomplete, o, newState)
		}
	case Initialized:
		if !o.state.CanTransitionTo(newState) {
			return newStateChangeError(ErrIllegalFromInitialized, CodeStateChangeInitialized, o, newState)
		}
		if newState == Started {
			if err := o.ensureNoStartedOrder(ctx, counter, newState); err != nil {
				return err
			}
		}
	case Started:
		// Every forward state is terminal and permitted; no whitelist here.
	default:
		return newStateChangeError(ErrUnreachableState, CodeStateChangeUnreachable, o, newState)
	}

	now := time.Now()
	switch {
	case newState == Started:
		o.startDate = &now
	case newState.IsTerminal():
		o.endDate = &now
	}
	o.state = newState

	return nil
}

// readyForInitialization checks the completeness condition for leaving
// Created: a transport unit and at least one target.
func (o *TransportOrder) readyForInitialization() bool {
	return o.transportUnitBK != nil &&
		(o.targetLocation != "" || o.targetLocationGroup != "")
}

// ensureNoStartedOrder enforces the one-started-order-per-unit rule.
func (o *TransportOrder) ensureNoStartedOrder(ctx context.Context, counter StartedCounter, newState State) error {
	if o.transportUnitBK == nil {
		return newStateChangeError(ErrIncompleteOrder, CodeStateChangeIncomplete, o, newState)
	}

	started, err := counter.CountStarted(ctx, *o.transportUnitBK)
	if err != nil {
		return fmt.Errorf("counting started orders for unit %s: %w", o.transportUnitBK, err)
	}
	if started > 0 {
		return newStateChangeError(ErrUnitAlreadyMoving, CodeStateChangeAlreadyStarted, o, newState)
	}

	return nil
}

func (o *TransportOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}
