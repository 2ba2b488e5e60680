// Package transportorder provides the domain model for transport orders in
// the warehouse. A transport order moves a transport unit, identified by its
// barcode, to a target location or location group.
//
// The package includes:
//   - TransportOrder: the aggregate root carrying identity, targets, priority,
//     timestamps and the last reported problem
//   - State: the lifecycle state machine with an explicit transition table
//   - StateChangeError: the structured error taxonomy for rejected transitions
//
// Key business rules:
//   - States only move forward: Created -> Initialized -> Started -> one of
//     Finished, OnFailure, Canceled. The three end states are terminal.
//   - An order may only be initialized once its transport unit and at least
//     one target are set.
//   - At most one order per transport unit may be Started at a time. The check
//     consults a StartedCounter collaborator; callers must serialize
//     transitions per transport unit around it.
//   - Entering Started stamps the start date, entering a terminal state stamps
//     the end date. A rejected transition mutates nothing.
package transportorder
