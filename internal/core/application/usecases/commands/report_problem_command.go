package commands

import (
	"errors"

	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/pkg/errs"
	"transportation/internal/pkg/guard"
)

var (
	ErrReportProblemCommandIsNotConstructed = errors.New(
		"ReportProblemCommand must be created via NewReportProblemCommand constructor",
	)
)

// ReportProblemCommand records the last reported problem on a transport
// order. Problems are bookkeeping only; they never change the order's state.
type ReportProblemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	text      string
	messageNo string

	guard guard.ConstructorGuard
}

// NewReportProblemCommand creates a problem report command. The text is
// required; the message number may be empty.
func NewReportProblemCommand(orderID kernel.UUID, text, messageNo string) (ReportProblemCommand, error) {
	cmd := ReportProblemCommand{
		messageNo: messageNo,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setText(text),
	); err != nil {
		return ReportProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportProblemCommand) Validate() error {
	return c.guard.Validate(ErrReportProblemCommandIsNotConstructed)
}

// OrderID returns the order the problem belongs to.
func (c ReportProblemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Text returns the problem description.
func (c ReportProblemCommand) Text() string {
	return c.text
}

// MessageNo returns the external message number, empty when none.
func (c ReportProblemCommand) MessageNo() string {
	return c.messageNo
}

func (c *ReportProblemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReportProblemCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("problem text")
	}
	c.text = text
	return nil
}
