package commands

import (
	"errors"

	"transportation/internal/pkg/guard"
)

var (
	ErrInitializeOrdersCommandIsNotConstructed = errors.New(
		"InitializeOrdersCommand must be created via NewInitializeOrdersCommand constructor",
	)
)

// InitializeOrdersCommand triggers initialization of all created transport
// orders that have become complete. This batch operation is the background
// counterpart of an explicit state change request.
//
// Example:
//
//	cmd := NewInitializeOrdersCommand()
//	handler := NewInitializeOrdersCommandHandler(uowFactory)
//
//	// Run periodically to pick up orders completed since the last pass
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Order initialization failed: %v", err)
//	}
type InitializeOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewInitializeOrdersCommand creates a command to initialize completed orders.
// This is a parameterless command that processes all created orders.
func NewInitializeOrdersCommand() InitializeOrdersCommand {
	return InitializeOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *InitializeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrInitializeOrdersCommandIsNotConstructed)
}
