package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler applies an out-of-band status change to a
// stored order record, without re-invoking the delivery provider or
// re-validating the full order shape.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand("o1", "DONE")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle overwrites the stored record's status with the supplied value.
// Updating an id with no stored record is a silent no-op, not an error.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatus(ctx, cmd.OrderID(), cmd.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
