package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an out-of-band status change for a
// stored order, e.g. a provider callback or an operator action. It bypasses
// the processing pipeline entirely.
//
// The operation is intentionally permissive: no existence check, no
// transition check. Only membership in the status vocabulary is enforced.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command from the raw
// request values. The status literal must be one of the seven valid values.
func NewUpdateOrderStatusCommand(orderID, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the external identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Status returns the status to write.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("id")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
