package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
)

// ItemPayload carries one raw item position of an inbound order record.
// Shape validation happens when the payload is parsed into the domain model.
type ItemPayload struct {
	Title       string
	Description *string
	Quantity    int
	Price       float64
}

// ProcessOrderCommand represents a raw inbound order record to run through
// the processing pipeline. It carries the payload as received; parsing it
// into the Order model is the pipeline's first step.
//
// Example:
//
//	cmd, err := NewProcessOrderCommand("o1", "NEW",
//	    []ItemPayload{{Title: "avocado", Quantity: 2, Price: 27.0}}, 54.0)
//	if err != nil {
//	    return fmt.Errorf("invalid order payload: %w", err)
//	}
//
//	processed, err := handler.Handle(ctx, cmd)
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	status     string
	items      []ItemPayload
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command from a raw order payload.
// Requires the caller-supplied order id and a status literal; the remaining
// shape constraints are checked by the domain model during parsing.
func NewProcessOrderCommand(
	orderID string,
	status string,
	items []ItemPayload,
	totalPrice float64,
) (ProcessOrderCommand, error) {
	cmd := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ProcessOrderCommand{}, err
	}

	cmd.items = make([]ItemPayload, len(items))
	copy(cmd.items, items)
	cmd.totalPrice = totalPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderCommandIsNotConstructed if validation fails.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the caller-supplied external order identifier.
func (c ProcessOrderCommand) OrderID() string {
	return c.orderID
}

// Status returns the raw status literal of the inbound record.
func (c ProcessOrderCommand) Status() string {
	return c.status
}

// Items returns the raw item positions of the inbound record.
func (c ProcessOrderCommand) Items() []ItemPayload {
	items := make([]ItemPayload, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the declared total price of the inbound record.
func (c ProcessOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *ProcessOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("id")
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessOrderCommand) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.status = status
	return nil
}
