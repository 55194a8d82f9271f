package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer purchase request tracked through a status
// lifecycle. It is the aggregate root of the fulfillment core.
//
// Order follows these invariants:
//   - ID is the caller-supplied external identifier and must not be empty.
//     The system does not enforce global uniqueness of the ID; the persistence
//     layer allows duplicate natural keys unless the caller guarantees
//     uniqueness.
//   - Status is always one of the seven-value vocabulary.
//   - Items are immutable once attached.
//   - TotalPrice must be zero or positive.
//   - Can only be created through NewOrder or RestoreOrder.
type Order struct {
	// id is the external-facing identifier supplied by the caller.
	id string

	// status is the current state in the order lifecycle.
	status Status

	// items is the ordered sequence of purchased positions.
	items []Item

	// totalPrice is the total order value.
	totalPrice float64

	// isConstructed ensures the order was created via a factory method.
	isConstructed bool
}

// NewOrder creates a new Order instance with validation.
//
// Parameters:
//   - id: caller-supplied external identifier (required)
//   - status: initial lifecycle status (must be valid)
//   - items: purchased positions, each created through NewItem
//   - totalPrice: total order value (must not be negative)
//
// Returns a validation error if any parameter is invalid; an order that
// fails parsing is never handed to the persistence layer.
func NewOrder(id string, status Status, items []Item, totalPrice float64) (*Order, error) {
	order := &Order{isConstructed: true}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setItems(items),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It applies the same
// validation as NewOrder; stored records that no longer satisfy the model
// surface an error instead of a half-formed aggregate.
func RestoreOrder(id string, status Status, items []Item, totalPrice float64) (*Order, error) {
	return NewOrder(id, status, items, totalPrice)
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their external identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the caller-supplied external identifier.
func (o *Order) ID() string {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the purchased positions. The returned slice is a copy;
// items attached to an order are immutable.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the total order value.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// ChangeStatus replaces the order's status with the supplied value.
//
// The status vocabulary enforces no transition graph: any valid status may
// replace any other. Only membership in the seven-value set is checked.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	for i, item := range items {
		if !item.isConstructed {
			return errs.NewValueIsInvalidErrorWithCause("items are invalid",
				fmt.Errorf("item at index %d was not created via NewItem", i))
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%g is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}
