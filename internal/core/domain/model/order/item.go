package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Item represents a single purchasable position inside an order.
// It is a value object: immutable once attached to an Order and owned
// exclusively by it.
//
// Item follows these invariants:
//   - Title must not be empty
//   - Quantity must be zero or positive
//   - Price must be zero or positive
//   - Can only be created through NewItem
type Item struct {
	title       string
	description *string
	quantity    int
	price       float64

	isConstructed bool
}

// NewItem creates a new Item with validation.
//
// Parameters:
//   - title: the item name (required)
//   - description: optional free-form text, nil when absent
//   - quantity: number of units, must not be negative
//   - price: unit price, must not be negative
//
// Returns a validation error if any constraint is violated.
func NewItem(title string, description *string, quantity int, price float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setTitle(title),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	item.description = description
	return item, nil
}

// Title returns the item name.
func (i Item) Title() string {
	return i.title
}

// Description returns the optional item description.
// Returns nil when no description was supplied.
func (i Item) Description() *string {
	return i.description
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

func (i *Item) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	i.title = title
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%g is negative", price))
	}
	i.price = price
	return nil
}
