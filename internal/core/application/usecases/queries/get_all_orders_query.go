// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain model and project stored records straight
// into response structures.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every stored order record.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query; no filtering or pagination is supported.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one item position inside an order summary.
type OrderItemResponse struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// GetAllOrdersQueryResponse is a stored order projected for listing.
// ID is the store-generated record identifier; ExternalID is the
// caller-supplied order id used for lookups and updates.
type GetAllOrdersQueryResponse struct {
	ID         uuid.UUID           `json:"id"`
	ExternalID string              `json:"external_id"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	TotalPrice float64             `json:"total_price"`
}
