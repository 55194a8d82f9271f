package queries

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order record in the store, including
// duplicates sharing the same external id.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and projects each record into a summary.
// Results are sorted by insertion time for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			record_id,
			external_id,
			items,
			status,
			total_price
		FROM orders
		ORDER BY created_at, record_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var recordID uuid.UUID
		var rawItems []byte

		err = rows.Scan(
			&recordID,
			&orderResp.ExternalID,
			&rawItems,
			&orderResp.Status,
			&orderResp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		orderResp.ID = recordID
		orderResp.Items = make([]OrderItemResponse, 0)
		if len(rawItems) > 0 {
			if unmarshalErr := json.Unmarshal(rawItems, &orderResp.Items); unmarshalErr != nil {
				return nil, unmarshalErr
			}
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
