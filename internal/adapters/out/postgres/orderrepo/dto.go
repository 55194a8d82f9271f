// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and their stored
// document shape.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the stored shape of an order record.
//
// RecordID is generated by the repository on insert; ExternalID is the
// caller-supplied natural key. The external id column carries a plain
// (non-unique) index: duplicate natural keys are allowed by contract.
type OrderDTO struct {
	RecordID   uuid.UUID `gorm:"type:uuid;primaryKey;column:record_id"`
	ExternalID string    `gorm:"index;column:external_id"`
	Items      ItemsDTO  `gorm:"type:jsonb"`
	Status     string
	TotalPrice float64
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order records.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the stored shape of a single item position.
type ItemDTO struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ItemsDTO stores the item sequence as a single jsonb document,
// keeping the record document-shaped.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer, serializing the items to JSON.
func (i ItemsDTO) Value() (driver.Value, error) {
	if i == nil {
		i = ItemsDTO{}
	}
	return json.Marshal(i)
}

// Scan implements sql.Scanner, deserializing the items from JSON.
func (i *ItemsDTO) Scan(src any) error {
	if src == nil {
		*i = ItemsDTO{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into ItemsDTO", src)
	}
}

// fromDomain converts an order aggregate to its stored representation,
// assigning a fresh record id.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make(ItemsDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			Title:       item.Title(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return OrderDTO{
		RecordID:   uuid.New(),
		ExternalID: aggregate.ID(),
		Items:      items,
		Status:     string(aggregate.Status()),
		TotalPrice: aggregate.TotalPrice(),
	}
}

// toDomain converts a stored record back into the order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(itemDTO.Title, itemDTO.Description, itemDTO.Quantity, itemDTO.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ExternalID, status, items, dto.TotalPrice)
}
