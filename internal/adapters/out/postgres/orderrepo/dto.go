// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The tracking code carries a unique index for customer lookups; status and
// creation time are indexed for queue and duplicate-window scans.
type OrderDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Code          string    `gorm:"size:16;uniqueIndex"`
	CustomerName  string    `gorm:"size:100"`
	CustomerPhone string    `gorm:"size:30"`
	Status        string    `gorm:"size:16;index"`
	CreatedAt     time.Time `gorm:"index"`
	ClaimedAt     *time.Time
	CompletedAt   *time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one stored order line. Lines are immutable after the
// order is created and always travel with their order.
type ItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"index"`
	PizzaID  int64 `gorm:"index"`
	Quantity int
	Notes    *string `gorm:"size:200"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:       item.ID(),
			OrderID:  aggregate.ID(),
			PizzaID:  item.PizzaID(),
			Quantity: item.Quantity(),
			Notes:    item.Notes(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID(),
		Code:          aggregate.Code().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		ClaimedAt:     aggregate.ClaimedAt(),
		CompletedAt:   aggregate.CompletedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// so stored rows pass the same consistency checks as new orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	code, err := kernel.OrderCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(itemDTO.ID, itemDTO.PizzaID, itemDTO.Quantity, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		code,
		dto.CustomerName,
		dto.CustomerPhone,
		status,
		dto.CreatedAt,
		dto.ClaimedAt,
		dto.CompletedAt,
		items,
	)
}
