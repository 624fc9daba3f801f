// Package pizzarepo provides data transfer objects and mapping functions for
// catalog persistence.
package pizzarepo

import (
	"pizzeria/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// PizzaDTO represents the database structure for persisting catalog entries.
// Names carry a unique index so the catalog cannot hold two pizzas with the
// same name.
type PizzaDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:100;uniqueIndex"`
	Description string          `gorm:"size:500"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Available   bool
}

// TableName specifies the database table name for catalog entities.
func (PizzaDTO) TableName() string {
	return "pizzas"
}

// fromDomain converts a pizza aggregate to its database representation.
func fromDomain(aggregate *menu.Pizza) PizzaDTO {
	return PizzaDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Available:   aggregate.Available(),
	}
}

// toDomain converts a database DTO to a pizza aggregate.
func toDomain(dto PizzaDTO) (*menu.Pizza, error) {
	return menu.RestorePizza(dto.ID, dto.Name, dto.Description, dto.Price, dto.Available)
}
