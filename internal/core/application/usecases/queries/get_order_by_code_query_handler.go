package queries

import (
	"context"

	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler retrieves a single order view from the database.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no order carries the given code.
func (h GetOrderByCodeQueryHandler) Handle(ctx context.Context, query GetOrderByCodeQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSQL+` WHERE o.code = ?`+orderViewOrdering,
		query.OrderCode().String(),
	).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderCode().String())
	}

	return views[0], nil
}
