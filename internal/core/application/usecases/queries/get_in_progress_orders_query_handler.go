package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetInProgressOrdersQueryHandler retrieves orders in preparation from the
// database, oldest first.
type GetInProgressOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetInProgressOrdersQueryHandler creates a handler for in-preparation queries.
// Requires a GORM database connection for query execution.
func NewGetInProgressOrdersQueryHandler(db *gorm.DB) GetInProgressOrdersQueryHandler {
	return GetInProgressOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when nothing is in preparation.
func (h GetInProgressOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetInProgressOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSQL+` WHERE o.status = ?`+orderViewOrdering,
		order.InProgress.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
