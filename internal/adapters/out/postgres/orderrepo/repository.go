package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// pgLockNotAvailable is the class 55 code the server returns when a row
	// lock cannot be granted within lock_timeout.
	pgLockNotAvailable = "55P03"

	// pgUniqueViolation is the code for inserts breaking a unique index.
	pgUniqueViolation = "23505"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its lines in a single insert. A generated code
// colliding with a stored one breaks the unique index and is classified as
// order.ErrOrderCodeTaken so the caller can distinguish it from storage
// failures.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", order.ErrOrderCodeTaken, aggregate.Code())
		}
		return err
	}

	return nil
}

// Update saves the lifecycle state of an existing order. Only status and the
// claim and completion timestamps are written; lines are immutable.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status":       aggregate.Status().String(),
			"claimed_at":   aggregate.ClaimedAt(),
			"completed_at": aggregate.CompletedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.Code().String())
	}

	return nil
}

// GetByCode retrieves an order with its lines by tracking code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code kernel.OrderCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCodeForUpdate retrieves an order like GetByCode but locks the order row
// with SELECT ... FOR UPDATE for the remainder of the transaction. A second
// caller blocks on the lock and, once it is granted, sees the first caller's
// committed state. Only the order row is locked; lines are immutable so their
// read needs no lock.
func (r *GormOrderRepository) GetByCodeForUpdate(ctx context.Context, code kernel.OrderCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, "code = ?", code.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return nil, errs.NewObjectLockedErrorWithCause("order", code.String(), err)
		}

		return nil, err
	}

	return toDomain(dto)
}

// GetCreatedAfter retrieves all orders created strictly after the given
// instant, oldest first.
func (r *GormOrderRepository) GetCreatedAfter(ctx context.Context, after time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("created_at > ?", after).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
