package pizzarepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the class 23 code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormPizzaRepository implements ports.PizzaRepository using GORM.
type GormPizzaRepository struct {
	db *gorm.DB
}

// NewGormPizzaRepository creates a new GORM pizza repository.
func NewGormPizzaRepository(db *gorm.DB) *GormPizzaRepository {
	return &GormPizzaRepository{db: db}
}

// Add saves a new catalog entry. A name collision surfaces as
// *menu.PizzaAlreadyExistsError.
func (r *GormPizzaRepository) Add(ctx context.Context, aggregate *menu.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return menu.NewPizzaAlreadyExistsError(aggregate.Name())
		}
		return err
	}

	return nil
}

// Update saves an existing catalog entry.
func (r *GormPizzaRepository) Update(ctx context.Context, aggregate *menu.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PizzaDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "price", "available").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pizza", dto.ID)
	}

	return nil
}

// Get retrieves a catalog entry by id.
func (r *GormPizzaRepository) Get(ctx context.Context, id int64) (*menu.Pizza, error) {
	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full catalog ordered by id.
func (r *GormPizzaRepository) GetAll(ctx context.Context) ([]*menu.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllAvailable retrieves the orderable catalog ordered by id.
func (r *GormPizzaRepository) GetAllAvailable(ctx context.Context) ([]*menu.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.db.WithContext(ctx).Where("available").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Count returns the number of catalog entries.
func (r *GormPizzaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PizzaDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func toDomainList(dtos []PizzaDTO) ([]*menu.Pizza, error) {
	pizzas := make([]*menu.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		pizza, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, pizza)
	}

	return pizzas, nil
}
