package cmd

import (
	"log/slog"

	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewDuplicateOrderDetector())
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePizzaCommandHandler() commands.CreatePizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPizzaAvailabilityCommandHandler() commands.SetPizzaAvailabilityCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPizzaAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderByCodeQueryHandler() queries.GetOrderByCodeQueryHandler {
	return queries.NewGetOrderByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInProgressOrdersQueryHandler() queries.GetInProgressOrdersQueryHandler {
	return queries.NewGetInProgressOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePizzasQueryHandler() queries.GetAvailablePizzasQueryHandler {
	return queries.NewGetAvailablePizzasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPizzasQueryHandler() queries.GetAllPizzasQueryHandler {
	return queries.NewGetAllPizzasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetInProgressOrdersQueryHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPizzaUoWFactory func() commands.PizzaUoW

func (f FuncPizzaUoWFactory) Create() commands.PizzaUoW {
	return f()
}
