package cmd

import (
	"context"
	"fmt"

	"pizzeria/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

type seedPizza struct {
	name        string
	description string
	price       string
}

// seedMenu is the starter catalog loaded into an empty database.
var seedMenu = []seedPizza{
	{"Margherita", "Pomodoro, mozzarella, basilico", "8.50"},
	{"Marinara", "Pomodoro, aglio, origano, olio d'oliva", "7.00"},
	{"Diavola", "Pomodoro, mozzarella, salame piccante", "10.00"},
	{"Quattro Stagioni", "Pomodoro, mozzarella, prosciutto, funghi, carciofi, olive", "12.00"},
	{"Capricciosa", "Pomodoro, mozzarella, prosciutto, funghi, olive", "13.00"},
	{"Quattro Formaggi", "Mozzarella, gorgonzola, parmigiano, fontina", "11.50"},
}

// SeedMenu loads the starter catalog when the database holds no pizzas yet.
// A non-empty catalog is left untouched.
func (c *CompositionRoot) SeedMenu(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pizzaRepo := uow.PizzaRepository()
	count, err := pizzaRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedMenu {
		price, priceErr := decimal.NewFromString(seed.price)
		if priceErr != nil {
			return fmt.Errorf("invalid seed price for %s: %w", seed.name, priceErr)
		}

		pizza, pizzaErr := menu.NewPizza(seed.name, seed.description, price)
		if pizzaErr != nil {
			return fmt.Errorf("invalid seed pizza %s: %w", seed.name, pizzaErr)
		}

		if addErr := pizzaRepo.Add(ctx, pizza); addErr != nil {
			return fmt.Errorf("failed to seed pizza %s: %w", seed.name, addErr)
		}
	}

	return uow.Commit(ctx)
}
