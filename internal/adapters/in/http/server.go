// Package http exposes the order lifecycle and catalog over a REST API.
// It translates HTTP requests into commands and queries and maps domain
// errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	claimOrderHandler     commands.ClaimOrderCommandHandler
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	createPizzaHandler     commands.CreatePizzaCommandHandler
	setAvailabilityHandler commands.SetPizzaAvailabilityCommandHandler

	getOrderByCodeHandler      queries.GetOrderByCodeQueryHandler
	getPendingOrdersHandler    queries.GetPendingOrdersQueryHandler
	getInProgressOrdersHandler queries.GetInProgressOrdersQueryHandler
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getAvailablePizzasHandler  queries.GetAvailablePizzasQueryHandler
	getAllPizzasHandler        queries.GetAllPizzasQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	createPizzaHandler commands.CreatePizzaCommandHandler,
	setAvailabilityHandler commands.SetPizzaAvailabilityCommandHandler,
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getInProgressOrdersHandler queries.GetInProgressOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAvailablePizzasHandler queries.GetAvailablePizzasQueryHandler,
	getAllPizzasHandler queries.GetAllPizzasQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		markOrderReadyHandler:      markOrderReadyHandler,
		completeOrderHandler:       completeOrderHandler,
		createPizzaHandler:         createPizzaHandler,
		setAvailabilityHandler:     setAvailabilityHandler,
		getOrderByCodeHandler:      getOrderByCodeHandler,
		getPendingOrdersHandler:    getPendingOrdersHandler,
		getInProgressOrdersHandler: getInProgressOrdersHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getAvailablePizzasHandler:  getAvailablePizzasHandler,
		getAllPizzasHandler:        getAllPizzasHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/in-progress", s.GetInProgressOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:code", s.GetOrderByCode)
	api.POST("/orders/:code/claim", s.ClaimOrder)
	api.POST("/orders/:code/ready", s.MarkOrderReady)
	api.POST("/orders/:code/complete", s.CompleteOrder)

	api.GET("/pizzas", s.GetAvailablePizzas)
	api.GET("/pizzas/all", s.GetAllPizzas)
	api.POST("/pizzas", s.CreatePizza)
	api.PATCH("/pizzas/:id/availability", s.SetPizzaAvailability)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = commands.OrderLine{
			PizzaID:  item.PizzaID,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.CustomerPhone, lines)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	resp, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromCommand(resp))
}

// GetOrderByCode handles GET /api/v1/orders/:code - customer tracking lookup.
func (s *Server) GetOrderByCode(ctx echo.Context) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		// a malformed code cannot name any order
		return writeError(ctx, http.StatusNotFound, "ORDER_NOT_FOUND", "No order with this code")
	}

	query, err := queries.NewGetOrderByCodeQuery(code)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	view, err := s.getOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// GetPendingOrders handles GET /api/v1/orders/pending - the preparation queue.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	views, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetInProgressOrders handles GET /api/v1/orders/in-progress.
func (s *Server) GetInProgressOrders(ctx echo.Context) error {
	views, err := s.getInProgressOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetInProgressOrdersQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetActiveOrders handles GET /api/v1/orders/active - the kitchen board.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	views, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// ClaimOrder handles POST /api/v1/orders/:code/claim - a pizzaiolo takes the
// order into preparation.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(code kernel.OrderCode) (commands.OrderResponse, error) {
		cmd, err := commands.NewClaimOrderCommand(code)
		if err != nil {
			return commands.OrderResponse{}, err
		}
		return s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkOrderReady handles POST /api/v1/orders/:code/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(code kernel.OrderCode) (commands.OrderResponse, error) {
		cmd, err := commands.NewMarkOrderReadyCommand(code)
		if err != nil {
			return commands.OrderResponse{}, err
		}
		return s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/:code/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(code kernel.OrderCode) (commands.OrderResponse, error) {
		cmd, err := commands.NewCompleteOrderCommand(code)
		if err != nil {
			return commands.OrderResponse{}, err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) transitionOrder(
	ctx echo.Context,
	handle func(code kernel.OrderCode) (commands.OrderResponse, error),
) error {
	code, err := kernel.OrderCodeFromString(ctx.Param("code"))
	if err != nil {
		return writeError(ctx, http.StatusNotFound, "ORDER_NOT_FOUND", "No order with this code")
	}

	resp, err := handle(code)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromCommand(resp))
}

// GetAvailablePizzas handles GET /api/v1/pizzas - the orderable menu.
func (s *Server) GetAvailablePizzas(ctx echo.Context) error {
	views, err := s.getAvailablePizzasHandler.Handle(ctx.Request().Context(), queries.NewGetAvailablePizzasQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaResponsesFromViews(views))
}

// GetAllPizzas handles GET /api/v1/pizzas/all - the full catalog.
func (s *Server) GetAllPizzas(ctx echo.Context) error {
	views, err := s.getAllPizzasHandler.Handle(ctx.Request().Context(), queries.NewGetAllPizzasQuery())
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaResponsesFromViews(views))
}

// CreatePizza handles POST /api/v1/pizzas - adds a catalog entry.
func (s *Server) CreatePizza(ctx echo.Context) error {
	var req CreatePizzaRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
	}

	cmd, err := commands.NewCreatePizzaCommand(req.Name, req.Description, req.Price)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	resp, err := s.createPizzaHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, pizzaResponseFromCommand(resp))
}

// SetPizzaAvailability handles PATCH /api/v1/pizzas/:id/availability.
func (s *Server) SetPizzaAvailability(ctx echo.Context) error {
	var pizzaID int64
	if err := echo.PathParamsBinder(ctx).Int64("id", &pizzaID).BindError(); err != nil {
		return writeError(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid pizza id")
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
	}

	cmd, err := commands.NewSetPizzaAvailabilityCommand(pizzaID, req.Available)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	resp, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaResponseFromCommand(resp))
}

// writeDomainError maps domain errors onto HTTP status codes. Conflicts of
// state (lost claims, duplicate submissions, name collisions) are 409, missing
// objects 404, rejected input 400, anything else 500.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, errs.ErrObjectLocked),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrDuplicateOrder),
		errors.Is(err, order.ErrOrderCodeTaken),
		errors.Is(err, menu.ErrPizzaAlreadyExists):
		return writeError(ctx, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, menu.ErrPizzaNotAvailable),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, order.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrCustomerNameIsRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func writeError(ctx echo.Context, status int, code string, message string) error {
	return ctx.JSON(status, ErrorResponse{
		Status:    status,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
