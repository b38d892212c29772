package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	ConfirmOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) (*order.Order, error)
	}
	BulkConfirmOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.BulkConfirmOrdersCommand) (int, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	SearchOrdersHandler interface {
		Handle(ctx context.Context, query queries.SearchOrdersQuery) ([]*order.Order, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]*order.Order, error)
	}
	GetOrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
	}
)

// Server handles HTTP requests for the order lifecycle.
// It authorizes every call with the order policy before handing it to a use case.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderHandler
	updateOrderHandler       UpdateOrderHandler
	confirmOrderHandler      ConfirmOrderHandler
	bulkConfirmOrdersHandler BulkConfirmOrdersHandler

	// Query handlers
	getOrderHandler           GetOrderHandler
	searchOrdersHandler       SearchOrdersHandler
	listCustomerOrdersHandler ListCustomerOrdersHandler
	getOrderStatsHandler      GetOrderStatsHandler

	policy  services.OrderPolicy
	metrics *metrics.ServerMetrics
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	updateOrderHandler UpdateOrderHandler,
	confirmOrderHandler ConfirmOrderHandler,
	bulkConfirmOrdersHandler BulkConfirmOrdersHandler,
	getOrderHandler GetOrderHandler,
	searchOrdersHandler SearchOrdersHandler,
	listCustomerOrdersHandler ListCustomerOrdersHandler,
	getOrderStatsHandler GetOrderStatsHandler,
	serverMetrics *metrics.ServerMetrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		confirmOrderHandler:       confirmOrderHandler,
		bulkConfirmOrdersHandler:  bulkConfirmOrdersHandler,
		getOrderHandler:           getOrderHandler,
		searchOrdersHandler:       searchOrdersHandler,
		listCustomerOrdersHandler: listCustomerOrdersHandler,
		getOrderStatsHandler:      getOrderStatsHandler,
		policy:                    services.NewOrderPolicy(),
		metrics:                   serverMetrics,
		logger:                    logger.With("component", "http"),
	}
}

// Register mounts the API under /api/v1 behind ActorMiddleware.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1", ActorMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:number", s.GetOrder)
	api.PUT("/orders/:number", s.UpdateOrder)
	api.POST("/orders/:number/confirm", s.ConfirmOrder)

	api.GET("/admin/orders", s.SearchOrders)
	api.POST("/admin/orders/bulk-confirm", s.BulkConfirmOrders)
	api.GET("/admin/stats", s.GetOrderStats)
}

// CreateOrder handles POST /api/v1/orders - places an order for the calling customer.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderItemsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	items, err := toItemRequests(req.Items)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actorFrom(c).ID, items)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.RecordOrderEvent(metrics.EventCreated, 1)
	return c.JSON(http.StatusCreated, toOrder(created))
}

// ListOrders handles GET /api/v1/orders - the calling customer's order history.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListCustomerOrdersQuery(actorFrom(c).ID)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.listCustomerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:number.
func (s *Server) GetOrder(c echo.Context) error {
	o, err := s.loadOrder(c)
	if err != nil {
		return s.fail(c, err)
	}
	if !s.policy.CanView(actorFrom(c), o) {
		return forbidden(c)
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrder handles PUT /api/v1/orders/:number - replaces every line item.
func (s *Server) UpdateOrder(c echo.Context) error {
	var req OrderItemsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	o, err := s.loadOrder(c)
	if err != nil {
		return s.fail(c, err)
	}
	if !s.policy.CanUpdate(actorFrom(c), o) {
		return forbidden(c)
	}

	items, err := toItemRequests(req.Items)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(o.ID(), items)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.RecordOrderEvent(metrics.EventUpdated, 1)
	return c.JSON(http.StatusOK, toOrder(updated))
}

// ConfirmOrder handles POST /api/v1/orders/:number/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	var req ConfirmOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	o, err := s.loadOrder(c)
	if err != nil {
		return s.fail(c, err)
	}
	if !s.policy.CanConfirm(actorFrom(c), o) {
		return forbidden(c)
	}

	cmd, err := commands.NewConfirmOrderCommand(o.ID(), req.ShippingAddress)
	if err != nil {
		return s.fail(c, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.RecordOrderEvent(metrics.EventConfirmed, 1)
	return c.JSON(http.StatusOK, toOrder(confirmed))
}

// SearchOrders handles GET /api/v1/admin/orders?search=.
func (s *Server) SearchOrders(c echo.Context) error {
	if !s.policy.CanAdminister(actorFrom(c)) {
		return forbidden(c)
	}

	query, err := queries.NewSearchOrdersQuery(c.QueryParam("search"))
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.searchOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// BulkConfirmOrders handles POST /api/v1/admin/orders/bulk-confirm.
// Confirmations committed before a failure are still counted in the metrics.
func (s *Server) BulkConfirmOrders(c echo.Context) error {
	if !s.policy.CanAdminister(actorFrom(c)) {
		return forbidden(c)
	}

	var req BulkConfirmRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ids, err := toOrderIDs(req.OrderIDs)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewBulkConfirmOrdersCommand(ids)
	if err != nil {
		return s.fail(c, err)
	}

	confirmed, err := s.bulkConfirmOrdersHandler.Handle(c.Request().Context(), cmd)
	s.metrics.RecordOrderEvent(metrics.EventBulkConfirmed, confirmed)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, BulkConfirmResponse{Confirmed: confirmed})
}

// GetOrderStats handles GET /api/v1/admin/stats.
func (s *Server) GetOrderStats(c echo.Context) error {
	if !s.policy.CanAdminister(actorFrom(c)) {
		return forbidden(c)
	}

	stats, err := s.getOrderStatsHandler.Handle(c.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toStats(stats))
}

func (s *Server) loadOrder(c echo.Context) (*order.Order, error) {
	query, err := queries.NewGetOrderByNumberQuery(c.Param("number"))
	if err != nil {
		return nil, err
	}
	return s.getOrderHandler.Handle(c.Request().Context(), query)
}
