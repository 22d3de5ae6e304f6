// Package http exposes the ordering use cases over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	AddDeliveryInfoHandler interface {
		Handle(ctx context.Context, cmd commands.AddDeliveryInfoCommand) (*order.Order, error)
	}
	RedeemCouponHandler interface {
		Handle(ctx context.Context, cmd commands.RedeemCouponCommand) (services.CouponApplication, error)
	}
	AdjustStockHandler interface {
		Handle(ctx context.Context, cmd commands.AdjustStockCommand) (*inventory.Stock, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	PreviewCartHandler interface {
		Handle(ctx context.Context, query queries.PreviewCartQuery) (queries.PreviewCartQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	CancelOrder       CancelOrderHandler
	AddDeliveryInfo   AddDeliveryInfoHandler
	RedeemCoupon      RedeemCouponHandler
	AdjustStock       AdjustStockHandler
	GetOrder          GetOrderHandler
	PreviewCart       PreviewCartHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http_server"),
	}
}

// NewEcho builds the echo instance with middleware and all routes registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(s.metrics.Middleware())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/status", s.ChangeOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/delivery", s.AddDeliveryInfo)
	v1.POST("/carts/preview", s.PreviewCart)
	v1.POST("/coupons/:code/redeem", s.RedeemCoupon)
	v1.POST("/skus/:id/stock/adjustments", s.AdjustStock)

	return e
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	cmd, err := req.toCommand()
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.OrdersCreated.Inc()
	return c.JSON(http.StatusCreated, toOrderResponse(queries.NewGetOrderQueryResponse(o)))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(view))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req ChangeOrderStatusRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.OrderTransitions.WithLabelValues(o.Status().String()).Inc()
	return c.JSON(http.StatusOK, toOrderResponse(queries.NewGetOrderQueryResponse(o)))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req CancelOrderRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.OrderTransitions.WithLabelValues(o.Status().String()).Inc()
	return c.JSON(http.StatusOK, toOrderResponse(queries.NewGetOrderQueryResponse(o)))
}

// AddDeliveryInfo handles POST /api/v1/orders/:id/delivery.
func (s *Server) AddDeliveryInfo(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req AddDeliveryInfoRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	cmd, err := req.toCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.AddDeliveryInfo.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(queries.NewGetOrderQueryResponse(o)))
}

// PreviewCart handles POST /api/v1/carts/preview.
func (s *Server) PreviewCart(c echo.Context) error {
	var req PreviewCartRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	query, err := req.toQuery()
	if err != nil {
		return s.fail(c, err)
	}

	preview, err := s.handlers.PreviewCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCartResponse(preview))
}

// RedeemCoupon handles POST /api/v1/coupons/:code/redeem.
func (s *Server) RedeemCoupon(c echo.Context) error {
	var req RedeemCouponRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	lines, err := toLines(req.Items)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRedeemCouponCommand(c.Param("code"), lines)
	if err != nil {
		return s.fail(c, err)
	}

	application, err := s.handlers.RedeemCoupon.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.metrics.CouponsRedeemed.Inc()
	return c.JSON(http.StatusOK, toRedemptionResponse(application))
}

// AdjustStock handles POST /api/v1/skus/:id/stock/adjustments.
func (s *Server) AdjustStock(c echo.Context) error {
	skuID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req AdjustStockRequest
	if ok, bindErr := s.bind(c, &req); !ok {
		return bindErr
	}

	cmd, err := req.toCommand(skuID)
	if err != nil {
		return s.fail(c, err)
	}

	stock, err := s.handlers.AdjustStock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toStockResponse(skuID, stock))
}

// bind decodes and validates the body into req. When it reports false the
// 400 response has already been written.
func (s *Server) bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, badRequest(c, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, invalidRequest(c, err)
	}
	return true, nil
}
