package cmd

import (
	"log/slog"

	"shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/services"
	"shop/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	discounts  services.CouponDiscountService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		discounts:  services.NewCouponDiscountService(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAddDeliveryInfoCommandHandler() commands.AddDeliveryInfoCommandHandler {
	return commands.NewAddDeliveryInfoCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRedeemCouponCommandHandler() commands.RedeemCouponCommandHandler {
	var f commands.CouponUoWFactory = FuncCouponUoWFactory(func() commands.CouponUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRedeemCouponCommandHandler(f, c.discounts, c.logger)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreatePreviewCartQueryHandler reads through a unit of work that is never
// begun, so every lookup runs on the plain connection.
func (c *CompositionRoot) CreatePreviewCartQueryHandler() queries.PreviewCartQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewPreviewCartQueryHandler(uow.ProductRepository(), uow.CouponRepository(), c.discounts)
}

func (c *CompositionRoot) CreateHTTPServer(registry *prometheus.Registry) *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		AddDeliveryInfo:   c.CreateAddDeliveryInfoCommandHandler(),
		RedeemCoupon:      c.CreateRedeemCouponCommandHandler(),
		AdjustStock:       c.CreateAdjustStockCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		PreviewCart:       c.CreatePreviewCartQueryHandler(),
	}, http.NewMetrics(registry), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStaleOrdersCommandHandler(),
		c.config.StaleOrderSchedule,
		c.config.StaleOrderTTL,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCouponUoWFactory func() commands.CouponUoW

func (f FuncCouponUoWFactory) Create() commands.CouponUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
