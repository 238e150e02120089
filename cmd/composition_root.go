package cmd

import (
	"log/slog"
	"net/http"

	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/notify"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/ports"
	_ "catering/internal/generated/docs"
	"catering/internal/generated/servers"
	"catering/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) eventUoWFactory() commands.EventUoWFactory {
	return FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetOrCreateCartCommandHandler() commands.GetOrCreateCartCommandHandler {
	return commands.NewGetOrCreateCartCommandHandler(c.cartUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	return commands.NewUpdateCartItemQuantityCommandHandler(c.cartUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateBackupOrderCommandHandler() commands.CreateBackupOrderCommandHandler {
	return commands.NewCreateBackupOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(),
		c.CreateCreateBackupOrderCommandHandler(),
		c.notifier,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateProcessBackupOrdersCommandHandler() commands.ProcessBackupOrdersCommandHandler {
	return commands.NewProcessBackupOrdersCommandHandler(c.outboxUoWFactory(), c.CreateCreateBackupOrderCommandHandler())
}

func (c *CompositionRoot) CreateCreateEventCommandHandler() commands.CreateEventCommandHandler {
	return commands.NewCreateEventCommandHandler(c.eventUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateProviderCommandHandler() commands.CreateProviderCommandHandler {
	return commands.NewCreateProviderCommandHandler(c.catalogUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSetProviderActiveCommandHandler() commands.SetProviderActiveCommandHandler {
	return commands.NewSetProviderActiveCommandHandler(c.catalogUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateFoodItemCommandHandler() commands.CreateFoodItemCommandHandler {
	return commands.NewCreateFoodItemCommandHandler(c.catalogUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateFoodItemCommandHandler() commands.UpdateFoodItemCommandHandler {
	return commands.NewUpdateFoodItemCommandHandler(c.catalogUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.catalogUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProvidersQueryHandler() queries.ListProvidersQueryHandler {
	return queries.NewListProvidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProviderQueryHandler() queries.GetProviderQueryHandler {
	return queries.NewGetProviderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveProviderQueryHandler() queries.ResolveProviderQueryHandler {
	return queries.NewResolveProviderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFoodItemsQueryHandler() queries.ListFoodItemsQueryHandler {
	return queries.NewListFoodItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenusQueryHandler() queries.ListMenusQueryHandler {
	return queries.NewListMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReviewsQueryHandler() queries.ListReviewsQueryHandler {
	return queries.NewListReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEventsQueryHandler() queries.ListEventsQueryHandler {
	return queries.NewListEventsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case exposed by the HTTP API.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			GetOrCreateCart:        c.CreateGetOrCreateCartCommandHandler(),
			AddCartItem:            c.CreateAddCartItemCommandHandler(),
			UpdateCartItemQuantity: c.CreateUpdateCartItemQuantityCommandHandler(),
			RemoveCartItem:         c.CreateRemoveCartItemCommandHandler(),
			CreateOrder:            c.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus:      c.CreateUpdateOrderStatusCommandHandler(),
			CancelOrder:            c.CreateCancelOrderCommandHandler(),
			CreateEvent:            c.CreateCreateEventCommandHandler(),
			CreateProvider:         c.CreateCreateProviderCommandHandler(),
			SetProviderActive:      c.CreateSetProviderActiveCommandHandler(),
			CreateFoodItem:         c.CreateCreateFoodItemCommandHandler(),
			UpdateFoodItem:         c.CreateUpdateFoodItemCommandHandler(),
			CreateMenu:             c.CreateCreateMenuCommandHandler(),
		},
		httpin.Queries{
			GetCart:       c.CreateGetCartQueryHandler(),
			GetOrders:     c.CreateGetOrdersQueryHandler(),
			ListProviders: c.CreateListProvidersQueryHandler(),
			GetProvider:   c.CreateGetProviderQueryHandler(),
			ListFoodItems: c.CreateListFoodItemsQueryHandler(),
			ListMenus:     c.CreateListMenusQueryHandler(),
			ListReviews:   c.CreateListReviewsQueryHandler(),
			ListEvents:    c.CreateListEventsQueryHandler(),
		},
	)
}

// CreateEcho builds the HTTP router: health check, Swagger UI and the API
// behind the token middleware.
func (c *CompositionRoot) CreateEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", c.CreateAuthenticator().Middleware())
	servers.RegisterHandlers(api, c.CreateHTTPServer())
	return e
}

func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	return httpin.NewAuthenticator(c.configs.JWTSecret)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateProcessBackupOrdersCommandHandler(), c.configs.OutboxSettings(), c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}
