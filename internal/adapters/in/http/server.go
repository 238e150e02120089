package http

import (
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/generated/servers"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Commands groups the command handlers the HTTP API dispatches to.
type Commands struct {
	GetOrCreateCart        commands.GetOrCreateCartCommandHandler
	AddCartItem            commands.AddCartItemCommandHandler
	UpdateCartItemQuantity commands.UpdateCartItemQuantityCommandHandler
	RemoveCartItem         commands.RemoveCartItemCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrderStatus      commands.UpdateOrderStatusCommandHandler
	CancelOrder            commands.CancelOrderCommandHandler
	CreateEvent            commands.CreateEventCommandHandler
	CreateProvider         commands.CreateProviderCommandHandler
	SetProviderActive      commands.SetProviderActiveCommandHandler
	CreateFoodItem         commands.CreateFoodItemCommandHandler
	UpdateFoodItem         commands.UpdateFoodItemCommandHandler
	CreateMenu             commands.CreateMenuCommandHandler
}

// Queries groups the query handlers the HTTP API reads through.
type Queries struct {
	GetCart       queries.GetCartQueryHandler
	GetOrders     queries.GetOrdersQueryHandler
	ListProviders queries.ListProvidersQueryHandler
	GetProvider   queries.GetProviderQueryHandler
	ListFoodItems queries.ListFoodItemsQueryHandler
	ListMenus     queries.ListMenusQueryHandler
	ListReviews   queries.ListReviewsQueryHandler
	ListEvents    queries.ListEventsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Sessions come from the Authenticator middleware.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries) *Server {
	return &Server{commands: commands, queries: queries}
}

func toKernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return parsed, nil
}

// ListProviders handles GET /api/v1/providers.
func (s *Server) ListProviders(ctx echo.Context, params servers.ListProvidersParams) error {
	var providerType *catalog.ProviderType
	if params.Type != nil {
		parsed, err := catalog.ParseProviderType(string(*params.Type))
		if err != nil {
			return writeError(ctx, err)
		}
		providerType = &parsed
	}

	query, err := queries.NewListProvidersQuery(providerType)
	if err != nil {
		return writeError(ctx, err)
	}
	providers, err := s.queries.ListProviders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Provider, 0, len(providers))
	for _, p := range providers {
		response = append(response, providerResponse(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProvider handles POST /api/v1/providers.
func (s *Server) CreateProvider(ctx echo.Context) error {
	var body servers.CreateProviderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	providerType, err := catalog.ParseProviderType(string(body.ProviderType))
	if err != nil {
		return writeError(ctx, err)
	}
	input := commands.ProviderInput{
		Name:     body.Name,
		Location: body.Location,
		Type:     providerType,
	}
	if body.Description != nil {
		input.Description = *body.Description
	}
	if body.Phone != nil {
		input.Contact.Phone = *body.Phone
	}
	if body.Email != nil {
		input.Contact.Email = *body.Email
	}

	cmd, err := commands.NewCreateProviderCommand(sessionFrom(ctx), input)
	if err != nil {
		return writeError(ctx, err)
	}
	provider, err := s.commands.CreateProvider.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, providerFromDomain(provider))
}

// GetProvider handles GET /api/v1/providers/{providerId}.
func (s *Server) GetProvider(ctx echo.Context, providerId servers.ProviderId) error {
	id, err := toKernelID("providerId", providerId)
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetProviderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}
	provider, err := s.queries.GetProvider.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, providerResponse(provider))
}

// ListFoodItems handles GET /api/v1/providers/{providerId}/food-items.
func (s *Server) ListFoodItems(ctx echo.Context, providerId servers.ProviderId) error {
	id, err := toKernelID("providerId", providerId)
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewListFoodItemsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}
	items, err := s.queries.ListFoodItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.FoodItem, 0, len(items))
	for _, item := range items {
		response = append(response, foodItemResponse(item))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListProviderMenus handles GET /api/v1/providers/{providerId}/menus.
func (s *Server) ListProviderMenus(ctx echo.Context, providerId servers.ProviderId) error {
	id, err := toKernelID("providerId", providerId)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.listMenus(ctx, &id)
}

// ListMenus handles GET /api/v1/menus.
func (s *Server) ListMenus(ctx echo.Context) error {
	return s.listMenus(ctx, nil)
}

func (s *Server) listMenus(ctx echo.Context, providerID *kernel.UUID) error {
	query, err := queries.NewListMenusQuery(sessionFrom(ctx), providerID)
	if err != nil {
		return writeError(ctx, err)
	}
	menus, err := s.queries.ListMenus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Menu, 0, len(menus))
	for _, m := range menus {
		response = append(response, menuResponse(m))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/v1/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var body servers.CreateMenuJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var description string
	if body.Description != nil {
		description = *body.Description
	}
	cmd, err := commands.NewCreateMenuCommand(sessionFrom(ctx), body.Title, description)
	if err != nil {
		return writeError(ctx, err)
	}
	menu, err := s.commands.CreateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, menuFromDomain(menu))
}

// ListReviews handles GET /api/v1/providers/{providerId}/reviews.
func (s *Server) ListReviews(ctx echo.Context, providerId servers.ProviderId) error {
	id, err := toKernelID("providerId", providerId)
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewListReviewsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}
	reviews, err := s.queries.ListReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Review, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, reviewResponse(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetProviderActivation handles PUT /api/v1/admin/providers/{providerId}/activation.
func (s *Server) SetProviderActivation(ctx echo.Context, providerId servers.ProviderId) error {
	var body servers.SetProviderActivationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := toKernelID("providerId", providerId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetProviderActiveCommand(sessionFrom(ctx), id, body.IsActive)
	if err != nil {
		return writeError(ctx, err)
	}
	provider, err := s.commands.SetProviderActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, providerFromDomain(provider))
}

// CreateFoodItem handles POST /api/v1/food-items.
func (s *Server) CreateFoodItem(ctx echo.Context) error {
	var body servers.CreateFoodItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromFloat(body.PricePerTray)
	if err != nil {
		return writeError(ctx, err)
	}
	traySize, err := cart.ParseTraySize(string(body.TraySize))
	if err != nil {
		return writeError(ctx, err)
	}
	input := commands.FoodItemInput{
		Name:         body.Name,
		CuisineType:  body.CuisineType,
		PricePerTray: price,
		TraySize:     traySize,
	}
	if body.Description != nil {
		input.Description = *body.Description
	}
	if body.IsVegetarian != nil {
		input.Dietary.Vegetarian = *body.IsVegetarian
	}
	if body.IsVegan != nil {
		input.Dietary.Vegan = *body.IsVegan
	}

	cmd, err := commands.NewCreateFoodItemCommand(sessionFrom(ctx), input)
	if err != nil {
		return writeError(ctx, err)
	}
	item, err := s.commands.CreateFoodItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, foodItemFromDomain(item))
}

// UpdateFoodItem handles PATCH /api/v1/food-items/{itemId}.
func (s *Server) UpdateFoodItem(ctx echo.Context, itemId servers.ItemId) error {
	var body servers.UpdateFoodItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := toKernelID("itemId", itemId)
	if err != nil {
		return writeError(ctx, err)
	}
	changes, err := foodItemChanges(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateFoodItemCommand(sessionFrom(ctx), id, changes)
	if err != nil {
		return writeError(ctx, err)
	}
	item, err := s.commands.UpdateFoodItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, foodItemFromDomain(item))
}

// ListEvents handles GET /api/v1/events.
func (s *Server) ListEvents(ctx echo.Context) error {
	query, err := queries.NewListEventsQuery(sessionFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	events, err := s.queries.ListEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Event, 0, len(events))
	for _, e := range events {
		response = append(response, eventResponse(e))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateEvent handles POST /api/v1/events.
func (s *Server) CreateEvent(ctx echo.Context) error {
	var body servers.CreateEventJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := event.Details{
		Name:       body.Name,
		Date:       body.Date,
		Location:   body.Location,
		GuestCount: body.GuestCount,
	}
	if body.CuisineType != nil {
		details.CuisineType = *body.CuisineType
	}
	if body.Budget != nil {
		budget, err := kernel.MoneyFromFloat(*body.Budget)
		if err != nil {
			return writeError(ctx, err)
		}
		details.Budget = &budget
	}

	cmd, err := commands.NewCreateEventCommand(sessionFrom(ctx), details)
	if err != nil {
		return writeError(ctx, err)
	}
	created, err := s.commands.CreateEvent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, eventFromDomain(created))
}

// GetEventCart handles GET /api/v1/events/{eventId}/cart. The cart is
// created on first access, then read with display names and totals.
func (s *Server) GetEventCart(ctx echo.Context, eventId openapi_types.UUID) error {
	id, err := toKernelID("eventId", eventId)
	if err != nil {
		return writeError(ctx, err)
	}
	session := sessionFrom(ctx)

	cmd, err := commands.NewGetOrCreateCartCommand(session, id)
	if err != nil {
		return writeError(ctx, err)
	}
	c, err := s.commands.GetOrCreateCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(session, c.ID())
	if err != nil {
		return writeError(ctx, err)
	}
	view, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, cartResponse(view))
}

// AddCartItem handles POST /api/v1/carts/{cartId}/items.
func (s *Server) AddCartItem(ctx echo.Context, cartId openapi_types.UUID) error {
	var body servers.AddCartItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID("cartId", cartId)
	if err != nil {
		return writeError(ctx, err)
	}
	foodItemID, err := toKernelID("foodItemId", body.FoodItemId)
	if err != nil {
		return writeError(ctx, err)
	}
	providerID, err := toKernelID("providerId", body.ProviderId)
	if err != nil {
		return writeError(ctx, err)
	}
	traySize, err := cart.ParseTraySize(string(body.TraySize))
	if err != nil {
		return writeError(ctx, err)
	}
	unitPrice, err := kernel.MoneyFromFloat(body.UnitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	input := commands.CartItemInput{
		FoodItemID: foodItemID,
		TraySize:   traySize,
		Quantity:   body.Quantity,
		ProviderID: providerID,
		UnitPrice:  unitPrice,
	}
	if body.IsBackupProvider != nil {
		input.IsBackupProvider = *body.IsBackupProvider
	}

	cmd, err := commands.NewAddCartItemCommand(sessionFrom(ctx), id, input)
	if err != nil {
		return writeError(ctx, err)
	}
	added, err := s.commands.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, addedCartItemResponse(added))
}

// UpdateCartItem handles PATCH /api/v1/cart-items/{itemId}. A quantity of
// zero or less removes the line and answers 204.
func (s *Server) UpdateCartItem(ctx echo.Context, itemId servers.ItemId) error {
	var body servers.UpdateCartItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := toKernelID("itemId", itemId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(sessionFrom(ctx), id, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}
	item, err := s.commands.UpdateCartItemQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if item == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, cartItemFromDomain(item, "", ""))
}

// RemoveCartItem handles DELETE /api/v1/cart-items/{itemId}.
func (s *Server) RemoveCartItem(ctx echo.Context, itemId servers.ItemId) error {
	id, err := toKernelID("itemId", itemId)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewRemoveCartItemCommand(sessionFrom(ctx), id)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.commands.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(sessionFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	orders, err := s.queries.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var input commands.OrderInput
	var err error
	if input.EventID, err = toKernelID("eventId", body.EventId); err != nil {
		return writeError(ctx, err)
	}
	if input.CartID, err = toKernelID("cartId", body.CartId); err != nil {
		return writeError(ctx, err)
	}
	if input.PrimaryProviderID, err = toKernelID("primaryProviderId", body.PrimaryProviderId); err != nil {
		return writeError(ctx, err)
	}
	if body.BackupProviderId != nil {
		backupID, err := toKernelID("backupProviderId", *body.BackupProviderId)
		if err != nil {
			return writeError(ctx, err)
		}
		input.BackupProviderID = &backupID
	}
	if input.TotalPrimary, err = kernel.MoneyFromFloat(body.TotalPrimary); err != nil {
		return writeError(ctx, err)
	}
	if input.TotalBackup, err = kernel.MoneyFromFloat(body.TotalBackup); err != nil {
		return writeError(ctx, err)
	}
	if body.SpecialInstructions != nil {
		input.SpecialInstructions = *body.SpecialInstructions
	}

	cmd, err := commands.NewCreateOrderCommand(sessionFrom(ctx), input)
	if err != nil {
		return writeError(ctx, err)
	}
	placed, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(sessionFrom(ctx), id, status)
	if err != nil {
		return writeError(ctx, err)
	}
	decided, err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(decided))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCancelOrderCommand(sessionFrom(ctx), id)
	if err != nil {
		return writeError(ctx, err)
	}
	cancelled, err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}
