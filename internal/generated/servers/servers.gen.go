// Package servers provides primitives to interact with the openapi HTTP API.
// The models, ServerInterface and route registration follow openapi.yml in
// the layout of oapi-codegen's echo server output; keep them in sync with it.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for EventStatus.
const (
	EventStatusBooked    EventStatus = "booked"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
	EventStatusPlanning  EventStatus = "planning"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDeclined  OrderStatus = "declined"
	OrderStatusPending   OrderStatus = "pending"
)

// Defines values for OrderStatusUpdateStatus.
const (
	OrderStatusUpdateStatusConfirmed OrderStatusUpdateStatus = "confirmed"
	OrderStatusUpdateStatusDeclined  OrderStatusUpdateStatus = "declined"
)

// Defines values for ProviderType.
const (
	CloudKitchen       ProviderType = "cloud_kitchen"
	IndependentCaterer ProviderType = "independent_caterer"
	Restaurant         ProviderType = "restaurant"
)

// Defines values for TraySize.
const (
	Full    TraySize = "full"
	Half    TraySize = "half"
	Quarter TraySize = "quarter"
)

// Cart defines model for Cart.
type Cart struct {
	CreatedAt    time.Time          `json:"createdAt"`
	CustomerId   openapi_types.UUID `json:"customerId"`
	EventId      openapi_types.UUID `json:"eventId"`
	Id           openapi_types.UUID `json:"id"`
	Items        []CartItem         `json:"items"`
	TotalBackup  float64            `json:"totalBackup"`
	TotalPrimary float64            `json:"totalPrimary"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	CreatedAt        time.Time          `json:"createdAt"`
	FoodItemId       openapi_types.UUID `json:"foodItemId"`
	FoodItemName     string             `json:"foodItemName"`
	Id               openapi_types.UUID `json:"id"`
	IsBackupProvider bool               `json:"isBackupProvider"`
	ProviderId       openapi_types.UUID `json:"providerId"`
	ProviderName     string             `json:"providerName"`
	Quantity         int                `json:"quantity"`
	Subtotal         float64            `json:"subtotal"`
	TraySize         TraySize           `json:"traySize"`
	UnitPrice        float64            `json:"unitPrice"`
}

// CartItemQuantity defines model for CartItemQuantity.
type CartItemQuantity struct {
	Quantity int `json:"quantity"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event defines model for Event.
type Event struct {
	Budget      *float64           `json:"budget,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	CuisineType *string            `json:"cuisineType,omitempty"`
	Date        time.Time          `json:"date"`
	GuestCount  int                `json:"guestCount"`
	Id          openapi_types.UUID `json:"id"`
	Location    string             `json:"location"`
	Name        string             `json:"name"`
	Status      EventStatus        `json:"status"`
	UserId      openapi_types.UUID `json:"userId"`
}

// EventStatus defines model for Event.Status.
type EventStatus string

// FoodItem defines model for FoodItem.
type FoodItem struct {
	CreatedAt    time.Time          `json:"createdAt"`
	CuisineType  *string            `json:"cuisineType,omitempty"`
	Description  *string            `json:"description,omitempty"`
	Id           openapi_types.UUID `json:"id"`
	IsAvailable  bool               `json:"isAvailable"`
	IsVegan      bool               `json:"isVegan"`
	IsVegetarian bool               `json:"isVegetarian"`
	Name         string             `json:"name"`
	PricePerTray float64            `json:"pricePerTray"`
	ProviderId   openapi_types.UUID `json:"providerId"`
	TraySize     TraySize           `json:"traySize"`
}

// FoodItemUpdate defines model for FoodItemUpdate.
type FoodItemUpdate struct {
	CuisineType  *string   `json:"cuisineType,omitempty"`
	Description  *string   `json:"description,omitempty"`
	IsAvailable  *bool     `json:"isAvailable,omitempty"`
	IsVegan      *bool     `json:"isVegan,omitempty"`
	IsVegetarian *bool     `json:"isVegetarian,omitempty"`
	Name         *string   `json:"name,omitempty"`
	PricePerTray *float64  `json:"pricePerTray,omitempty"`
	TraySize     *TraySize `json:"traySize,omitempty"`
}

// Menu defines model for Menu.
type Menu struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	ProviderId  openapi_types.UUID `json:"providerId"`
	Title       string             `json:"title"`
}

// NewCartItem defines model for NewCartItem.
type NewCartItem struct {
	FoodItemId       openapi_types.UUID `json:"foodItemId"`
	IsBackupProvider *bool              `json:"isBackupProvider,omitempty"`
	ProviderId       openapi_types.UUID `json:"providerId"`
	Quantity         int                `json:"quantity"`
	TraySize         TraySize           `json:"traySize"`
	UnitPrice        float64            `json:"unitPrice"`
}

// NewEvent defines model for NewEvent.
type NewEvent struct {
	Budget      *float64  `json:"budget,omitempty"`
	CuisineType *string   `json:"cuisineType,omitempty"`
	Date        time.Time `json:"date"`
	GuestCount  int       `json:"guestCount"`
	Location    string    `json:"location"`
	Name        string    `json:"name"`
}

// NewFoodItem defines model for NewFoodItem.
type NewFoodItem struct {
	CuisineType  string   `json:"cuisineType"`
	Description  *string  `json:"description,omitempty"`
	IsVegan      *bool    `json:"isVegan,omitempty"`
	IsVegetarian *bool    `json:"isVegetarian,omitempty"`
	Name         string   `json:"name"`
	PricePerTray float64  `json:"pricePerTray"`
	TraySize     TraySize `json:"traySize"`
}

// NewMenu defines model for NewMenu.
type NewMenu struct {
	Description *string `json:"description,omitempty"`
	Title       string  `json:"title"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BackupProviderId    *openapi_types.UUID `json:"backupProviderId,omitempty"`
	CartId              openapi_types.UUID  `json:"cartId"`
	EventId             openapi_types.UUID  `json:"eventId"`
	PrimaryProviderId   openapi_types.UUID  `json:"primaryProviderId"`
	SpecialInstructions *string             `json:"specialInstructions,omitempty"`
	TotalBackup         float64             `json:"totalBackup"`
	TotalPrimary        float64             `json:"totalPrimary"`
}

// NewProvider defines model for NewProvider.
type NewProvider struct {
	Description  *string      `json:"description,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Location     string       `json:"location"`
	Name         string       `json:"name"`
	Phone        *string      `json:"phone,omitempty"`
	ProviderType ProviderType `json:"providerType"`
}

// Order defines model for Order.
type Order struct {
	BackupProviderId    *openapi_types.UUID `json:"backupProviderId,omitempty"`
	CartId              openapi_types.UUID  `json:"cartId"`
	CreatedAt           time.Time           `json:"createdAt"`
	CustomerId          openapi_types.UUID  `json:"customerId"`
	EventId             openapi_types.UUID  `json:"eventId"`
	Id                  openapi_types.UUID  `json:"id"`
	Items               []OrderItem         `json:"items"`
	PrimaryProviderId   openapi_types.UUID  `json:"primaryProviderId"`
	SourceOrderId       *openapi_types.UUID `json:"sourceOrderId,omitempty"`
	SpecialInstructions *string             `json:"specialInstructions,omitempty"`
	Status              OrderStatus         `json:"status"`
	TotalAmount         float64             `json:"totalAmount"`
	TotalBackup         float64             `json:"totalBackup"`
	TotalPrimary        float64             `json:"totalPrimary"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// OrderStatus defines model for Order.Status.
type OrderStatus string

// OrderItem defines model for OrderItem.
type OrderItem struct {
	FoodItemId       openapi_types.UUID `json:"foodItemId"`
	FoodItemName     *string            `json:"foodItemName,omitempty"`
	Id               openapi_types.UUID `json:"id"`
	IsBackupProvider bool               `json:"isBackupProvider"`
	ProviderId       openapi_types.UUID `json:"providerId"`
	Quantity         int                `json:"quantity"`
	TraySize         TraySize           `json:"traySize"`
	UnitPrice        float64            `json:"unitPrice"`
}

// OrderStatusUpdate defines model for OrderStatusUpdate.
type OrderStatusUpdate struct {
	Status OrderStatusUpdateStatus `json:"status"`
}

// OrderStatusUpdateStatus defines model for OrderStatusUpdate.Status.
type OrderStatusUpdateStatus string

// Provider defines model for Provider.
type Provider struct {
	CreatedAt    time.Time          `json:"createdAt"`
	Description  *string            `json:"description,omitempty"`
	Email        *string            `json:"email,omitempty"`
	Id           openapi_types.UUID `json:"id"`
	IsActive     bool               `json:"isActive"`
	Location     string             `json:"location"`
	Name         string             `json:"name"`
	Phone        *string            `json:"phone,omitempty"`
	ProviderType ProviderType       `json:"providerType"`
	UserId       openapi_types.UUID `json:"userId"`
}

// ProviderActivation defines model for ProviderActivation.
type ProviderActivation struct {
	IsActive bool `json:"isActive"`
}

// ProviderType defines model for ProviderType.
type ProviderType string

// Review defines model for Review.
type Review struct {
	Comment    *string            `json:"comment,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	CustomerId openapi_types.UUID `json:"customerId"`
	Id         openapi_types.UUID `json:"id"`
	ProviderId openapi_types.UUID `json:"providerId"`
	Rating     int                `json:"rating"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// TraySize defines model for TraySize.
type TraySize string

// ItemId defines model for ItemId.
type ItemId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ProviderId defines model for ProviderId.
type ProviderId = openapi_types.UUID

// ListProvidersParams defines parameters for ListProviders.
type ListProvidersParams struct {
	Type *ProviderType `form:"type,omitempty" json:"type,omitempty"`
}

// CreateProviderJSONRequestBody defines body for CreateProvider for application/json ContentType.
type CreateProviderJSONRequestBody = NewProvider

// SetProviderActivationJSONRequestBody defines body for SetProviderActivation for application/json ContentType.
type SetProviderActivationJSONRequestBody = ProviderActivation

// CreateFoodItemJSONRequestBody defines body for CreateFoodItem for application/json ContentType.
type CreateFoodItemJSONRequestBody = NewFoodItem

// UpdateFoodItemJSONRequestBody defines body for UpdateFoodItem for application/json ContentType.
type UpdateFoodItemJSONRequestBody = FoodItemUpdate

// CreateMenuJSONRequestBody defines body for CreateMenu for application/json ContentType.
type CreateMenuJSONRequestBody = NewMenu

// CreateEventJSONRequestBody defines body for CreateEvent for application/json ContentType.
type CreateEventJSONRequestBody = NewEvent

// AddCartItemJSONRequestBody defines body for AddCartItem for application/json ContentType.
type AddCartItemJSONRequestBody = NewCartItem

// UpdateCartItemJSONRequestBody defines body for UpdateCartItem for application/json ContentType.
type UpdateCartItemJSONRequestBody = CartItemQuantity

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = OrderStatusUpdate

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Activate or deactivate a provider
	// (PUT /api/v1/admin/providers/{providerId}/activation)
	SetProviderActivation(ctx echo.Context, providerId ProviderId) error
	// Remove a line; unknown lines are ignored
	// (DELETE /api/v1/cart-items/{itemId})
	RemoveCartItem(ctx echo.Context, itemId ItemId) error
	// Change the quantity of a line; zero or less removes it
	// (PATCH /api/v1/cart-items/{itemId})
	UpdateCartItem(ctx echo.Context, itemId ItemId) error
	// Add a line to a cart
	// (POST /api/v1/carts/{cartId}/items)
	AddCartItem(ctx echo.Context, cartId openapi_types.UUID) error
	// List the caller's events by date
	// (GET /api/v1/events)
	ListEvents(ctx echo.Context) error
	// Plan an event
	// (POST /api/v1/events)
	CreateEvent(ctx echo.Context) error
	// Get the caller's cart for an event, creating it on first access
	// (GET /api/v1/events/{eventId}/cart)
	GetEventCart(ctx echo.Context, eventId openapi_types.UUID) error
	// List a dish under the caller's provider profile
	// (POST /api/v1/food-items)
	CreateFoodItem(ctx echo.Context) error
	// Change fields of a dish owned by the caller's provider profile
	// (PATCH /api/v1/food-items/{itemId})
	UpdateFoodItem(ctx echo.Context, itemId ItemId) error
	// List the menus of the caller's provider profile, newest first
	// (GET /api/v1/menus)
	ListMenus(ctx echo.Context) error
	// Add a menu to the caller's provider profile
	// (POST /api/v1/menus)
	CreateMenu(ctx echo.Context) error
	// List the orders visible to the caller, newest first
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context) error
	// Place an order from a cart
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Cancel a pending order
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Confirm or decline an order
	// (PUT /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error
	// List active providers ordered by name
	// (GET /api/v1/providers)
	ListProviders(ctx echo.Context, params ListProvidersParams) error
	// Register the provider profile of the caller
	// (POST /api/v1/providers)
	CreateProvider(ctx echo.Context) error
	// Get a provider
	// (GET /api/v1/providers/{providerId})
	GetProvider(ctx echo.Context, providerId ProviderId) error
	// List available dishes of a provider, newest first
	// (GET /api/v1/providers/{providerId}/food-items)
	ListFoodItems(ctx echo.Context, providerId ProviderId) error
	// List the menus of a provider, newest first
	// (GET /api/v1/providers/{providerId}/menus)
	ListProviderMenus(ctx echo.Context, providerId ProviderId) error
	// List the reviews of a provider, newest first
	// (GET /api/v1/providers/{providerId}/reviews)
	ListReviews(ctx echo.Context, providerId ProviderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var value openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// SetProviderActivation converts echo context to params.
func (w *ServerInterfaceWrapper) SetProviderActivation(ctx echo.Context) error {
	providerId, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.SetProviderActivation(ctx, providerId)
}

// RemoveCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	itemId, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.RemoveCartItem(ctx, itemId)
}

// UpdateCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCartItem(ctx echo.Context) error {
	itemId, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.UpdateCartItem(ctx, itemId)
}

// AddCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	cartId, err := bindPathUUID(ctx, "cartId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.AddCartItem(ctx, cartId)
}

// ListEvents converts echo context to params.
func (w *ServerInterfaceWrapper) ListEvents(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListEvents(ctx)
}

// CreateEvent converts echo context to params.
func (w *ServerInterfaceWrapper) CreateEvent(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateEvent(ctx)
}

// GetEventCart converts echo context to params.
func (w *ServerInterfaceWrapper) GetEventCart(ctx echo.Context) error {
	eventId, err := bindPathUUID(ctx, "eventId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.GetEventCart(ctx, eventId)
}

// CreateFoodItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateFoodItem(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateFoodItem(ctx)
}

// UpdateFoodItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateFoodItem(ctx echo.Context) error {
	itemId, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.UpdateFoodItem(ctx, itemId)
}

// ListMenus converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenus(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListMenus(ctx)
}

// CreateMenu converts echo context to params.
func (w *ServerInterfaceWrapper) CreateMenu(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateMenu(ctx)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.GetOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateOrder(ctx)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CancelOrder(ctx, orderId)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

// ListProviders converts echo context to params.
func (w *ServerInterfaceWrapper) ListProviders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListProvidersParams
	// ------------- Optional query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, false, "type", ctx.QueryParams(), &params.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter type: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListProviders(ctx, params)
}

// CreateProvider converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProvider(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateProvider(ctx)
}

// GetProvider converts echo context to params.
func (w *ServerInterfaceWrapper) GetProvider(ctx echo.Context) error {
	providerId, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.GetProvider(ctx, providerId)
}

// ListFoodItems converts echo context to params.
func (w *ServerInterfaceWrapper) ListFoodItems(ctx echo.Context) error {
	providerId, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListFoodItems(ctx, providerId)
}

// ListProviderMenus converts echo context to params.
func (w *ServerInterfaceWrapper) ListProviderMenus(ctx echo.Context) error {
	providerId, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListProviderMenus(ctx, providerId)
}

// ListReviews converts echo context to params.
func (w *ServerInterfaceWrapper) ListReviews(ctx echo.Context) error {
	providerId, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListReviews(ctx, providerId)
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.PUT(baseURL+"/api/v1/admin/providers/:providerId/activation", wrapper.SetProviderActivation)
	router.DELETE(baseURL+"/api/v1/cart-items/:itemId", wrapper.RemoveCartItem)
	router.PATCH(baseURL+"/api/v1/cart-items/:itemId", wrapper.UpdateCartItem)
	router.POST(baseURL+"/api/v1/carts/:cartId/items", wrapper.AddCartItem)
	router.GET(baseURL+"/api/v1/events", wrapper.ListEvents)
	router.POST(baseURL+"/api/v1/events", wrapper.CreateEvent)
	router.GET(baseURL+"/api/v1/events/:eventId/cart", wrapper.GetEventCart)
	router.POST(baseURL+"/api/v1/food-items", wrapper.CreateFoodItem)
	router.PATCH(baseURL+"/api/v1/food-items/:itemId", wrapper.UpdateFoodItem)
	router.GET(baseURL+"/api/v1/menus", wrapper.ListMenus)
	router.POST(baseURL+"/api/v1/menus", wrapper.CreateMenu)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/providers", wrapper.ListProviders)
	router.POST(baseURL+"/api/v1/providers", wrapper.CreateProvider)
	router.GET(baseURL+"/api/v1/providers/:providerId", wrapper.GetProvider)
	router.GET(baseURL+"/api/v1/providers/:providerId/food-items", wrapper.ListFoodItems)
	router.GET(baseURL+"/api/v1/providers/:providerId/menus", wrapper.ListProviderMenus)
	router.GET(baseURL+"/api/v1/providers/:providerId/reviews", wrapper.ListReviews)
}
