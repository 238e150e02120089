package http

import (
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Raw()
	return &raw
}

func optionalAmount(m *kernel.Money) *float64 {
	if m == nil {
		return nil
	}
	v := m.Float64()
	return &v
}

func providerResponse(p queries.ProviderResponse) servers.Provider {
	return servers.Provider{
		Id:           p.ID.Raw(),
		UserId:       p.UserID.Raw(),
		Name:         p.Name,
		Description:  optional(p.Description),
		Location:     p.Location,
		ProviderType: servers.ProviderType(p.Type.String()),
		Phone:        optional(p.Contact.Phone),
		Email:        optional(p.Contact.Email),
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func providerFromDomain(p *catalog.Provider) servers.Provider {
	return providerResponse(queries.ProviderResponse{
		ID:          p.ID(),
		UserID:      p.UserID(),
		Name:        p.Name(),
		Description: p.Description(),
		Location:    p.Location(),
		Type:        p.Type(),
		Contact:     p.Contact(),
		IsActive:    p.IsActive(),
		CreatedAt:   p.CreatedAt(),
	})
}

func foodItemResponse(f queries.FoodItemResponse) servers.FoodItem {
	return servers.FoodItem{
		Id:           f.ID.Raw(),
		ProviderId:   f.ProviderID.Raw(),
		Name:         f.Name,
		Description:  optional(f.Description),
		CuisineType:  optional(f.CuisineType),
		PricePerTray: f.PricePerTray.Float64(),
		TraySize:     servers.TraySize(f.TraySize.String()),
		IsVegetarian: f.Dietary.Vegetarian,
		IsVegan:      f.Dietary.Vegan,
		IsAvailable:  f.IsAvailable,
		CreatedAt:    f.CreatedAt,
	}
}

func foodItemFromDomain(f *catalog.FoodItem) servers.FoodItem {
	return foodItemResponse(queries.FoodItemResponse{
		ID:           f.ID(),
		ProviderID:   f.ProviderID(),
		Name:         f.Name(),
		Description:  f.Description(),
		CuisineType:  f.CuisineType(),
		PricePerTray: f.PricePerTray(),
		TraySize:     f.TraySize(),
		Dietary:      f.Dietary(),
		IsAvailable:  f.IsAvailable(),
		CreatedAt:    f.CreatedAt(),
	})
}

// foodItemChanges converts a partial update body. Absent fields stay nil.
func foodItemChanges(body servers.FoodItemUpdate) (catalog.FoodItemChanges, error) {
	changes := catalog.FoodItemChanges{
		Name:        body.Name,
		Description: body.Description,
		CuisineType: body.CuisineType,
		Vegetarian:  body.IsVegetarian,
		Vegan:       body.IsVegan,
		IsAvailable: body.IsAvailable,
	}
	if body.PricePerTray != nil {
		price, err := kernel.MoneyFromFloat(*body.PricePerTray)
		if err != nil {
			return catalog.FoodItemChanges{}, err
		}
		changes.PricePerTray = &price
	}
	if body.TraySize != nil {
		size, err := cart.ParseTraySize(string(*body.TraySize))
		if err != nil {
			return catalog.FoodItemChanges{}, err
		}
		changes.TraySize = &size
	}
	return changes, nil
}

func menuResponse(m queries.MenuResponse) servers.Menu {
	return servers.Menu{
		Id:          m.ID.Raw(),
		ProviderId:  m.ProviderID.Raw(),
		Title:       m.Title,
		Description: optional(m.Description),
		CreatedAt:   m.CreatedAt,
	}
}

func menuFromDomain(m *catalog.Menu) servers.Menu {
	return menuResponse(queries.MenuResponse{
		ID:          m.ID(),
		ProviderID:  m.ProviderID(),
		Title:       m.Title(),
		Description: m.Description(),
		CreatedAt:   m.CreatedAt(),
	})
}

func reviewResponse(r queries.ReviewResponse) servers.Review {
	return servers.Review{
		Id:         r.ID.Raw(),
		ProviderId: r.ProviderID.Raw(),
		CustomerId: r.CustomerID.Raw(),
		Rating:     r.Rating,
		Comment:    optional(r.Comment),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func eventResponse(e queries.EventResponse) servers.Event {
	return servers.Event{
		Id:          e.ID.Raw(),
		UserId:      e.UserID.Raw(),
		Name:        e.Name,
		Date:        e.Date,
		Location:    e.Location,
		GuestCount:  e.GuestCount,
		CuisineType: optional(e.CuisineType),
		Budget:      optionalAmount(e.Budget),
		Status:      servers.EventStatus(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

func eventFromDomain(e *event.Event) servers.Event {
	d := e.Details()
	return eventResponse(queries.EventResponse{
		ID:          e.ID(),
		UserID:      e.UserID(),
		Name:        d.Name,
		Date:        d.Date,
		Location:    d.Location,
		GuestCount:  d.GuestCount,
		CuisineType: d.CuisineType,
		Budget:      d.Budget,
		Status:      e.Status(),
		CreatedAt:   e.CreatedAt(),
	})
}

func cartResponse(c queries.CartView) servers.Cart {
	items := make([]servers.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, cartItemResponse(item))
	}
	return servers.Cart{
		Id:           c.ID.Raw(),
		EventId:      c.EventID.Raw(),
		CustomerId:   c.CustomerID.Raw(),
		Items:        items,
		TotalPrimary: c.Totals.Primary.Float64(),
		TotalBackup:  c.Totals.Backup.Float64(),
		CreatedAt:    c.CreatedAt,
	}
}

func cartItemResponse(item queries.CartItemView) servers.CartItem {
	return servers.CartItem{
		Id:               item.ID.Raw(),
		FoodItemId:       item.FoodItemID.Raw(),
		FoodItemName:     item.FoodItemName,
		ProviderId:       item.ProviderID.Raw(),
		ProviderName:     item.ProviderName,
		TraySize:         servers.TraySize(item.TraySize.String()),
		Quantity:         item.Quantity,
		UnitPrice:        item.UnitPrice.Float64(),
		Subtotal:         item.Subtotal.Float64(),
		IsBackupProvider: item.IsBackupProvider,
		CreatedAt:        item.CreatedAt,
	}
}

func cartItemFromDomain(item *cart.Item, foodItemName, providerName string) servers.CartItem {
	return cartItemResponse(queries.CartItemView{
		ID:               item.ID(),
		FoodItemID:       item.FoodItemID(),
		FoodItemName:     foodItemName,
		ProviderID:       item.ProviderID(),
		ProviderName:     providerName,
		TraySize:         item.TraySize(),
		Quantity:         item.Quantity(),
		UnitPrice:        item.UnitPrice(),
		Subtotal:         item.Subtotal(),
		IsBackupProvider: item.IsBackupProvider(),
		CreatedAt:        item.CreatedAt(),
	})
}

func addedCartItemResponse(added commands.AddedCartItem) servers.CartItem {
	return cartItemFromDomain(added.Item, added.FoodItemName, added.ProviderName)
}

func orderResponse(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, servers.OrderItem{
			Id:               item.ID.Raw(),
			FoodItemId:       item.FoodItemID.Raw(),
			FoodItemName:     optional(item.FoodItemName),
			ProviderId:       item.ProviderID.Raw(),
			TraySize:         servers.TraySize(item.TraySize.String()),
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice.Float64(),
			IsBackupProvider: item.IsBackupProvider,
		})
	}
	return servers.Order{
		Id:                  o.ID.Raw(),
		EventId:             o.EventID.Raw(),
		CartId:              o.CartID.Raw(),
		CustomerId:          o.CustomerID.Raw(),
		PrimaryProviderId:   o.PrimaryProviderID.Raw(),
		BackupProviderId:    optionalID(o.BackupProviderID),
		SourceOrderId:       optionalID(o.SourceOrderID),
		Items:               items,
		TotalPrimary:        o.TotalPrimary.Float64(),
		TotalBackup:         o.TotalBackup.Float64(),
		TotalAmount:         o.TotalAmount.Float64(),
		Status:              servers.OrderStatus(o.Status.String()),
		SpecialInstructions: optional(o.SpecialInstructions),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func orderFromDomain(o *order.Order) servers.Order {
	lines := o.Lines()
	items := make([]queries.OrderItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, queries.OrderItemResponse{
			ID:               line.ID(),
			FoodItemID:       line.FoodItemID(),
			ProviderID:       line.ProviderID(),
			TraySize:         line.TraySize(),
			Quantity:         line.Quantity(),
			UnitPrice:        line.UnitPrice(),
			IsBackupProvider: line.IsBackupProvider(),
		})
	}
	return orderResponse(queries.OrderResponse{
		ID:                  o.ID(),
		EventID:             o.EventID(),
		CartID:              o.CartID(),
		CustomerID:          o.CustomerID(),
		PrimaryProviderID:   o.PrimaryProviderID(),
		BackupProviderID:    o.BackupProviderID(),
		SourceOrderID:       o.SourceOrderID(),
		Items:               items,
		TotalPrimary:        o.TotalPrimary(),
		TotalBackup:         o.TotalBackup(),
		TotalAmount:         o.TotalAmount(),
		Status:              o.Status(),
		SpecialInstructions: o.SpecialInstructions(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	})
}
