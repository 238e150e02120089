package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListFoodItemsQueryHandler struct {
	db *gorm.DB
}

func NewListFoodItemsQueryHandler(db *gorm.DB) ListFoodItemsQueryHandler {
	return ListFoodItemsQueryHandler{db: db}
}

// Handle returns available dishes, newest first. An unknown provider yields
// an empty list.
func (h ListFoodItemsQueryHandler) Handle(ctx context.Context, query ListFoodItemsQuery) ([]FoodItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, provider_id, name, description, cuisine_type, price_per_tray,
		       tray_size, is_vegetarian, is_vegan, is_available, created_at
		FROM food_items
		WHERE provider_id = ? AND is_available
		ORDER BY created_at DESC, id
	`, query.providerID.Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]FoodItemResponse, 0)
	for rows.Next() {
		var (
			id, providerID                 uuid.UUID
			name, description, cuisineType string
			price                          decimal.Decimal
			traySize                       string
			vegetarian, vegan, isAvailable bool
			createdAt                      time.Time
		)
		if err := rows.Scan(
			&id, &providerID, &name, &description, &cuisineType, &price,
			&traySize, &vegetarian, &vegan, &isAvailable, &createdAt,
		); err != nil {
			return nil, err
		}

		itemID, err := toUUID(id)
		if err != nil {
			return nil, err
		}
		ownerID, err := toUUID(providerID)
		if err != nil {
			return nil, err
		}
		pricePerTray, err := toMoney(price)
		if err != nil {
			return nil, err
		}
		size, err := cart.ParseTraySize(traySize)
		if err != nil {
			return nil, err
		}

		items = append(items, FoodItemResponse{
			ID:           itemID,
			ProviderID:   ownerID,
			Name:         name,
			Description:  description,
			CuisineType:  cuisineType,
			PricePerTray: pricePerTray,
			TraySize:     size,
			Dietary:      catalog.Dietary{Vegetarian: vegetarian, Vegan: vegan},
			IsAvailable:  isAvailable,
			CreatedAt:    createdAt,
		})
	}
	return items, rows.Err()
}
