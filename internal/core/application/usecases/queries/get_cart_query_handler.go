package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the cart lines in insertion order. Totals follow
// cart.ComputeTotals: backup lines count towards Backup only.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	var carts []cartRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, event_id, customer_id, created_at FROM carts WHERE id = ?
	`, query.cartID.Raw()).Scan(&carts).Error
	if err != nil {
		return CartView{}, err
	}
	if len(carts) == 0 {
		return CartView{}, errs.NewObjectNotFoundError("cart", query.cartID.String())
	}
	if carts[0].CustomerID != query.session.UserID().Raw() {
		return CartView{}, errs.NewForbiddenError("getCart", "cart belongs to another user")
	}

	view, err := carts[0].view()
	if err != nil {
		return CartView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ci.id, ci.food_item_id, COALESCE(fi.name, ''), ci.provider_id, COALESCE(p.name, ''),
		       ci.tray_size, ci.quantity, ci.unit_price, ci.is_backup_provider, ci.created_at
		FROM cart_items ci
		LEFT JOIN food_items fi ON fi.id = ci.food_item_id
		LEFT JOIN providers p ON p.id = ci.provider_id
		WHERE ci.cart_id = ?
		ORDER BY ci.created_at, ci.id
	`, query.cartID.Raw()).Rows()
	if err != nil {
		return CartView{}, err
	}
	defer rows.Close()

	var items []*cart.Item
	for rows.Next() {
		var (
			id, foodItemID, providerID uuid.UUID
			foodItemName, providerName string
			traySize                   string
			quantity                   int
			unitPrice                  decimal.Decimal
			isBackup                   bool
			createdAt                  time.Time
		)
		if err := rows.Scan(
			&id, &foodItemID, &foodItemName, &providerID, &providerName,
			&traySize, &quantity, &unitPrice, &isBackup, &createdAt,
		); err != nil {
			return CartView{}, err
		}

		item, err := restoreCartItem(view, id, foodItemID, providerID, traySize, quantity, unitPrice, isBackup, createdAt)
		if err != nil {
			return CartView{}, err
		}
		items = append(items, item)

		view.Items = append(view.Items, CartItemView{
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
	if err := rows.Err(); err != nil {
		return CartView{}, err
	}

	view.Totals = cart.ComputeTotals(items)
	return view, nil
}

type cartRow struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	CustomerID uuid.UUID
	CreatedAt  time.Time
}

func (r cartRow) view() (CartView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return CartView{}, err
	}
	eventID, err := toUUID(r.EventID)
	if err != nil {
		return CartView{}, err
	}
	customerID, err := toUUID(r.CustomerID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{
		ID:         id,
		EventID:    eventID,
		CustomerID: customerID,
		CreatedAt:  r.CreatedAt,
		Items:      []CartItemView{},
	}, nil
}
