package queries

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the visible orders, newest first, with their lines in
// snapshot order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt, ok, err := h.scope(ctx, query.session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []OrderResponse{}, nil
	}

	var rows []orderRow
	err = stmt.
		Select("id, event_id, cart_id, customer_id, primary_provider_id, backup_provider_id, source_order_id, " +
			"total_primary, total_backup, total_amount, status, special_instructions, created_at, updated_at").
		Order("created_at DESC, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []OrderResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := h.items(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		o, err := row.response()
		if err != nil {
			return nil, err
		}
		o.Items = items[row.ID]
		if o.Items == nil {
			o.Items = []OrderItemResponse{}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// scope narrows the orders table to what the session may see. ok is false
// when the session sees nothing.
func (h GetOrdersQueryHandler) scope(ctx context.Context, session identity.Session) (*gorm.DB, bool, error) {
	stmt := h.db.WithContext(ctx).Table("orders")

	switch role := session.Role(); {
	case role == identity.Admin:
		return stmt, true, nil
	case role == identity.Customer:
		return stmt.Where("customer_id = ?", session.UserID().Raw()), true, nil
	case role.IsProvider():
		providerID, err := resolveProviderID(ctx, h.db, session.UserID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		id := providerID.Raw()
		return stmt.Where("provider_id = ? OR primary_provider_id = ? OR backup_provider_id = ?", id, id, id), true, nil
	default:
		return nil, false, nil
	}
}

func (h GetOrdersQueryHandler) items(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT oi.order_id, oi.id, oi.food_item_id, COALESCE(fi.name, ''), oi.provider_id,
		       oi.tray_size, oi.quantity, oi.unit_price, oi.is_backup_provider
		FROM order_items oi
		LEFT JOIN food_items fi ON fi.id = oi.food_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]OrderItemResponse, len(orderIDs))
	for rows.Next() {
		var (
			orderID, id, foodItemID, providerID uuid.UUID
			foodItemName, traySize              string
			quantity                            int
			unitPrice                           decimal.Decimal
			isBackup                            bool
		)
		if err := rows.Scan(
			&orderID, &id, &foodItemID, &foodItemName, &providerID,
			&traySize, &quantity, &unitPrice, &isBackup,
		); err != nil {
			return nil, err
		}

		item, err := orderItem(id, foodItemID, providerID, traySize, unitPrice)
		if err != nil {
			return nil, err
		}
		item.FoodItemName = foodItemName
		item.Quantity = quantity
		item.IsBackupProvider = isBackup
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	return byOrder, rows.Err()
}

func orderItem(id, foodItemID, providerID uuid.UUID, traySize string, unitPrice decimal.Decimal) (OrderItemResponse, error) {
	itemID, err := toUUID(id)
	if err != nil {
		return OrderItemResponse{}, err
	}
	foodID, err := toUUID(foodItemID)
	if err != nil {
		return OrderItemResponse{}, err
	}
	ownerID, err := toUUID(providerID)
	if err != nil {
		return OrderItemResponse{}, err
	}
	size, err := cart.ParseTraySize(traySize)
	if err != nil {
		return OrderItemResponse{}, err
	}
	price, err := toMoney(unitPrice)
	if err != nil {
		return OrderItemResponse{}, err
	}
	return OrderItemResponse{
		ID:         itemID,
		FoodItemID: foodID,
		ProviderID: ownerID,
		TraySize:   size,
		UnitPrice:  price,
	}, nil
}

type orderRow struct {
	ID                  uuid.UUID
	EventID             uuid.UUID
	CartID              uuid.UUID
	CustomerID          uuid.UUID
	PrimaryProviderID   uuid.UUID
	BackupProviderID    *uuid.UUID
	SourceOrderID       *uuid.UUID
	TotalPrimary        decimal.Decimal
	TotalBackup         decimal.Decimal
	TotalAmount         decimal.Decimal
	Status              string
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (r orderRow) response() (OrderResponse, error) {
	var (
		resp OrderResponse
		err  error
	)
	ids := []struct {
		dst *kernel.UUID
		src uuid.UUID
	}{
		{&resp.ID, r.ID},
		{&resp.EventID, r.EventID},
		{&resp.CartID, r.CartID},
		{&resp.CustomerID, r.CustomerID},
		{&resp.PrimaryProviderID, r.PrimaryProviderID},
	}
	for _, id := range ids {
		if *id.dst, err = toUUID(id.src); err != nil {
			return OrderResponse{}, err
		}
	}
	if resp.BackupProviderID, err = kernel.OptionalUUIDFromBytes(r.BackupProviderID); err != nil {
		return OrderResponse{}, err
	}
	if resp.SourceOrderID, err = kernel.OptionalUUIDFromBytes(r.SourceOrderID); err != nil {
		return OrderResponse{}, err
	}

	amounts := []struct {
		dst *kernel.Money
		src decimal.Decimal
	}{
		{&resp.TotalPrimary, r.TotalPrimary},
		{&resp.TotalBackup, r.TotalBackup},
		{&resp.TotalAmount, r.TotalAmount},
	}
	for _, amount := range amounts {
		if *amount.dst, err = toMoney(amount.src); err != nil {
			return OrderResponse{}, err
		}
	}

	if resp.Status, err = order.ParseStatus(r.Status); err != nil {
		return OrderResponse{}, err
	}
	resp.SpecialInstructions = r.SpecialInstructions
	resp.CreatedAt = r.CreatedAt
	resp.UpdatedAt = r.UpdatedAt
	return resp, nil
}
