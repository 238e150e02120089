package queries

import (
	"context"
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMenusQueryHandler struct {
	db *gorm.DB
}

func NewListMenusQueryHandler(db *gorm.DB) ListMenusQueryHandler {
	return ListMenusQueryHandler{db: db}
}

// Handle returns menus, newest first. A caller without a provider profile
// gets an empty list.
func (h ListMenusQueryHandler) Handle(ctx context.Context, query ListMenusQuery) ([]MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var providerID kernel.UUID
	if query.providerID != nil {
		providerID = *query.providerID
	} else {
		own, err := resolveProviderID(ctx, h.db, query.session.UserID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return []MenuResponse{}, nil
		}
		if err != nil {
			return nil, err
		}
		providerID = own
	}

	var rows []menuRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, provider_id, title, description, created_at
		FROM menus
		WHERE provider_id = ?
		ORDER BY created_at DESC, id
	`, providerID.Raw()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	menus := make([]MenuResponse, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}
		menus = append(menus, MenuResponse{
			ID:          id,
			ProviderID:  providerID,
			Title:       row.Title,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}
	return menus, nil
}

type menuRow struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
}
