package queries

import (
	"context"

	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProviderQueryHandler struct {
	db *gorm.DB
}

func NewGetProviderQueryHandler(db *gorm.DB) GetProviderQueryHandler {
	return GetProviderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown provider.
func (h GetProviderQueryHandler) Handle(ctx context.Context, query GetProviderQuery) (ProviderResponse, error) {
	if err := query.Validate(); err != nil {
		return ProviderResponse{}, err
	}

	var rows []providerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, description, location, provider_type, phone, email, is_active, created_at
		FROM providers
		WHERE id = ?
	`, query.providerID.Raw()).Scan(&rows).Error
	if err != nil {
		return ProviderResponse{}, err
	}
	if len(rows) == 0 {
		return ProviderResponse{}, errs.NewObjectNotFoundError("provider", query.providerID.String())
	}
	return rows[0].response()
}
