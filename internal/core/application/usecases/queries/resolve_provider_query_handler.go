package queries

import (
	"context"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveProviderQueryHandler returns the provider id of a user, or
// ObjectNotFoundError for users without a provider profile.
type ResolveProviderQueryHandler struct {
	db *gorm.DB
}

func NewResolveProviderQueryHandler(db *gorm.DB) ResolveProviderQueryHandler {
	return ResolveProviderQueryHandler{db: db}
}

func (h ResolveProviderQueryHandler) Handle(ctx context.Context, query ResolveProviderQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	return resolveProviderID(ctx, h.db, query.userID)
}

func resolveProviderID(ctx context.Context, db *gorm.DB, userID kernel.UUID) (kernel.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Table("providers").
		Where("user_id = ?", userID.Raw()).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(ids) == 0 {
		return kernel.UUID{}, errs.NewObjectNotFoundError("provider", "of user "+userID.String())
	}
	return toUUID(ids[0])
}
