package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProvidersQueryHandler reads the provider directory.
type ListProvidersQueryHandler struct {
	db *gorm.DB
}

func NewListProvidersQueryHandler(db *gorm.DB) ListProvidersQueryHandler {
	return ListProvidersQueryHandler{db: db}
}

// Handle returns active providers sorted by name. Inactive providers are
// hidden from the directory.
func (h ListProvidersQueryHandler) Handle(ctx context.Context, query ListProvidersQuery) ([]ProviderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("providers").
		Select("id, user_id, name, description, location, provider_type, phone, email, is_active, created_at").
		Where("is_active")
	if query.providerType != nil {
		stmt = stmt.Where("provider_type = ?", query.providerType.String())
	}

	var rows []providerRow
	if err := stmt.Order("name, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	providers := make([]ProviderResponse, 0, len(rows))
	for _, row := range rows {
		p, err := row.response()
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}

type providerRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	Location     string
	ProviderType string
	Phone        string
	Email        string
	IsActive     bool
	CreatedAt    time.Time
}

func (r providerRow) response() (ProviderResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return ProviderResponse{}, err
	}
	userID, err := toUUID(r.UserID)
	if err != nil {
		return ProviderResponse{}, err
	}
	providerType, err := catalog.ParseProviderType(r.ProviderType)
	if err != nil {
		return ProviderResponse{}, err
	}

	return ProviderResponse{
		ID:          id,
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Type:        providerType,
		Contact:     catalog.Contact{Phone: r.Phone, Email: r.Email},
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}, nil
}
