package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListReviewsQueryHandler(db *gorm.DB) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db}
}

// Handle returns the reviews of a provider, newest first.
func (h ListReviewsQueryHandler) Handle(ctx context.Context, query ListReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []reviewRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE provider_id = ?
		ORDER BY created_at DESC, id
	`, query.providerID.Raw()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]ReviewResponse, 0, len(rows))
	for _, row := range rows {
		id, err := toUUID(row.ID)
		if err != nil {
			return nil, err
		}
		customerID, err := toUUID(row.CustomerID)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, ReviewResponse{
			ID:         id,
			ProviderID: query.providerID,
			CustomerID: customerID,
			Rating:     row.Rating,
			Comment:    row.Comment,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		})
	}
	return reviews, nil
}

type reviewRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
