package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListEventsQueryHandler struct {
	db *gorm.DB
}

func NewListEventsQueryHandler(db *gorm.DB) ListEventsQueryHandler {
	return ListEventsQueryHandler{db: db}
}

// Handle returns the caller's events, earliest date first.
func (h ListEventsQueryHandler) Handle(ctx context.Context, query ListEventsQuery) ([]EventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []eventRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, "date", location, guest_count, cuisine_type, budget, status, created_at
		FROM events
		WHERE user_id = ?
		ORDER BY "date", created_at
	`, query.session.UserID().Raw()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]EventResponse, 0, len(rows))
	for _, row := range rows {
		e, err := row.response()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

type eventRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Date        time.Time
	Location    string
	GuestCount  int
	CuisineType string
	Budget      *decimal.Decimal
	Status      string
	CreatedAt   time.Time
}

func (r eventRow) response() (EventResponse, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return EventResponse{}, err
	}
	userID, err := toUUID(r.UserID)
	if err != nil {
		return EventResponse{}, err
	}
	status := event.Status(r.Status)
	if err := status.Validate(); err != nil {
		return EventResponse{}, err
	}

	var budget *kernel.Money
	if r.Budget != nil {
		m, err := toMoney(*r.Budget)
		if err != nil {
			return EventResponse{}, err
		}
		budget = &m
	}

	return EventResponse{
		ID:          id,
		UserID:      userID,
		Name:        r.Name,
		Date:        r.Date,
		Location:    r.Location,
		GuestCount:  r.GuestCount,
		CuisineType: r.CuisineType,
		Budget:      budget,
		Status:      status,
		CreatedAt:   r.CreatedAt,
	}, nil
}
