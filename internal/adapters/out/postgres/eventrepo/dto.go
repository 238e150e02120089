// Package eventrepo persists events.
package eventrepo

import (
	"time"

	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventDTO is the events row.
type EventDTO struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name        string           `gorm:"type:varchar(255);not null"`
	Date        time.Time        `gorm:"not null;index"`
	Location    string           `gorm:"type:varchar(255);not null"`
	GuestCount  int              `gorm:"type:int;not null"`
	CuisineType string           `gorm:"type:varchar(64)"`
	Budget      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status      string           `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

func (EventDTO) TableName() string {
	return "events"
}

func fromDomain(e *event.Event) EventDTO {
	d := e.Details()
	var budget *decimal.Decimal
	if d.Budget != nil {
		amount := d.Budget.Decimal()
		budget = &amount
	}

	return EventDTO{
		ID:          e.ID().Raw(),
		UserID:      e.UserID().Raw(),
		Name:        d.Name,
		Date:        d.Date,
		Location:    d.Location,
		GuestCount:  d.GuestCount,
		CuisineType: d.CuisineType,
		Budget:      budget,
		Status:      string(e.Status()),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func toDomain(dto EventDTO) (*event.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	d := event.Details{
		Name:        dto.Name,
		Date:        dto.Date,
		Location:    dto.Location,
		GuestCount:  dto.GuestCount,
		CuisineType: dto.CuisineType,
	}
	if dto.Budget != nil {
		budget, err := kernel.NewMoney(*dto.Budget)
		if err != nil {
			return nil, err
		}
		d.Budget = &budget
	}

	return event.RestoreEvent(id, userID, d, event.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}
