package catalog

import (
	"errors"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")

// Menu is a titled collection a provider presents to customers.
type Menu struct {
	id          kernel.UUID
	providerID  kernel.UUID
	title       string
	description string
	createdAt   time.Time

	isConstructed bool
}

// NewMenu creates a menu for providerID.
func NewMenu(providerID kernel.UUID, title, description string) (*Menu, error) {
	return RestoreMenu(kernel.NewUUID(), providerID, title, description, time.Now().UTC())
}

// RestoreMenu rebuilds a stored menu.
func RestoreMenu(id, providerID kernel.UUID, title, description string, createdAt time.Time) (*Menu, error) {
	if err := errors.Join(
		id.Validate(),
		providerID.Validate(),
		requireText("title", title),
	); err != nil {
		return nil, err
	}

	return &Menu{
		id:            id,
		providerID:    providerID,
		title:         strings.TrimSpace(title),
		description:   description,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

func (m *Menu) ID() kernel.UUID { return m.id }
func (m *Menu) ProviderID() kernel.UUID { return m.providerID }
func (m *Menu) Title() string { return m.title }
func (m *Menu) Description() string { return m.description }
func (m *Menu) CreatedAt() time.Time { return m.createdAt }
