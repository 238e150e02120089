package catalog

import (
	"errors"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

var ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider or RestoreProvider")

// Contact holds the optional ways to reach a provider.
type Contact struct {
	Phone string
	Email string
}

// Provider is a business that sells trays: a restaurant, an independent
// caterer or a cloud kitchen. Each provider belongs to exactly one user.
type Provider struct {
	id           kernel.UUID
	userID       kernel.UUID
	name         string
	description  string
	location     string
	providerType ProviderType
	contact      Contact
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewProvider registers an active provider for userID.
func NewProvider(userID kernel.UUID, name, description, location string, providerType ProviderType, contact Contact) (*Provider, error) {
	now := time.Now().UTC()
	return RestoreProvider(kernel.NewUUID(), userID, name, description, location, providerType, contact, true, now, now)
}

// RestoreProvider rebuilds a stored provider.
func RestoreProvider(
	id, userID kernel.UUID,
	name, description, location string,
	providerType ProviderType,
	contact Contact,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Provider, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		requireText("name", name),
		requireText("location", location),
		providerType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Provider{
		id:            id,
		userID:        userID,
		name:          strings.TrimSpace(name),
		description:   description,
		location:      strings.TrimSpace(location),
		providerType:  providerType,
		contact:       contact,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (p *Provider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProviderIsNotConstructed
	}
	return nil
}

func (p *Provider) ID() kernel.UUID { return p.id }
func (p *Provider) UserID() kernel.UUID { return p.userID }
func (p *Provider) Name() string { return p.name }
func (p *Provider) Description() string { return p.description }
func (p *Provider) Location() string { return p.location }
func (p *Provider) Type() ProviderType { return p.providerType }
func (p *Provider) Contact() Contact { return p.contact }
func (p *Provider) IsActive() bool { return p.isActive }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }

// SetActive moderates the provider. It reports whether the flag changed.
func (p *Provider) SetActive(active bool) bool {
	if p.isActive == active {
		return false
	}
	p.isActive = active
	p.updatedAt = time.Now().UTC()
	return true
}

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
