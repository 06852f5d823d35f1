package lead

import "context"

// ListFilter narrows a lead listing.  Zero values mean "no constraint".
type ListFilter struct {
	Status     Status
	CategoryID string
	Limit      int
	Offset     int
}

// Repository is the persistence port for leads.  The postgres adapter under
// internal/infrastructure/database implements it; application tests use an
// in-memory fake.
type Repository interface {
	// Create persists a new lead.  Returns CodeConflict when a lead with the
	// same transcript digest and category already exists.
	Create(ctx context.Context, l *Lead) error

	// GetByID loads one lead.  Returns CodeNotFound when absent.
	GetByID(ctx context.Context, id string) (*Lead, error)

	// List returns leads matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]*Lead, error)

	// UpdateStatus persists a status change already validated by the entity.
	UpdateStatus(ctx context.Context, l *Lead) error
}
