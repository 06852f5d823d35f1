// Package memdb backs the lead store with process memory, for deployments
// and local runs that have no PostgreSQL configured.
package memdb

import (
	"context"
	"sort"
	"sync"

	"github.com/takweol/casematch/internal/domain/lead"
	"github.com/takweol/casematch/pkg/errors"
)

// LeadRepository is an in-memory lead.Repository.
type LeadRepository struct {
	mu    sync.RWMutex
	leads map[string]*lead.Lead
}

// NewLeadRepository builds an empty store.
func NewLeadRepository() *LeadRepository {
	return &LeadRepository{leads: make(map[string]*lead.Lead)}
}

// Create stores a copy of l, enforcing the per-conversation uniqueness the
// SQL schema guarantees.
func (r *LeadRepository) Create(_ context.Context, l *lead.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.leads {
		if existing.CategoryID == l.CategoryID && existing.TranscriptDigest == l.TranscriptDigest {
			return errors.Conflict("lead already exists for this conversation").
				WithDetail("category_id=" + l.CategoryID)
		}
	}
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

// GetByID returns a copy of the stored lead.
func (r *LeadRepository) GetByID(_ context.Context, id string) (*lead.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.leads[id]
	if !ok {
		return nil, errors.NotFound("lead not found").WithDetail("id=" + id)
	}
	cp := *l
	return &cp, nil
}

// List filters and pages leads, newest first.
func (r *LeadRepository) List(_ context.Context, filter lead.ListFilter) ([]*lead.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*lead.Lead
	for _, l := range r.leads {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && l.CategoryID != filter.CategoryID {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// UpdateStatus overwrites status and update time of the stored lead.
func (r *LeadRepository) UpdateStatus(_ context.Context, l *lead.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.leads[l.ID]
	if !ok {
		return errors.NotFound("lead not found").WithDetail("id=" + l.ID)
	}
	stored.Status = l.Status
	stored.UpdatedAt = l.UpdatedAt
	return nil
}
