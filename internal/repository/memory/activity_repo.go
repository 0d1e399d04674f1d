package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"extracurricular/internal/domain"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityRepository returns an in-memory ActivityRepository holding copies
// of the seed activities. Seed names must be unique and capacities positive.
func NewActivityRepository(seed []*domain.Activity) (domain.ActivityRepository, error) {
	activities := make(map[string]*domain.Activity, len(seed))
	for _, a := range seed {
		if a == nil || a.Name == "" {
			return nil, fmt.Errorf("seed activity without name: %w", domain.ErrInvalidInput)
		}
		if _, dup := activities[a.Name]; dup {
			return nil, fmt.Errorf("duplicate seed activity %q: %w", a.Name, domain.ErrInvalidInput)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("seed activity %q has non-positive capacity: %w", a.Name, domain.ErrInvalidInput)
		}
		if len(a.Participants) > a.MaxParticipants {
			return nil, fmt.Errorf("seed activity %q exceeds its capacity: %w", a.Name, domain.ErrInvalidInput)
		}
		activities[a.Name] = a.Clone()
	}
	return &activityRepository{activities: activities}, nil
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *activityRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a.Clone(), nil
}

func (r *activityRepository) Update(ctx context.Context, name string, fn func(a *domain.Activity) error) (*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	// fn works on a copy; the store only sees it once fn succeeds.
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.Name = current.Name
	r.activities[name] = next
	return next.Clone(), nil
}
