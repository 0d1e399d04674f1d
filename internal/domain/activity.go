package domain

import (
	"context"
	"slices"
)

// Activity is an extracurricular offering with a capacity and a roster of
// participant emails kept in signup order.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with an empty roster.
func NewActivity(name, description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
}

// Clone returns a deep copy so callers never share the roster slice.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c
}

// SpotsLeft is the number of participants that can still sign up.
func (a *Activity) SpotsLeft() int {
	if n := a.MaxParticipants - len(a.Participants); n > 0 {
		return n
	}
	return 0
}

// Confirmation is returned by successful enroll and withdraw calls.
// swagger:model Confirmation
type Confirmation struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

// ActivityRepository defines storage operations for activities.
type ActivityRepository interface {
	List(ctx context.Context) ([]*Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	// Update applies fn to the named activity atomically. If fn returns an
	// error the stored activity is left unchanged. Returns ErrNotFound for
	// unknown names.
	Update(ctx context.Context, name string, fn func(a *Activity) error) (*Activity, error)
}

// ActivityRegistry defines the signup operations exposed to callers.
type ActivityRegistry interface {
	// ListActivities returns every activity keyed by name. The returned values are copies.
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	Enroll(ctx context.Context, activityName, email string) (*Confirmation, error)
	Withdraw(ctx context.Context, activityName, email string) (*Confirmation, error)
}
