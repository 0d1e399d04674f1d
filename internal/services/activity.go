package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"extracurricular/internal/domain"
	"extracurricular/internal/metrics"
)

type activityService struct {
	logger *slog.Logger
	repo   domain.ActivityRepository
	// emails is optional; nil disables notifications.
	emails domain.EmailService
}

// NewActivityService creates an ActivityRegistry backed by repo. Confirmation
// emails are sent through emails when it is non-nil.
func NewActivityService(logger *slog.Logger, repo domain.ActivityRepository, emails domain.EmailService) domain.ActivityRegistry {
	return &activityService{
		logger: logger,
		repo:   repo,
		emails: emails,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return lo.KeyBy(list, func(a *domain.Activity) string { return a.Name }), nil
}

func (s *activityService) Enroll(ctx context.Context, activityName, email string) (*domain.Confirmation, error) {
	if err := requirePresent(activityName, email); err != nil {
		metrics.Rejections.WithLabelValues("enroll", "invalid_input").Inc()
		return nil, err
	}

	updated, err := s.repo.Update(ctx, activityName, func(a *domain.Activity) error {
		if lo.Contains(a.Participants, email) {
			return domain.ErrAlreadyEnrolled
		}
		if len(a.Participants) >= a.MaxParticipants {
			return domain.ErrCapacityExceeded
		}
		a.Participants = append(a.Participants, email)
		return nil
	})
	if err != nil {
		metrics.Rejections.WithLabelValues("enroll", rejectionReason(err)).Inc()
		if isRegistryError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("enroll: %w", err)
	}

	metrics.Enrollments.WithLabelValues(updated.Name).Inc()
	metrics.Participants.WithLabelValues(updated.Name).Set(float64(len(updated.Participants)))
	s.logger.InfoContext(ctx, "participant signed up", "activity", updated.Name, "email", email, "spots_left", updated.SpotsLeft())

	s.notify(ctx, true, updated, email)
	return &domain.Confirmation{
		Activity: updated.Name,
		Email:    email,
		Message:  fmt.Sprintf("Signed up %s for %s", email, updated.Name),
	}, nil
}

func (s *activityService) Withdraw(ctx context.Context, activityName, email string) (*domain.Confirmation, error) {
	if err := requirePresent(activityName, email); err != nil {
		metrics.Rejections.WithLabelValues("withdraw", "invalid_input").Inc()
		return nil, err
	}

	updated, err := s.repo.Update(ctx, activityName, func(a *domain.Activity) error {
		if !lo.Contains(a.Participants, email) {
			return domain.ErrNotEnrolled
		}
		a.Participants = lo.Without(a.Participants, email)
		return nil
	})
	if err != nil {
		metrics.Rejections.WithLabelValues("withdraw", rejectionReason(err)).Inc()
		if isRegistryError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	metrics.Withdrawals.WithLabelValues(updated.Name).Inc()
	metrics.Participants.WithLabelValues(updated.Name).Set(float64(len(updated.Participants)))
	s.logger.InfoContext(ctx, "participant unregistered", "activity", updated.Name, "email", email, "spots_left", updated.SpotsLeft())

	s.notify(ctx, false, updated, email)
	return &domain.Confirmation{
		Activity: updated.Name,
		Email:    email,
		Message:  fmt.Sprintf("Unregistered %s from %s", email, updated.Name),
	}, nil
}

// notify sends a confirmation email. Failures are logged only; the roster
// change has already been committed.
func (s *activityService) notify(ctx context.Context, signup bool, a *domain.Activity, email string) {
	if s.emails == nil {
		return
	}
	data := &domain.SignupEmailData{
		Email:     email,
		Activity:  a.Name,
		Schedule:  a.Schedule,
		SpotsLeft: a.SpotsLeft(),
	}
	send := s.emails.SendWithdrawalConfirmation
	if signup {
		send = s.emails.SendSignupConfirmation
	}
	if err := send(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "activity", a.Name, "email", email, "err", err)
	}
}

func requirePresent(activityName, email string) error {
	if strings.TrimSpace(activityName) == "" {
		return fmt.Errorf("activity name is required: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}
	return nil
}

func isRegistryError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyEnrolled) ||
		errors.Is(err, domain.ErrNotEnrolled) ||
		errors.Is(err, domain.ErrCapacityExceeded)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return "already_enrolled"
	case errors.Is(err, domain.ErrNotEnrolled):
		return "not_enrolled"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "activity_full"
	default:
		return "internal"
	}
}
