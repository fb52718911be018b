// Package service implements the business rules of the activities API
// between the HTTP handlers and the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/Shivanand-hulikatti/activity-signup/internal/repository"
)

// ErrInvalidEmail is returned when an email fails the structural check.
var ErrInvalidEmail = errors.New("value is not a valid email address")

// ActivityStore lists activities.
type ActivityStore interface {
	List(ctx context.Context) (model.ActivitySet, error)
}

// RegistrationStore adds and removes participants.
type RegistrationStore interface {
	Book(ctx context.Context, activity, email string) error
	Cancel(ctx context.Context, activity, email string) error
}

// ActivityService orchestrates activity-related operations.
type ActivityService struct {
	activities    ActivityStore
	registrations RegistrationStore
}

// NewActivityService constructs an ActivityService with its dependencies.
func NewActivityService(activities ActivityStore, registrations RegistrationStore) *ActivityService {
	return &ActivityService{activities: activities, registrations: registrations}
}

// ListActivities returns all activities in creation order.
func (s *ActivityService) ListActivities(ctx context.Context) (model.ActivitySet, error) {
	set, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return set, nil
}

// SignUp validates and normalises email, then books it for activity.
func (s *ActivityService) SignUp(ctx context.Context, activity, email string) (*model.MessageResponse, error) {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if activity == "" {
		return nil, repository.ErrNotFound
	}

	if err := s.registrations.Book(ctx, activity, email); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return &model.MessageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, activity)}, nil
}

// Unregister removes email from activity.
func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (*model.MessageResponse, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if activity == "" {
		return nil, repository.ErrNotFound
	}

	if err := s.registrations.Cancel(ctx, activity, email); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("unregister: %w", err)
	}
	return &model.MessageResponse{Message: fmt.Sprintf("Removed %s from %s", email, activity)}, nil
}

func isDomainError(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrActivityFull) ||
		errors.Is(err, repository.ErrAlreadyRegistered) ||
		errors.Is(err, repository.ErrNotRegistered)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail does a basic structural check.
func isValidEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") || strings.ContainsAny(email, " \t") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
