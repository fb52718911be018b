// Package view implements the activity sign-up view: a controller that owns
// the page's rendering targets and keeps them in sync with the activities API.
package view

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/client"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// DefaultHideDelay is how long a status message stays visible.
const DefaultHideDelay = 5 * time.Second

const (
	msgSignUpFallback   = "An error occurred"
	msgSignUpFailed     = "Failed to sign up. Please try again."
	msgRemoveUnresolved = "Could not determine which participant to remove."
	msgRemoveFallback   = "Failed to remove participant."
	msgRemoveFailed     = "Failed to remove participant. Please try again."
)

// ActivityAPI is the remote list/sign-up/removal interface the controller
// synchronises with.
type ActivityAPI interface {
	ListActivities(ctx context.Context) (model.ActivitySet, error)
	SignUp(ctx context.Context, activity, email string) (string, error)
	RemoveParticipant(ctx context.Context, activity, email string) (string, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the operator diagnostic channel.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHideDelay overrides how long status messages stay visible.
func WithHideDelay(d time.Duration) Option {
	return func(c *Controller) { c.hideDelay = d }
}

// WithAfterFunc replaces the timer used to hide status messages.
func WithAfterFunc(fn func(time.Duration, func())) Option {
	return func(c *Controller) {
		if fn != nil {
			c.afterFunc = fn
		}
	}
}

// WithRemoveAction sets the form action of rendered removal controls.
func WithRemoveAction(action string) Option {
	return func(c *Controller) { c.removeAction = action }
}

// Controller renders activity state into its targets and runs the user
// operations against the API. Targets are only mutated while mu is held;
// network calls happen outside it, so the last Load to finish wins.
type Controller struct {
	api          ActivityAPI
	logger       *slog.Logger
	hideDelay    time.Duration
	afterFunc    func(time.Duration, func())
	removeAction string
	handlers     map[EventKind]EventHandler

	mu       sync.Mutex
	list     *ListContainer
	selector *Selector
	form     *SignupForm
	message  *MessageArea
}

// NewController registers the rendering targets and event handlers. Call Init
// to perform the initial Load.
func NewController(api ActivityAPI, opts ...Option) *Controller {
	c := &Controller{
		api:          api,
		logger:       slog.Default(),
		hideDelay:    DefaultHideDelay,
		afterFunc:    func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		removeAction: DefaultRemoveAction,
		list:         &ListContainer{html: loadingNotice},
		selector:     &Selector{},
		form:         &SignupForm{},
		message:      &MessageArea{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.handlers = defaultHandlers()
	return c
}

// Init loads the initial activity state.
func (c *Controller) Init(ctx context.Context) {
	c.Load(ctx)
}

// Load fetches the activity set and re-renders the list and selector. On
// failure the list shows a static notice and the selector keeps its options.
func (c *Controller) Load(ctx context.Context) {
	set, err := c.api.ListActivities(ctx)
	if err != nil {
		c.logger.Error("error fetching activities", slog.Any("error", err))
		c.mu.Lock()
		c.list.SetHTML(loadFailedNotice)
		c.mu.Unlock()
		return
	}

	markup, options := RenderActivities(set, c.removeAction)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.list.SetHTML(markup)
	c.selector.Clear()
	for _, opt := range options {
		c.selector.Append(opt)
	}
}

// SignUp registers email for activity. Success resets the form and reloads;
// failures only report a message.
func (c *Controller) SignUp(ctx context.Context, email, activity string) {
	msg, err := c.api.SignUp(ctx, activity, email)
	if err == nil {
		c.showMessage(StatusSuccess, msg)
		c.mu.Lock()
		c.form.Reset()
		c.mu.Unlock()
		c.Load(ctx)
		return
	}
	if apiErr, ok := client.IsAPIError(err); ok {
		c.showMessage(StatusError, orFallback(apiErr.Detail, msgSignUpFallback))
		return
	}
	c.logger.Error("error signing up",
		slog.String("activity", activity),
		slog.Any("error", err),
	)
	c.showMessage(StatusError, msgSignUpFailed)
}

// RemoveParticipant withdraws email from activity and reloads on success.
func (c *Controller) RemoveParticipant(ctx context.Context, activity, email string) {
	if activity == "" || email == "" {
		c.showMessage(StatusError, msgRemoveUnresolved)
		return
	}

	msg, err := c.api.RemoveParticipant(ctx, activity, email)
	if err == nil {
		c.showMessage(StatusSuccess, msg)
		c.Load(ctx)
		return
	}
	if apiErr, ok := client.IsAPIError(err); ok {
		c.showMessage(StatusError, orFallback(apiErr.Detail, msgRemoveFallback))
		return
	}
	c.logger.Error("error removing participant",
		slog.String("activity", activity),
		slog.Any("error", err),
	)
	c.showMessage(StatusError, msgRemoveFailed)
}

// Snapshot copies the rendering targets.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		ListHTML: c.list.HTML(),
		Options:  c.selector.Options(),
		Form:     *c.form,
		Message:  c.message.Message(),
	}
}

// showMessage overwrites the visible message and schedules its hiding. Each
// call gets its own timer; none is ever cancelled.
func (c *Controller) showMessage(kind StatusKind, text string) {
	c.mu.Lock()
	c.message.Show(kind, text)
	c.mu.Unlock()
	c.afterFunc(c.hideDelay, c.hideMessage)
}

func (c *Controller) hideMessage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message.Hide()
}

func (c *Controller) fillForm(email, activity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Email = email
	c.form.Activity = activity
}

func orFallback(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}
