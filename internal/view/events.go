package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEvent is returned by Dispatch for an unregistered event kind.
var ErrUnknownEvent = errors.New("unknown event kind")

// EventKind names a user interaction the controller reacts to.
type EventKind string

const (
	// EventLoad re-fetches and re-renders the activity state.
	EventLoad EventKind = "load"
	// EventSubmit is a sign-up form submission.
	EventSubmit EventKind = "submit"
	// EventListClick is a click inside the rendered activity list.
	EventListClick EventKind = "list-click"
)

// Form field names of the sign-up form and the removal control data keys.
const (
	FieldEmail    = "email"
	FieldActivity = "activity"
)

// Event is the payload of one interaction.
type Event struct {
	Kind EventKind
	// Fields holds submitted form values for EventSubmit.
	Fields map[string]string
	// Target is the clicked element for EventListClick.
	Target *Element
}

// EventHandler reacts to one event on a controller.
type EventHandler func(ctx context.Context, c *Controller, ev Event)

// Element is the part of a rendered element an event handler can inspect.
type Element struct {
	Class  string
	Data   map[string]string
	Parent *Element
}

// HasClass reports whether the element's class list contains name.
func (e *Element) HasClass(name string) bool {
	if e == nil {
		return false
	}
	for _, class := range strings.Fields(e.Class) {
		if class == name {
			return true
		}
	}
	return false
}

// Closest returns the element itself or its nearest ancestor carrying class.
func (e *Element) Closest(class string) *Element {
	for el := e; el != nil; el = el.Parent {
		if el.HasClass(class) {
			return el
		}
	}
	return nil
}

// NewRemoveControl builds the element chain of a participant's removal
// control inside the participant list.
func NewRemoveControl(activity, email string) *Element {
	list := &Element{Class: "participant-list"}
	item := &Element{Class: "h-card", Parent: list}
	form := &Element{Class: "participant-remove-form", Parent: item}
	return &Element{
		Class:  RemoveControlClass,
		Data:   map[string]string{FieldActivity: activity, FieldEmail: email},
		Parent: form,
	}
}

// Dispatch routes ev to the handler registered for its kind.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	handler, ok := c.handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("dispatch %q: %w", ev.Kind, ErrUnknownEvent)
	}
	handler(ctx, c, ev)
	return nil
}

func defaultHandlers() map[EventKind]EventHandler {
	return map[EventKind]EventHandler{
		EventLoad:      onLoad,
		EventSubmit:    onSubmit,
		EventListClick: onListClick,
	}
}

func onLoad(ctx context.Context, c *Controller, _ Event) {
	c.Load(ctx)
}

func onSubmit(ctx context.Context, c *Controller, ev Event) {
	email := ev.Fields[FieldEmail]
	activity := ev.Fields[FieldActivity]
	c.fillForm(email, activity)
	c.SignUp(ctx, email, activity)
}

// onListClick ignores clicks that are not inside a removal control.
func onListClick(ctx context.Context, c *Controller, ev Event) {
	control := ev.Target.Closest(RemoveControlClass)
	if control == nil {
		return
	}
	c.RemoveParticipant(ctx, control.Data[FieldActivity], control.Data[FieldEmail])
}
