package view

// StatusKind classifies a status message.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// StatusMessage is the single transient notice shown after an operation.
type StatusMessage struct {
	Kind    StatusKind
	Text    string
	Visible bool
}

// SelectOption is one entry of the activity selector.
type SelectOption struct {
	Value string
	Label string
}

// ListContainer holds the rendered activity list markup.
type ListContainer struct {
	html string
}

// SetHTML replaces the container content.
func (l *ListContainer) SetHTML(markup string) { l.html = markup }

// HTML returns the current markup.
func (l *ListContainer) HTML() string { return l.html }

// Selector is the activity drop-down of the sign-up form.
type Selector struct {
	options []SelectOption
}

// Clear drops every option.
func (s *Selector) Clear() { s.options = nil }

// Append adds an option at the end.
func (s *Selector) Append(opt SelectOption) { s.options = append(s.options, opt) }

// Options returns a copy of the current options.
func (s *Selector) Options() []SelectOption {
	out := make([]SelectOption, len(s.options))
	copy(out, s.options)
	return out
}

// SignupForm carries the values of the sign-up form fields.
type SignupForm struct {
	Email    string
	Activity string
}

// Reset clears both fields.
func (f *SignupForm) Reset() { *f = SignupForm{} }

// MessageArea displays one StatusMessage at a time.
type MessageArea struct {
	msg StatusMessage
}

// Show replaces the current message and makes it visible.
func (m *MessageArea) Show(kind StatusKind, text string) {
	m.msg = StatusMessage{Kind: kind, Text: text, Visible: true}
}

// Hide makes the message invisible. Hiding twice is a no-op.
func (m *MessageArea) Hide() { m.msg.Visible = false }

// Message returns the current message.
func (m *MessageArea) Message() StatusMessage { return m.msg }

// Snapshot is a copy of every rendering target, taken for page rendering.
type Snapshot struct {
	ListHTML string
	Options  []SelectOption
	Form     SignupForm
	Message  StatusMessage
}
