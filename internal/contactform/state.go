// Package contactform holds the client side of the contact form: the form's
// UI state, pure functions that update it, and a controller that drives a
// submission through the contact endpoint.
package contactform

import (
	"errors"

	"portfolio-backend/pkg/contactclient"
)

// ErrSubmissionInProgress is returned when a submit is attempted while
// another one is still in flight.
var ErrSubmissionInProgress = errors.New("contactform: submission already in progress")

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Accent string

const (
	AccentBlue   Accent = "blue"
	AccentRed    Accent = "red"
	AccentPurple Accent = "purple"
	AccentGreen  Accent = "green"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationFailure NotificationKind = "failure"
)

const (
	successTitle       = "Message sent successfully!"
	successDescription = "Thank you for reaching out. I'll get back to you soon."
	failureTitle       = "Failed to send message"
	failureDescription = "Please try again later or contact me directly via email."
)

// Fields are the raw form inputs; nothing is validated client side
type Fields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Payload converts the form inputs into the endpoint's request body
func (f Fields) Payload() contactclient.Payload {
	return contactclient.Payload{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	}
}

// Notification is the toast shown after a submission
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
	// FieldErrors holds the endpoint's per-field violations, if any
	FieldErrors map[string][]string
}

// State is the complete UI state of the contact section
type State struct {
	Fields       Fields
	Submitting   bool
	Theme        Theme
	Accent       Accent
	Notification *Notification
}

// InitialState is an empty form in the dark theme with the red accent
func InitialState() State {
	return State{
		Theme:  ThemeDark,
		Accent: AccentRed,
	}
}

// UpdateField sets one input. Unknown fields leave the state unchanged.
func UpdateField(s State, field Field, value string) State {
	switch field {
	case FieldName:
		s.Fields.Name = value
	case FieldEmail:
		s.Fields.Email = value
	case FieldSubject:
		s.Fields.Subject = value
	case FieldMessage:
		s.Fields.Message = value
	}
	return s
}

func ToggleTheme(s State) State {
	if s.Theme == ThemeLight {
		s.Theme = ThemeDark
	} else {
		s.Theme = ThemeLight
	}
	return s
}

// SetAccent switches the accent color; unknown accents are ignored
func SetAccent(s State, a Accent) State {
	switch a {
	case AccentBlue, AccentRed, AccentPurple, AccentGreen:
		s.Accent = a
	}
	return s
}

// BeginSubmit marks a submission as in flight and clears the previous toast
func BeginSubmit(s State) (State, error) {
	if s.Submitting {
		return s, ErrSubmissionInProgress
	}
	s.Submitting = true
	s.Notification = nil
	return s, nil
}

// ApplyResult ends a submission with the endpoint's answer. Success clears the
// form; any failure keeps the inputs so the visitor can correct and resend.
func ApplyResult(s State, r *contactclient.Response) State {
	if r == nil || !r.Success {
		s = fail(s)
		if r != nil && len(r.Errors) > 0 {
			s.Notification.FieldErrors = r.Errors
		}
		return s
	}

	s.Submitting = false
	s.Fields = Fields{}
	s.Notification = &Notification{
		Kind:        NotificationSuccess,
		Title:       successTitle,
		Description: successDescription,
	}
	return s
}

// ApplyError ends a submission that never got a contract response
func ApplyError(s State, _ error) State {
	return fail(s)
}

func fail(s State) State {
	s.Submitting = false
	s.Notification = &Notification{
		Kind:        NotificationFailure,
		Title:       failureTitle,
		Description: failureDescription,
	}
	return s
}
