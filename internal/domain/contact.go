package domain

import "context"

const (
	ContactSuccessMessage = "Your message has been sent successfully! I'll get back to you soon."
	ContactFailureMessage = "Failed to send your message. Please try again later."
)

// ContactRequest is the untrusted contact form payload as decoded from the wire.
// Fields stay dynamically typed until validation proves they are strings.
type ContactRequest struct {
	Name    interface{} `json:"name" validate:"present,is_string,min=2" swaggertype:"string" example:"Jo"`
	Email   interface{} `json:"email" validate:"present,is_string,email_address" swaggertype:"string" example:"jo@example.com"`
	Subject interface{} `json:"subject" validate:"present,is_string,min=5" swaggertype:"string" example:"Hello there"`
	Message interface{} `json:"message" validate:"present,is_string,min=10" swaggertype:"string" example:"This is a test message."`
}

// ContactMessage is a validated contact form submission. It is never stored.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewContactRequest builds a request from plain strings, as a typed client would send it
func NewContactRequest(name, email, subject, message string) *ContactRequest {
	return &ContactRequest{Name: name, Email: email, Subject: subject, Message: message}
}

// Fields returns the message as a field name to value map
func (m ContactMessage) Fields() map[string]string {
	return map[string]string{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
		"message": m.Message,
	}
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates and dispatches a contact form message, returning
	// the confirmation shown to the sender.
	SubmitContact(ctx context.Context, req *ContactRequest) (string, error)
}
