package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/eventlog"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	validate   *validator.Validate
	dispatcher email.Dispatcher
	events     *eventlog.Logger
	timeout    time.Duration
}

// NewContactUsecase creates a new contact usecase. A zero timeout leaves dispatch unbounded.
func NewContactUsecase(validate *validator.Validate, dispatcher email.Dispatcher, events *eventlog.Logger, timeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		validate:   validate,
		dispatcher: dispatcher,
		events:     events,
		timeout:    timeout,
	}
}

// SubmitContact validates the contact request and dispatches it to the site owner.
// Every call writes exactly one event: contact_submitted, contact_validation_failed
// or contact_dispatch_failed.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) (string, error) {
	if req == nil {
		return "", apperror.BadRequest("Invalid request body")
	}

	if err := uc.validate.Struct(req); err != nil {
		fields := validation.FieldErrors(err)
		if fields == nil {
			return "", apperror.Internal(err)
		}
		uc.events.Log(ctx, eventlog.Event{
			Event:     eventlog.EventContactValidationFailed,
			RequestID: domain.RequestIDFrom(ctx),
			IP:        domain.ClientIPFrom(ctx),
			Details:   map[string]interface{}{"fields": sortedKeys(fields)},
		})
		return "", apperror.Validation(fields)
	}

	// Validation proved every field is a string
	msg := domain.ContactMessage{
		Name:    req.Name.(string),
		Email:   req.Email.(string),
		Subject: req.Subject.(string),
		Message: req.Message.(string),
	}

	start := time.Now()
	if err := uc.dispatch(ctx, msg); err != nil {
		uc.events.Log(ctx, eventlog.Event{
			Event:     eventlog.EventContactDispatchFailed,
			RequestID: domain.RequestIDFrom(ctx),
			IP:        domain.ClientIPFrom(ctx),
			Details: map[string]interface{}{
				"dispatcher": uc.dispatcher.Name(),
				"sender":     eventlog.MaskEmail(msg.Email),
				"error":      err.Error(),
			},
		})
		return "", apperror.New(http.StatusInternalServerError, domain.ContactFailureMessage, err)
	}

	uc.events.Log(ctx, eventlog.Event{
		Event:     eventlog.EventContactSubmitted,
		RequestID: domain.RequestIDFrom(ctx),
		IP:        domain.ClientIPFrom(ctx),
		Payload:   msg.Fields(),
		Details: map[string]interface{}{
			"dispatcher":  uc.dispatcher.Name(),
			"duration_ms": time.Since(start).Milliseconds(),
		},
	})

	return domain.ContactSuccessMessage, nil
}

// dispatch hands the message to the transport. It is detached from the caller's
// cancellation so a submission runs to completion, bounded only by uc.timeout.
func (uc *contactUsecase) dispatch(ctx context.Context, msg domain.ContactMessage) (err error) {
	ctx = context.WithoutCancel(ctx)
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dispatcher %s panicked: %v", uc.dispatcher.Name(), r)
		}
	}()

	return uc.dispatcher.Dispatch(ctx, email.ContactEmailData{
		SenderName:  msg.Name,
		SenderEmail: msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Message,
	})
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
