package contactform

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/contactclient"
)

// LocalSubmitter calls the contact usecase in process, for pages rendered by
// the same binary that handles the form.
type LocalSubmitter struct {
	contactUC domain.ContactUsecase
}

func NewLocalSubmitter(contactUC domain.ContactUsecase) *LocalSubmitter {
	return &LocalSubmitter{contactUC: contactUC}
}

// Submit maps usecase results onto the same response contract the HTTP endpoint uses
func (l *LocalSubmitter) Submit(ctx context.Context, p contactclient.Payload) (*contactclient.Response, error) {
	req := domain.NewContactRequest(p.Name, p.Email, p.Subject, p.Message)

	message, err := l.contactUC.SubmitContact(ctx, req)
	if err == nil {
		return &contactclient.Response{Success: true, Message: message}, nil
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return &contactclient.Response{Success: false, Message: domain.ContactFailureMessage}, nil
	}
	if appErr.HasFields() {
		return &contactclient.Response{Success: false, Errors: appErr.Fields}, nil
	}
	return &contactclient.Response{Success: false, Message: appErr.Message}, nil
}
