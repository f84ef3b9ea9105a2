package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/eventlog"
	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Mock Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockDispatcher) Name() string {
	return "mock"
}

type panickingDispatcher struct{}

func (panickingDispatcher) Dispatch(context.Context, email.ContactEmailData) error {
	panic("transport exploded")
}

func (panickingDispatcher) Name() string { return "panicking" }

func newContactUsecase(d email.Dispatcher, timeout time.Duration) (domain.ContactUsecase, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	events := eventlog.NewWithZap(zap.New(core), "portfolio-backend", "test")
	return usecase.NewContactUsecase(validation.New(), d, events, timeout), logs
}

func validRequest() *domain.ContactRequest {
	return domain.NewContactRequest("Jo", "jo@x.com", "Hello there", "This is a test message.")
}

func TestSubmitContactSuccess(t *testing.T) {
	d := new(MockDispatcher)
	d.On("Dispatch", mock.Anything, email.ContactEmailData{
		SenderName:  "Jo",
		SenderEmail: "jo@x.com",
		Subject:     "Hello there",
		Message:     "This is a test message.",
	}).Return(nil)
	uc, logs := newContactUsecase(d, time.Second)

	msg, err := uc.SubmitContact(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.ContactSuccessMessage, msg)
	d.AssertExpectations(t)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(eventlog.EventContactSubmitted), entries[0].Message)
}

func TestSubmitContactLogsPayloadVerbatim(t *testing.T) {
	d := new(MockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).Return(nil)
	uc, logs := newContactUsecase(d, time.Second)
	req := domain.NewContactRequest("  Jo  ", "jo@x.com", "Hello there ", "This is a test message.\n")

	_, err := uc.SubmitContact(context.Background(), req)
	require.NoError(t, err)

	payload := logs.All()[0].ContextMap()["payload"]
	assert.Equal(t, map[string]string{
		"name":    "  Jo  ",
		"email":   "jo@x.com",
		"subject": "Hello there ",
		"message": "This is a test message.\n",
	}, payload)
}

func TestSubmitContactIsNotDeduplicated(t *testing.T) {
	d := new(MockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).Return(nil)
	uc, logs := newContactUsecase(d, time.Second)

	first, err1 := uc.SubmitContact(context.Background(), validRequest())
	second, err2 := uc.SubmitContact(context.Background(), validRequest())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	d.AssertNumberOfCalls(t, "Dispatch", 2)
	assert.Len(t, logs.FilterMessage(string(eventlog.EventContactSubmitted)).All(), 2)
}

func TestSubmitContactValidation(t *testing.T) {
	d := new(MockDispatcher)
	uc, logs := newContactUsecase(d, time.Second)

	t.Run("Should report every violated field under its own key", func(t *testing.T) {
		req := domain.NewContactRequest("J", "bad", "Hi", "short")

		_, err := uc.SubmitContact(context.Background(), req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, map[string][]string{
			"name":    {"Name must be at least 2 characters"},
			"email":   {"Please enter a valid email address"},
			"subject": {"Subject must be at least 5 characters"},
			"message": {"Message must be at least 10 characters"},
		}, appErr.Fields)
	})

	t.Run("Should flag only the failing field", func(t *testing.T) {
		req := validRequest()
		req.Subject = "Hey"

		_, err := uc.SubmitContact(context.Background(), req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Len(t, appErr.Fields, 1)
		assert.NotEmpty(t, appErr.Fields["subject"])
	})

	t.Run("Should reject non-string and missing fields", func(t *testing.T) {
		req := &domain.ContactRequest{Name: float64(7), Email: "jo@x.com", Subject: "Hello there"}

		_, err := uc.SubmitContact(context.Background(), req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{"Expected string, received number"}, appErr.Fields["name"])
		assert.Equal(t, []string{"Required"}, appErr.Fields["message"])
	})

	t.Run("Should reject a nil request", func(t *testing.T) {
		_, err := uc.SubmitContact(context.Background(), nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})

	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	assert.Len(t, logs.FilterMessage(string(eventlog.EventContactValidationFailed)).All(), 3)
	assert.Empty(t, logs.FilterMessage(string(eventlog.EventContactSubmitted)).All())
}

func TestSubmitContactDispatchFailure(t *testing.T) {
	t.Run("Should hide transport errors behind the generic message", func(t *testing.T) {
		d := new(MockDispatcher)
		d.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("smtp: 421 service not available"))
		uc, logs := newContactUsecase(d, time.Second)

		_, err := uc.SubmitContact(context.Background(), validRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.Equal(t, domain.ContactFailureMessage, appErr.Message)
		assert.False(t, appErr.HasFields())

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		details := entries[0].ContextMap()["details"].(map[string]interface{})
		assert.Equal(t, "j***@x.com", details["sender"])
	})

	t.Run("Should convert a panicking dispatcher into a failure", func(t *testing.T) {
		uc, _ := newContactUsecase(panickingDispatcher{}, time.Second)

		_, err := uc.SubmitContact(context.Background(), validRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ContactFailureMessage, appErr.Message)
		assert.Contains(t, appErr.Err.Error(), "transport exploded")
	})

	t.Run("Should give up when the dispatch timeout elapses", func(t *testing.T) {
		slow := email.NewSimulatedDispatcher(email.NewComposer("Me", "a@b.co", "c@d.co"), time.Hour)
		uc, _ := newContactUsecase(slow, 20*time.Millisecond)

		_, err := uc.SubmitContact(context.Background(), validRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSubmitContactIgnoresCallerCancellation(t *testing.T) {
	fast := email.NewSimulatedDispatcher(email.NewComposer("Me", "a@b.co", "c@d.co"), 10*time.Millisecond)
	uc, _ := newContactUsecase(fast, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg, err := uc.SubmitContact(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.ContactSuccessMessage, msg)
}

func TestHealthCheckReportsDispatcher(t *testing.T) {
	h := usecase.NewHealthUsecase(new(MockDispatcher))

	assert.Equal(t, map[string]string{"status": "ok", "dispatcher": "mock"}, h.Check(context.Background()))
}
