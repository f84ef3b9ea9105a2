package usecase

import (
	"context"

	"portfolio-backend/pkg/email"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	dispatcher email.Dispatcher
}

func NewHealthUsecase(dispatcher email.Dispatcher) HealthUsecase {
	return &healthUsecase{dispatcher: dispatcher}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":     "ok",
		"dispatcher": u.dispatcher.Name(),
	}
}
