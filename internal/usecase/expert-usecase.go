package usecase

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/iamvkosarev/expert-chat/internal/model"
	"log"
	"strings"
)

type Requester interface {
	Ask(ctx context.Context, query, systemPrompt string) (string, error)
}

type ExpertUsecaseDeps struct {
	Requester Requester
}

type ExpertUsecase struct {
	ExpertUsecaseDeps
}

func NewExpertUsecase(deps ExpertUsecaseDeps) *ExpertUsecase {
	return &ExpertUsecase{
		ExpertUsecaseDeps: deps,
	}
}

// Consult is total: every failure ends up inside the returned Consultation.
func (e *ExpertUsecase) Consult(ctx context.Context, persona model.Persona, query string) model.Consultation {
	consultation := model.Consultation{
		RequestID: uuid.New(),
		Persona:   persona,
		Query:     query,
	}

	if strings.TrimSpace(query) == "" {
		consultation.Outcome = model.OutcomeWarning
		return consultation
	}

	answer, err := e.ask(ctx, persona, query)
	if err != nil {
		var cfgErr *model.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Printf("consultation %s: configuration: %v\n", consultation.RequestID, err)
		} else {
			log.Printf("consultation %s: failed to ask model: %v\n", consultation.RequestID, err)
		}
		consultation.Outcome = model.OutcomeError
		consultation.Error = err.Error()
		return consultation
	}

	consultation.Outcome = model.OutcomeAnswer
	consultation.Answer = answer
	return consultation
}

func (e *ExpertUsecase) ask(ctx context.Context, persona model.Persona, query string) (string, error) {
	return e.Requester.Ask(ctx, query, model.SystemPrompt(persona))
}
