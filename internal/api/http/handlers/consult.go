package handlers

import (
	"context"
	"github.com/gofiber/fiber/v2"
	"github.com/iamvkosarev/expert-chat/internal/api/http/presenter"
	"github.com/iamvkosarev/expert-chat/internal/model"
	"github.com/iamvkosarev/expert-chat/pkg/local"
	"net/http"
)

type ConsultUseCase interface {
	Consult(ctx context.Context, persona model.Persona, query string) model.Consultation
}

type ConsultHandler struct {
	uc ConsultUseCase
}

func NewConsultHandler(uc ConsultUseCase) *ConsultHandler { return &ConsultHandler{uc: uc} }

type consultRequest struct {
	Persona string `json:"persona" form:"persona"`
	Query   string `json:"query" form:"query"`
}

type consultResponse struct {
	RequestID string `json:"requestId"`
	Persona   string `json:"persona"`
	Outcome   string `json:"outcome"`
	Answer    string `json:"answer,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (h *ConsultHandler) Page(c *fiber.Ctx) error {
	return presenter.Page(c, local.ParseLanguage(c.Query("lang")))
}

func (h *ConsultHandler) Submit(c *fiber.Ctx) error {
	lang := local.ParseLanguage(c.Query("lang"))
	persona := model.ParsePersona(c.FormValue("persona"))
	consultation := h.uc.Consult(c.UserContext(), persona, c.FormValue("query"))
	return presenter.ConsultationPage(c, lang, consultation)
}

// Consult is the JSON flavour of Submit.
func (h *ConsultHandler) Consult(c *fiber.Ctx) error {
	var req consultRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request body")
	}
	lang := local.ParseLanguage(c.Query("lang"))
	consultation := h.uc.Consult(c.UserContext(), model.ParsePersona(req.Persona), req.Query)

	resp := consultResponse{
		RequestID: consultation.RequestID.String(),
		Persona:   string(consultation.Persona),
		Outcome:   consultation.Outcome.String(),
	}
	switch consultation.Outcome {
	case model.OutcomeAnswer:
		resp.Answer = consultation.Answer
		return presenter.JSON(c, http.StatusOK, resp)
	case model.OutcomeError:
		resp.Message = consultation.Error
		return presenter.JSON(c, http.StatusBadGateway, resp)
	default:
		resp.Message = presenter.TextEmptyWarning.Text(lang)
		return presenter.JSON(c, http.StatusBadRequest, resp)
	}
}

func (h *ConsultHandler) Personas(c *fiber.Ctx) error {
	personas := model.Personas()
	labels := make([]string, 0, len(personas))
	for _, persona := range personas {
		labels = append(labels, string(persona))
	}
	return presenter.JSON(c, http.StatusOK, labels)
}
