package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Sid-4215/marketbloom-backend/internal/service/submission"
)

type ContactHandler struct {
	svc submission.Service
}

func NewContactHandler(svc submission.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name     string `json:"name"`
	Business string `json:"business"`
	Service  string `json:"service"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// Submit handles POST /api/contact. name, business, service, and phone are
// required; message is optional.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	sub, err := h.svc.Create(c.Context(), submission.CreateRequest{
		Name:     req.Name,
		Business: req.Business,
		Service:  req.Service,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		if errors.Is(err, submission.ErrValidation) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return created(c, fiber.Map{
		"message":      "submission received",
		"submissionId": sub.ID,
	})
}
