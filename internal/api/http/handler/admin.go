package handler

import (
	"crypto/subtle"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Sid-4215/marketbloom-backend/config"
	"github.com/Sid-4215/marketbloom-backend/internal/service/submission"
)

// AdminHandler serves login plus the bearer-gated submission management
// endpoints.
type AdminHandler struct {
	auth config.AuthConfig
	svc  submission.Service
}

func NewAdminHandler(auth config.AuthConfig, svc submission.Service) *AdminHandler {
	return &AdminHandler{auth: auth, svc: svc}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. There is no session store: a correct
// password is answered with the admin secret itself, which doubles as the
// bearer token for subsequent admin calls.
func (h *AdminHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Password == "" {
		return badRequest(c, "password is required")
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.auth.AdminSecret)) != 1 {
		return unauthorized(c, "invalid password")
	}

	return ok(c, fiber.Map{"token": h.auth.AdminSecret})
}

// List handles GET /api/submissions, newest first.
func (h *AdminHandler) List(c fiber.Ctx) error {
	subs, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"data": subs})
}

// Delete handles DELETE /api/submissions/:id.
func (h *AdminHandler) Delete(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid submission id")
	}

	switch err := h.svc.Delete(c.Context(), id); {
	case err == nil:
		return ok(c, fiber.Map{"message": "submission deleted"})
	case errors.Is(err, submission.ErrNotFound):
		return notFound(c, "submission not found")
	default:
		return internalError(c)
	}
}
