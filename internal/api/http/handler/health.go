package handler

import "github.com/gofiber/fiber/v3"

// Health reports liveness only. It deliberately checks no collaborator so a
// down store or mail server never fails the probe.
func Health(c fiber.Ctx) error {
	return ok(c, fiber.Map{"status": "running"})
}
