// Package utils centralizes how handlers translate failures into responses,
// following the portal's error taxonomy: authentication failures tear the
// session down, permission denials never reach the upstream API, validation
// failures carry a per-field map, and upstream business errors surface their
// message verbatim.
package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"rh-portal/app/apiclient"
	"rh-portal/app/authz"
	"rh-portal/app/session"
)

// APIFail converts an error from a JSON endpoint into its response.
func APIFail(c *fiber.Ctx, sessions *session.Store, err error) error {
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		sessions.Logout(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":  "unauthorized",
			"error": "Sessão expirada. Faça login novamente.",
		})
	case errors.Is(err, authz.ErrPermissionDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":  "permission_denied",
			"error": "Você não tem permissão para executar esta ação.",
		})
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status >= 500 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"code": "api_error", "error": apiErr.Error()})
	}

	log.Printf("upstream request failed: %v", err)
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"code":  "network_error",
		"error": "Falha de comunicação com o servidor. Tente novamente.",
	})
}

// ValidationFail answers a blocked submission with the per-field error map.
// Entered values stay client-side, so the form remains recoverable.
func ValidationFail(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":   "validation_error",
		"errors": errs,
	})
}

// Success is the uniform mutation reply; page scripts reload on it, which
// re-reads the authoritative server state.
func Success(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}
