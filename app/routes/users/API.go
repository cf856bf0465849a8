package users

import (
	"github.com/gofiber/fiber/v2"

	"rh-portal/app/forms"
	"rh-portal/app/session"
	"rh-portal/app/utils"
)

func (h *Handler) CreateUserAPI(c *fiber.Ctx) error {
	var in forms.AdminUserInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	if errs := forms.ValidateAdminUser(&in, false); len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	if err := h.client(c).RegisterAdminUser(c.Context(), forms.AdminUserPayload(&in, false)); err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Usuário criado com sucesso!")
}

func (h *Handler) UpdateUserAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	var in forms.AdminUserInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	if errs := forms.ValidateAdminUser(&in, true); len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	if err := h.client(c).UpdateAdminUser(c.Context(), id, forms.AdminUserPayload(&in, true)); err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Usuário atualizado com sucesso!")
}

func (h *Handler) DeleteUserAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	// The UI hides the control, but self-deletion is also refused here.
	if principal := session.Principal(c); principal != nil && principal.ID == id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Você não pode excluir a própria conta."})
	}

	if err := h.client(c).DeleteAdminUser(c.Context(), id); err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Usuário excluído com sucesso.")
}
