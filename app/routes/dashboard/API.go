package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"rh-portal/app/authz"
	"rh-portal/app/forms"
	"rh-portal/app/models"
	"rh-portal/app/session"
	"rh-portal/app/utils"
)

// parseEmployee decodes and validates a submitted employee form. A non-empty
// error map blocks the submission before anything reaches the upstream API.
func parseEmployee(c *fiber.Ctx) (*models.Employee, map[string]string, error) {
	var emp models.Employee
	if err := c.BodyParser(&emp); err != nil {
		return nil, nil, err
	}
	forms.ApplyEmployeeDefaults(&emp)
	if errs := forms.ValidateEmployee(&emp); len(errs) > 0 {
		return nil, errs, nil
	}
	return &emp, nil, nil
}

func (h *Handler) CreateEmployeeAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	emp, errs, err := parseEmployee(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	if len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	err = authz.RunWithPermission(principal, authz.EmployeeCreate, func() error {
		return h.client(c).CreateEmployee(c.Context(), forms.EmployeePayload(emp))
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Funcionário cadastrado com sucesso!")
}

func (h *Handler) UpdateEmployeeAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	id := c.Params("id")
	emp, errs, err := parseEmployee(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	if len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	err = authz.RunWithPermission(principal, authz.EmployeeEdit, func() error {
		return h.client(c).UpdateEmployee(c.Context(), id, forms.EmployeePayload(emp))
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Funcionário atualizado com sucesso!")
}

func (h *Handler) DeleteEmployeeAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	id := c.Params("id")

	err := authz.RunWithPermission(principal, authz.EmployeeDelete, func() error {
		return h.client(c).DeleteEmployee(c.Context(), id)
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Funcionário excluído com sucesso.")
}
