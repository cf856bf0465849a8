package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rh-portal/app/models"
)

func validUserInput() *AdminUserInput {
	return &AdminUserInput{
		Name:     "Carlos Pereira",
		Login:    "carlos",
		Email:    "carlos@orgao.gov.br",
		Password: "s3nha-forte",
		Role:     models.RoleRH,
		IsActive: true,
		Permissions: &models.Permissions{
			Employee: models.ActionSet{Create: true, Edit: true},
		},
	}
}

func TestValidateAdminUser(t *testing.T) {
	t.Run("valid create", func(t *testing.T) {
		assert.Empty(t, ValidateAdminUser(validUserInput(), false))
	})

	t.Run("password required on create", func(t *testing.T) {
		in := validUserInput()
		in.Password = ""
		errs := ValidateAdminUser(in, false)
		assert.Equal(t, "Campo obrigatório", errs["password"])
	})

	t.Run("blank password allowed on edit", func(t *testing.T) {
		in := validUserInput()
		in.Password = ""
		assert.Empty(t, ValidateAdminUser(in, true))
	})

	t.Run("required fields", func(t *testing.T) {
		errs := ValidateAdminUser(&AdminUserInput{}, false)
		for _, field := range []string{"name", "login", "email", "role", "password"} {
			assert.Equal(t, "Campo obrigatório", errs[field], field)
		}
	})

	t.Run("email format", func(t *testing.T) {
		in := validUserInput()
		in.Email = "carlos"
		errs := ValidateAdminUser(in, false)
		assert.Equal(t, "E-mail inválido", errs["email"])
	})

	t.Run("role outside the closed set", func(t *testing.T) {
		in := validUserInput()
		in.Role = "superuser"
		errs := ValidateAdminUser(in, false)
		assert.Equal(t, "Valor inválido", errs["role"])
	})
}

func TestAdminUserPayload(t *testing.T) {
	t.Run("blank password dropped on edit", func(t *testing.T) {
		in := validUserInput()
		in.Password = ""
		payload := AdminUserPayload(in, true)
		assert.NotContains(t, payload, "password")
	})

	t.Run("password kept when changed on edit", func(t *testing.T) {
		in := validUserInput()
		payload := AdminUserPayload(in, true)
		assert.Equal(t, "s3nha-forte", payload["password"])
	})

	t.Run("password always present on create", func(t *testing.T) {
		in := validUserInput()
		payload := AdminUserPayload(in, false)
		assert.Equal(t, "s3nha-forte", payload["password"])
	})

	t.Run("admin payload carries no matrix", func(t *testing.T) {
		in := validUserInput()
		in.Role = models.RoleAdmin
		payload := AdminUserPayload(in, false)
		assert.NotContains(t, payload, "permissions")
	})

	t.Run("rh payload carries the matrix", func(t *testing.T) {
		in := validUserInput()
		payload := AdminUserPayload(in, false)
		perms, ok := payload["permissions"].(*models.Permissions)
		require.True(t, ok)
		assert.True(t, perms.Employee.Create)
		assert.False(t, perms.Document.Create)
	})

	t.Run("rh without matrix defaults to all-false", func(t *testing.T) {
		in := validUserInput()
		in.Permissions = nil
		payload := AdminUserPayload(in, false)
		perms, ok := payload["permissions"].(*models.Permissions)
		require.True(t, ok)
		assert.Equal(t, &models.Permissions{}, perms)
	})
}
