package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rh-portal/app/models"
)

func validEmployee() *models.Employee {
	return &models.Employee{
		FullName:            "Ana Souza",
		RegistrationNumber:  "2023001",
		InstitutionalLink:   "Efetivo",
		Position:            "Analista",
		Department:          "Financeiro",
		AdmissionDate:       "2023-02-01",
		CPF:                 "123.456.789-00",
		RG:                  "1234567",
		AddressStreet:       "Rua das Flores",
		AddressNumber:       "100",
		AddressNeighborhood: "Centro",
		AddressCity:         "Recife",
		AddressState:        "PE",
		AddressZipCode:      "50000-000",
		MobilePhone1:        "(81) 99999-0000",
		InstitutionalEmail:  "ana.souza@orgao.gov.br",
		FunctionalStatus:    "Ativo",
	}
}

func TestApplyEmployeeDefaults(t *testing.T) {
	e := &models.Employee{}
	ApplyEmployeeDefaults(e)
	assert.Equal(t, "Ativo", e.FunctionalStatus)

	e.FunctionalStatus = "Férias"
	ApplyEmployeeDefaults(e)
	assert.Equal(t, "Férias", e.FunctionalStatus)
}

func TestValidateEmployeeValid(t *testing.T) {
	assert.Empty(t, ValidateEmployee(validEmployee()))
}

func TestValidateEmployeeRequiredFields(t *testing.T) {
	e := &models.Employee{}
	ApplyEmployeeDefaults(e)
	errs := ValidateEmployee(e)

	// Error keys are the API field names, matching the form inputs.
	for _, field := range []string{
		"fullName", "registrationNumber", "institutionalLink", "position",
		"department", "admissionDate", "cpf", "rg", "addressStreet",
		"addressNumber", "addressNeighborhood", "addressCity", "addressState",
		"addressZipCode", "mobilePhone1", "institutionalEmail",
	} {
		assert.Equal(t, "Campo obrigatório", errs[field], field)
	}
	assert.NotContains(t, errs, "role")
	assert.NotContains(t, errs, "personalEmail")
}

func TestValidateEmployeeEmailFormat(t *testing.T) {
	e := validEmployee()
	e.InstitutionalEmail = "not-an-email"
	errs := ValidateEmployee(e)
	assert.Equal(t, "E-mail inválido", errs["institutionalEmail"])
}

func TestEmployeePayloadOmitsServerFields(t *testing.T) {
	e := validEmployee()
	e.ID = "emp-1"
	e.CreatedAt = "2023-02-01T00:00:00Z"
	e.UpdatedAt = "2023-03-01T00:00:00Z"

	payload := EmployeePayload(e)
	require.NotEmpty(t, payload)
	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "createdAt")
	assert.NotContains(t, payload, "updatedAt")
	assert.Equal(t, "Ana Souza", payload["fullName"])
	assert.Equal(t, "Ativo", payload["functionalStatus"])

	// Blank optional fields are still committed explicitly.
	v, ok := payload["mobilePhone2"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}
