package forms

import "rh-portal/app/models"

// ApplyEmployeeDefaults fills the entity-specific defaults so every field of
// a new record resolves to a defined value.
func ApplyEmployeeDefaults(e *models.Employee) {
	if e.FunctionalStatus == "" {
		e.FunctionalStatus = "Ativo"
	}
}

// ValidateEmployee checks the required fields and the institutional email
// format. Runs once at submit, never per keystroke.
func ValidateEmployee(e *models.Employee) map[string]string {
	return checkStruct(e)
}

// EmployeePayload is the form's output contract: the full committed field
// set under the API's field names. Server-owned fields (id, timestamps,
// owned collections) are never part of it.
func EmployeePayload(e *models.Employee) map[string]string {
	fields := e.FieldMap()
	delete(fields, "id")
	delete(fields, "createdAt")
	delete(fields, "updatedAt")
	return fields
}
