package forms

import "rh-portal/app/models"

// AdminUserInput is what the user form submits. Password is only required
// when creating; on edit a blank password means "no change".
type AdminUserInput struct {
	Name        string              `json:"name" validate:"required"`
	Login       string              `json:"login" validate:"required"`
	Email       string              `json:"email" validate:"required,email"`
	Password    string              `json:"password"`
	Role        string              `json:"role" validate:"required,oneof=admin rh"`
	IsActive    bool                `json:"isActive"`
	Permissions *models.Permissions `json:"permissions"`
}

// ValidateAdminUser runs the submit-time checks for the user form.
func ValidateAdminUser(in *AdminUserInput, editing bool) map[string]string {
	errs := checkStruct(in)
	if !editing && in.Password == "" {
		errs["password"] = "Campo obrigatório"
	}
	return errs
}

// AdminUserPayload shapes the upstream payload. A blank password on edit is
// dropped so the server distinguishes "no change" from "clear"; admin
// payloads never carry a permission matrix.
func AdminUserPayload(in *AdminUserInput, editing bool) map[string]interface{} {
	payload := map[string]interface{}{
		"name":     in.Name,
		"login":    in.Login,
		"email":    in.Email,
		"role":     in.Role,
		"isActive": in.IsActive,
	}
	if in.Password != "" || !editing {
		payload["password"] = in.Password
	}
	if in.Role != models.RoleAdmin {
		perms := in.Permissions
		if perms == nil {
			perms = &models.Permissions{}
		}
		payload["permissions"] = perms
	}
	return payload
}
