package models

// AdminUser is an account able to log into the portal. Password is
// write-only: the API never returns it and edit payloads omit it when blank.
type AdminUser struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Login       string       `json:"login" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	Role        string       `json:"role" validate:"required,oneof=admin rh"`
	IsActive    bool         `json:"isActive"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

// PermissionSummary lists the entities the user has at least one action on.
// Used by the management table's permissions column.
func (u *AdminUser) PermissionSummary() []string {
	if u.Permissions == nil {
		return nil
	}
	var summary []string
	if s := u.Permissions.Employee; s.Create || s.Edit || s.Delete {
		summary = append(summary, "Funcionários")
	}
	if s := u.Permissions.Document; s.Create || s.Edit || s.Delete {
		summary = append(summary, "Documentos")
	}
	if s := u.Permissions.Annotation; s.Create || s.Edit || s.Delete {
		summary = append(summary, "Anotações")
	}
	return summary
}
