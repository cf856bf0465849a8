package models

const (
	RoleAdmin = "admin"
	RoleRH    = "rh"
)

// ActionSet holds the allowed actions for one entity.
type ActionSet struct {
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// Permissions is the granular permission matrix carried by rh-role users.
// Admin users have no matrix; their access is implied by the role.
type Permissions struct {
	Employee   ActionSet `json:"employee"`
	Document   ActionSet `json:"document"`
	Annotation ActionSet `json:"annotation"`
}

// Entity returns the action set for an entity name, false setting for
// unknown entities.
func (p *Permissions) Entity(name string) ActionSet {
	if p == nil {
		return ActionSet{}
	}
	switch name {
	case "employee":
		return p.Employee
	case "document":
		return p.Document
	case "annotation":
		return p.Annotation
	}
	return ActionSet{}
}

// Allows reports the stored boolean for an action name.
func (a ActionSet) Allows(action string) bool {
	switch action {
	case "create":
		return a.Create
	case "edit":
		return a.Edit
	case "delete":
		return a.Delete
	}
	return false
}

// Principal is the authenticated user held for the session, as returned by
// the upstream login endpoint.
type Principal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Login       string       `json:"login"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
