// Package authz is the client-side authorization gate: a pure decision
// function over (principal, "entity:action") keys plus a guarded-run helper.
// The permission set is whatever login stored; it is never mutated here.
package authz

import (
	"errors"
	"log"
	"strings"

	"rh-portal/app/models"
)

// ErrPermissionDenied signals that a guarded action was not executed.
var ErrPermissionDenied = errors.New("permission denied")

// Keys gating the portal's mutating controls.
const (
	EmployeeCreate   = "employee:create"
	EmployeeEdit     = "employee:edit"
	EmployeeDelete   = "employee:delete"
	DocumentCreate   = "document:create"
	DocumentEdit     = "document:edit"
	DocumentDelete   = "document:delete"
	AnnotationCreate = "annotation:create"
	AnnotationEdit   = "annotation:edit"
	AnnotationDelete = "annotation:delete"
)

// HasPermission decides one (principal, key) pair.
//
// No principal resolves to deny, admin role to allow regardless of the
// stored matrix, and the rh role to the exact stored boolean, with false for
// malformed keys and unknown entities or actions.
func HasPermission(p *models.Principal, key string) bool {
	if p == nil {
		log.Printf("authz: denied %q (no principal)", key)
		return false
	}
	if p.Role == models.RoleAdmin {
		return true
	}
	entity, action, ok := strings.Cut(key, ":")
	if !ok || entity == "" || action == "" {
		log.Printf("authz: denied malformed key %q", key)
		return false
	}
	if p.Role == models.RoleRH && p.Permissions != nil {
		return p.Permissions.Entity(entity).Allows(action)
	}
	return false
}

// RunWithPermission invokes fn only when the principal holds the permission;
// otherwise it returns ErrPermissionDenied and fn never runs. Handlers turn
// the error into the access-denied notice.
func RunWithPermission(p *models.Principal, key string, fn func() error) error {
	if !HasPermission(p, key) {
		return ErrPermissionDenied
	}
	return fn()
}
