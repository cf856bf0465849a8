// Package filter derives filtered views from the collections fetched
// upstream. Filtering is pure and synchronous: the quick-search term and the
// per-field map are ANDed, each matched as a case-insensitive substring.
package filter

import (
	"strings"

	"rh-portal/app/models"
)

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// matchesQuick reports whether any field value contains the term. An empty
// term matches everything.
func matchesQuick(fields map[string]string, term string) bool {
	if term == "" {
		return true
	}
	for _, v := range fields {
		if containsFold(v, term) {
			return true
		}
	}
	return false
}

// matchesFields reports whether every non-empty constraint is contained in
// the corresponding field value.
func matchesFields(fields map[string]string, constraints map[string]string) bool {
	for name, want := range constraints {
		if want == "" {
			continue
		}
		if !containsFold(fields[name], want) {
			return false
		}
	}
	return true
}

// Employees applies quick search across all fields plus the per-field
// constraint map.
func Employees(src []models.Employee, quick string, byField map[string]string) []models.Employee {
	out := make([]models.Employee, 0, len(src))
	for _, e := range src {
		fields := e.FieldMap()
		if matchesQuick(fields, quick) && matchesFields(fields, byField) {
			out = append(out, e)
		}
	}
	return out
}

// Documents filters by type or description.
func Documents(src []models.Document, term string) []models.Document {
	if term == "" {
		return src
	}
	out := make([]models.Document, 0, len(src))
	for _, d := range src {
		if containsFold(d.DocumentType, term) || containsFold(d.Description, term) {
			out = append(out, d)
		}
	}
	return out
}

// Annotations filters by title, content or category.
func Annotations(src []models.Annotation, term string) []models.Annotation {
	if term == "" {
		return src
	}
	out := make([]models.Annotation, 0, len(src))
	for _, a := range src {
		if containsFold(a.Title, term) || containsFold(a.Content, term) || containsFold(a.Category, term) {
			out = append(out, a)
		}
	}
	return out
}

// Active reports whether any constraint is in effect.
func Active(quick string, byField map[string]string) bool {
	if quick != "" {
		return true
	}
	for _, v := range byField {
		if v != "" {
			return true
		}
	}
	return false
}
