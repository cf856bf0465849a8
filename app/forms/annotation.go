package forms

import "rh-portal/app/models"

// AnnotationInput is the annotation form's submission. Author and
// timestamps belong to the server and never appear here.
type AnnotationInput struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// ApplyAnnotationDefaults keeps the category select controlled.
func ApplyAnnotationDefaults(in *AnnotationInput) {
	if in.Category == "" {
		in.Category = models.AnnotationCategories[0]
	}
}

// ValidateAnnotation checks required fields and the closed category set.
func ValidateAnnotation(in *AnnotationInput) map[string]string {
	errs := checkStruct(in)
	if _, bad := errs["category"]; !bad && !models.ValidCategory(in.Category) {
		errs["category"] = "Valor inválido"
	}
	return errs
}

// AnnotationPayload is the committed output shape.
func AnnotationPayload(in *AnnotationInput) map[string]string {
	return map[string]string{
		"title":    in.Title,
		"category": in.Category,
		"content":  in.Content,
	}
}
