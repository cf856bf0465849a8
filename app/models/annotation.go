package models

// AnnotationCategories are the accepted values for the annotation form
// category select.
var AnnotationCategories = []string{
	"Informativo",
	"Advertência",
	"Comunicação",
	"Elogio",
	"Outros",
}

// Annotation is a free-text note attached to one employee. Author and
// timestamps are set upstream; the client never sends them.
type Annotation struct {
	ID             string `json:"id"`
	Title          string `json:"title" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Content        string `json:"content" validate:"required"`
	AnnotationDate string `json:"annotationDate"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
	Author         string `json:"author,omitempty"`
}

// ValidCategory reports whether the category is one of the closed set.
func ValidCategory(category string) bool {
	for _, c := range AnnotationCategories {
		if c == category {
			return true
		}
	}
	return false
}
