package models

// Document is an uploaded file attached to one employee. The file itself is
// stored and served upstream; FilePath is relative to the API server root.
type Document struct {
	ID           string `json:"id"`
	DocumentType string `json:"documentType" validate:"required"`
	Description  string `json:"description"`
	FilePath     string `json:"filePath"`
	UploadedAt   string `json:"uploadedAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
