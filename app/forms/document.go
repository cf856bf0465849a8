package forms

// DocumentMetaInput edits a document's metadata independently of its file.
type DocumentMetaInput struct {
	DocumentType string `json:"documentType" validate:"required"`
	Description  string `json:"description"`
}

// ValidateDocumentMeta checks the metadata edit form.
func ValidateDocumentMeta(in *DocumentMetaInput) map[string]string {
	return checkStruct(in)
}

// DocumentMetaPayload is the committed output shape.
func DocumentMetaPayload(in *DocumentMetaInput) map[string]string {
	return map[string]string{
		"documentType": in.DocumentType,
		"description":  in.Description,
	}
}

// ValidateUpload checks the upload form: at least one file and a document
// type.
func ValidateUpload(fileCount int, documentType string) map[string]string {
	errs := map[string]string{}
	if fileCount == 0 {
		errs["files"] = "Selecione ao menos um arquivo"
	}
	if documentType == "" {
		errs["documentType"] = "Campo obrigatório"
	}
	return errs
}
