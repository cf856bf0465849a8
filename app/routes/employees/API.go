package employees

import (
	"github.com/gofiber/fiber/v2"

	"rh-portal/app/apiclient"
	"rh-portal/app/authz"
	"rh-portal/app/forms"
	"rh-portal/app/session"
	"rh-portal/app/utils"
)

// UploadDocumentsAPI receives the multipart upload form and forwards it
// upstream; the server creates one document per file.
func (h *Handler) UploadDocumentsAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	employeeID := c.Params("id")

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}

	files := form.File["files"]
	documentType := formValue(form.Value, "documentType")
	description := formValue(form.Value, "description")
	if errs := forms.ValidateUpload(len(files), documentType); len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	uploads := make([]apiclient.UploadFile, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Falha ao ler o arquivo " + fh.Filename})
		}
		defer f.Close()
		uploads = append(uploads, apiclient.UploadFile{
			FieldName: "files",
			FileName:  fh.Filename,
			Reader:    f,
		})
	}

	err = authz.RunWithPermission(principal, authz.DocumentCreate, func() error {
		return h.client(c).UploadDocuments(c.Context(), employeeID, uploads, documentType, description)
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Documentos enviados com sucesso!")
}

func (h *Handler) UpdateDocumentAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	employeeID := c.Params("id")
	docID := c.Params("docId")

	var in forms.DocumentMetaInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	if errs := forms.ValidateDocumentMeta(&in); len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	err := authz.RunWithPermission(principal, authz.DocumentEdit, func() error {
		return h.client(c).UpdateDocument(c.Context(), employeeID, docID, forms.DocumentMetaPayload(&in))
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Metadados do documento atualizados com sucesso!")
}

func (h *Handler) DeleteDocumentAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	employeeID := c.Params("id")
	docID := c.Params("docId")

	err := authz.RunWithPermission(principal, authz.DocumentDelete, func() error {
		return h.client(c).DeleteDocument(c.Context(), employeeID, docID)
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Documento excluído com sucesso.")
}

func (h *Handler) CreateAnnotationAPI(c *fiber.Ctx) error {
	return h.saveAnnotation(c, authz.AnnotationCreate, "")
}

func (h *Handler) UpdateAnnotationAPI(c *fiber.Ctx) error {
	return h.saveAnnotation(c, authz.AnnotationEdit, c.Params("noteId"))
}

// saveAnnotation shares the create/edit path: same form, same validation,
// different endpoint and permission.
func (h *Handler) saveAnnotation(c *fiber.Ctx, permission, noteID string) error {
	principal := session.Principal(c)
	employeeID := c.Params("id")

	var in forms.AnnotationInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	forms.ApplyAnnotationDefaults(&in)
	if errs := forms.ValidateAnnotation(&in); len(errs) > 0 {
		return utils.ValidationFail(c, errs)
	}

	err := authz.RunWithPermission(principal, permission, func() error {
		if noteID == "" {
			return h.client(c).CreateAnnotation(c.Context(), employeeID, forms.AnnotationPayload(&in))
		}
		return h.client(c).UpdateAnnotation(c.Context(), employeeID, noteID, forms.AnnotationPayload(&in))
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	if noteID == "" {
		return utils.Success(c, "Anotação criada com sucesso!")
	}
	return utils.Success(c, "Anotação atualizada com sucesso!")
}

func (h *Handler) DeleteAnnotationAPI(c *fiber.Ctx) error {
	principal := session.Principal(c)
	employeeID := c.Params("id")
	noteID := c.Params("noteId")

	err := authz.RunWithPermission(principal, authz.AnnotationDelete, func() error {
		return h.client(c).DeleteAnnotation(c.Context(), employeeID, noteID)
	})
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	return utils.Success(c, "Anotação excluída com sucesso.")
}

func formValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
