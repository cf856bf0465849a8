package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"rh-portal/app/models"
)

// Pagination is the descriptor paginated list endpoints return alongside the
// collection.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Login authenticates against the upstream API and returns the bearer token
// plus the principal it issued.
func (c *Client) Login(ctx context.Context, login, password string) (string, *models.Principal, error) {
	payload := map[string]string{"login": login, "password": password}
	var resp struct {
		Token string `json:"token"`
		Data  struct {
			User *models.Principal `json:"user"`
		} `json:"data"`
	}
	if err := c.DoJSON(ctx, http.MethodPost, "/admin-users/login", payload, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.Data.User, nil
}

// ListEmployees fetches the full employee collection.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var resp struct {
		Data struct {
			Employees []models.Employee `json:"employees"`
		} `json:"data"`
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Employees, nil
}

// GetEmployee fetches one employee with its documents and annotations.
func (c *Client) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	var resp struct {
		Data struct {
			Employee *models.Employee `json:"employee"`
		} `json:"data"`
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/employees/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Employee, nil
}

// GetHistory fetches the server-derived change history of one employee.
func (c *Client) GetHistory(ctx context.Context, id string) ([]models.HistoryEntry, error) {
	var resp struct {
		Data struct {
			History []models.HistoryEntry `json:"history"`
		} `json:"data"`
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/employees/"+id+"/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.History, nil
}

func (c *Client) CreateEmployee(ctx context.Context, payload map[string]string) error {
	return c.DoJSON(ctx, http.MethodPost, "/employees", payload, nil)
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, payload map[string]string) error {
	return c.DoJSON(ctx, http.MethodPut, "/employees/"+id, payload, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.DoJSON(ctx, http.MethodDelete, "/employees/"+id, nil, nil)
}

// ExportEmployees proxies the export endpoint, carrying the active filters
// as a query string.
func (c *Client) ExportEmployees(ctx context.Context, format string, query url.Values) ([]byte, string, error) {
	return c.Download(ctx, "/employees/export/"+format, query)
}

// UploadDocuments sends one multipart request; the server creates one
// document per file.
func (c *Client) UploadDocuments(ctx context.Context, employeeID string, files []UploadFile, documentType, description string) error {
	fields := map[string]string{
		"documentType": documentType,
		"description":  description,
	}
	return c.Upload(ctx, "/employees/"+employeeID+"/documents", files, fields, nil)
}

func (c *Client) UpdateDocument(ctx context.Context, employeeID, docID string, payload map[string]string) error {
	return c.DoJSON(ctx, http.MethodPut, "/employees/"+employeeID+"/documents/"+docID, payload, nil)
}

func (c *Client) DeleteDocument(ctx context.Context, employeeID, docID string) error {
	return c.DoJSON(ctx, http.MethodDelete, "/employees/"+employeeID+"/documents/"+docID, nil, nil)
}

func (c *Client) CreateAnnotation(ctx context.Context, employeeID string, payload map[string]string) error {
	return c.DoJSON(ctx, http.MethodPost, "/employees/"+employeeID+"/annotations", payload, nil)
}

func (c *Client) UpdateAnnotation(ctx context.Context, employeeID, noteID string, payload map[string]string) error {
	return c.DoJSON(ctx, http.MethodPut, "/employees/"+employeeID+"/annotations/"+noteID, payload, nil)
}

func (c *Client) DeleteAnnotation(ctx context.Context, employeeID, noteID string) error {
	return c.DoJSON(ctx, http.MethodDelete, "/employees/"+employeeID+"/annotations/"+noteID, nil, nil)
}

// ListAdminUsers fetches the portal accounts. The pagination descriptor is
// present when the upstream paginates; the portal paginates locally either
// way.
func (c *Client) ListAdminUsers(ctx context.Context) ([]models.AdminUser, *Pagination, error) {
	var resp struct {
		Data struct {
			AdminUsers []models.AdminUser `json:"adminUsers"`
		} `json:"data"`
		Pagination *Pagination `json:"pagination"`
	}
	if err := c.DoJSON(ctx, http.MethodGet, "/admin-users", nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Data.AdminUsers, resp.Pagination, nil
}

func (c *Client) RegisterAdminUser(ctx context.Context, payload interface{}) error {
	return c.DoJSON(ctx, http.MethodPost, "/admin-users/register", payload, nil)
}

func (c *Client) UpdateAdminUser(ctx context.Context, id string, payload interface{}) error {
	return c.DoJSON(ctx, http.MethodPut, "/admin-users/"+id, payload, nil)
}

func (c *Client) DeleteAdminUser(ctx context.Context, id string) error {
	return c.DoJSON(ctx, http.MethodDelete, "/admin-users/"+id, nil, nil)
}
