package apiclient

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	t.Run("bearer token attached", func(t *testing.T) {
		c := New(srv.URL, "tok-123")
		require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/employees", nil, nil))
		assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
		assert.NotEmpty(t, got.Get("X-Request-ID"))
	})

	t.Run("anonymous without token", func(t *testing.T) {
		c := New(srv.URL, "")
		require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/employees", nil, nil))
		assert.Empty(t, got.Get("Authorization"))
	})

	t.Run("json payload sets content type", func(t *testing.T) {
		c := New(srv.URL, "tok")
		require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/employees", map[string]string{"a": "b"}, nil))
		assert.Equal(t, "application/json", got.Get("Content-Type"))
	})
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "tok")
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/employees", nil, nil))
	assert.Equal(t, "/employees", path)
}

func TestStatusMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unauthorized":
			w.WriteHeader(http.StatusUnauthorized)
		case "/conflict":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message": "Matrícula já cadastrada"}`))
		case "/error-key":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "Requisição malformada"}`))
		case "/opaque":
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("not json"))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()
	c := New(srv.URL, "tok")

	t.Run("401 is ErrUnauthorized", func(t *testing.T) {
		err := c.DoJSON(context.Background(), http.MethodGet, "/unauthorized", nil, nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("message field surfaces verbatim", func(t *testing.T) {
		err := c.DoJSON(context.Background(), http.MethodGet, "/conflict", nil, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Equal(t, "Matrícula já cadastrada", apiErr.Error())
	})

	t.Run("error field is the fallback", func(t *testing.T) {
		err := c.DoJSON(context.Background(), http.MethodGet, "/error-key", nil, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Requisição malformada", apiErr.Error())
	})

	t.Run("undecodable body keeps the status", func(t *testing.T) {
		err := c.DoJSON(context.Background(), http.MethodGet, "/opaque", nil, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
		assert.Contains(t, apiErr.Error(), "502")
	})
}

func TestLoginDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin-users/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"login": "maria", "password": "s3nha"}`, string(body))
		w.Write([]byte(`{
			"token": "jwt-abc",
			"data": {"user": {"id": "u1", "name": "Maria", "role": "rh",
				"permissions": {"employee": {"create": true}}}}
		}`))
	}))
	defer srv.Close()

	token, principal, err := New(srv.URL, "").Login(context.Background(), "maria", "s3nha")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
	require.NotNil(t, principal)
	assert.Equal(t, "Maria", principal.Name)
	require.NotNil(t, principal.Permissions)
	assert.True(t, principal.Permissions.Employee.Create)
}

func TestListEmployeesDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"employees": [
			{"id": "1", "fullName": "Ana Souza"},
			{"id": "2", "fullName": "Bruno Lima"}
		]}}`))
	}))
	defer srv.Close()

	list, err := New(srv.URL, "tok").ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana Souza", list[0].FullName)
}

func TestUploadDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/e1/documents", r.URL.Path)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		assert.NotEmpty(t, params["boundary"])

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "RG", r.FormValue("documentType"))
		assert.Equal(t, "frente", r.FormValue("description"))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "rg-frente.pdf", files[0].Filename)

		f, err := files[0].Open()
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "conteudo-1", string(content))

		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "tok").UploadDocuments(context.Background(), "e1", []UploadFile{
		{FieldName: "files", FileName: "rg-frente.pdf", Reader: strings.NewReader("conteudo-1")},
		{FieldName: "files", FileName: "rg-verso.pdf", Reader: strings.NewReader("conteudo-2")},
	}, "RG", "frente")
	require.NoError(t, err)
}

func TestExportEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/export/csv", r.URL.Path)
		assert.Equal(t, "ana", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("fullName\nAna Souza\n"))
	}))
	defer srv.Close()

	query := url.Values{}
	query.Set("search", "ana")
	data, contentType, err := New(srv.URL, "tok").ExportEmployees(context.Background(), "csv", query)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "fullName\nAna Souza\n", string(data))
}

func TestNetworkErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	err := New(srv.URL, "tok").DoJSON(context.Background(), http.MethodGet, "/employees", nil, nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
