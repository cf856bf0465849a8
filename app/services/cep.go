// Package services holds the portal's auxiliary external lookups.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// ErrCEPNotFound means the postal code is well-formed but unknown.
var ErrCEPNotFound = errors.New("cep não encontrado")

var cepPattern = regexp.MustCompile(`^\d{8}$`)

// Address is what the lookup service returns for a postal code. It
// auto-fills the employee form's address fields.
type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CEPClient queries a ViaCEP-compatible address service.
type CEPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewCEPClient(baseURL string) *CEPClient {
	return &CEPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

// Lookup resolves a CEP (8 digits, punctuation tolerated) into an address.
func (c *CEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := strings.NewReplacer("-", "", ".", "", " ", "").Replace(cep)
	if !cepPattern.MatchString(digits) {
		return nil, fmt.Errorf("cep inválido: %q", cep)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+digits+"/json/", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serviço de CEP respondeu %d", resp.StatusCode)
	}

	var body struct {
		Logradouro string `json:"logradouro"`
		Bairro     string `json:"bairro"`
		Localidade string `json:"localidade"`
		UF         string `json:"uf"`
		Erro       bool   `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Erro {
		return nil, ErrCEPNotFound
	}

	return &Address{
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
