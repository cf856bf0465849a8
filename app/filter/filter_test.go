package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rh-portal/app/models"
)

func sampleEmployees() []models.Employee {
	return []models.Employee{
		{ID: "1", FullName: "Ana Souza", Department: "Financeiro", Position: "Analista", AddressCity: "Recife"},
		{ID: "2", FullName: "Bruno Lima", Department: "TI", Position: "Desenvolvedor", AddressCity: "Salvador"},
		{ID: "3", FullName: "Mariana Castro", Department: "Financeiro", Position: "Gerente", AddressCity: "Recife"},
	}
}

func names(list []models.Employee) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.FullName)
	}
	return out
}

func TestEmployeesQuickSearch(t *testing.T) {
	src := sampleEmployees()

	tests := []struct {
		name  string
		quick string
		want  []string
	}{
		{"empty term keeps all", "", []string{"Ana Souza", "Bruno Lima", "Mariana Castro"}},
		{"matches name case-insensitively", "ana", []string{"Ana Souza", "Mariana Castro"}},
		{"matches any field", "salvador", []string{"Bruno Lima"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Employees(src, tt.quick, nil)))
		})
	}
}

func TestEmployeesFieldConstraintsAreANDed(t *testing.T) {
	src := sampleEmployees()

	got := Employees(src, "", map[string]string{
		"department":  "financeiro",
		"addressCity": "recife",
	})
	assert.Equal(t, []string{"Ana Souza", "Mariana Castro"}, names(got))

	got = Employees(src, "", map[string]string{
		"department":  "financeiro",
		"addressCity": "salvador",
	})
	assert.Empty(t, got)
}

func TestEmployeesQuickAndFieldsCompose(t *testing.T) {
	src := sampleEmployees()

	got := Employees(src, "recife", map[string]string{"position": "gerente"})
	assert.Equal(t, []string{"Mariana Castro"}, names(got))
}

func TestEmployeesEmptyConstraintsIgnored(t *testing.T) {
	src := sampleEmployees()

	got := Employees(src, "", map[string]string{"department": ""})
	assert.Len(t, got, len(src))
}

func TestDocuments(t *testing.T) {
	docs := []models.Document{
		{ID: "d1", DocumentType: "RG", Description: "frente e verso"},
		{ID: "d2", DocumentType: "Contrato", Description: "contrato de trabalho"},
	}

	assert.Len(t, Documents(docs, ""), 2)
	assert.Equal(t, "d2", Documents(docs, "CONTRATO")[0].ID)
	assert.Equal(t, "d1", Documents(docs, "verso")[0].ID)
	assert.Empty(t, Documents(docs, "cpf"))
}

func TestAnnotations(t *testing.T) {
	notes := []models.Annotation{
		{ID: "n1", Title: "Promoção", Category: "Elogio", Content: "ótimo desempenho"},
		{ID: "n2", Title: "Atraso", Category: "Advertência", Content: "chegou atrasado"},
	}

	assert.Len(t, Annotations(notes, ""), 2)
	assert.Equal(t, "n1", Annotations(notes, "elogio")[0].ID)
	assert.Equal(t, "n2", Annotations(notes, "atrasado")[0].ID)
	assert.Empty(t, Annotations(notes, "férias"))
}

func TestActive(t *testing.T) {
	assert.False(t, Active("", nil))
	assert.False(t, Active("", map[string]string{"department": ""}))
	assert.True(t, Active("ana", nil))
	assert.True(t, Active("", map[string]string{"department": "TI"}))
}
