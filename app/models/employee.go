package models

// Employee mirrors the upstream employee record. The API is the source of
// truth; this type only carries it between the adapter and the views.
type Employee struct {
	ID                    string `json:"id"`
	FullName              string `json:"fullName" validate:"required"`
	RegistrationNumber    string `json:"registrationNumber" validate:"required"`
	InstitutionalLink     string `json:"institutionalLink" validate:"required"`
	Position              string `json:"position" validate:"required"`
	Role                  string `json:"role"`
	Department            string `json:"department" validate:"required"`
	CurrentAssignment     string `json:"currentAssignment"`
	AdmissionDate         string `json:"admissionDate" validate:"required"`
	EducationLevel        string `json:"educationLevel"`
	EducationArea         string `json:"educationArea"`
	DateOfBirth           string `json:"dateOfBirth"`
	Gender                string `json:"gender"`
	MaritalStatus         string `json:"maritalStatus"`
	HasChildren           string `json:"hasChildren"`
	NumberOfChildren      string `json:"numberOfChildren"`
	CPF                   string `json:"cpf" validate:"required"`
	RG                    string `json:"rg" validate:"required"`
	RGIssuer              string `json:"rgIssuer"`
	AddressStreet         string `json:"addressStreet" validate:"required"`
	AddressNumber         string `json:"addressNumber" validate:"required"`
	AddressComplement     string `json:"addressComplement"`
	AddressNeighborhood   string `json:"addressNeighborhood" validate:"required"`
	AddressCity           string `json:"addressCity" validate:"required"`
	AddressState          string `json:"addressState" validate:"required"`
	AddressZipCode        string `json:"addressZipCode" validate:"required"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	MobilePhone1          string `json:"mobilePhone1" validate:"required"`
	MobilePhone2          string `json:"mobilePhone2"`
	InstitutionalEmail    string `json:"institutionalEmail" validate:"required,email"`
	PersonalEmail         string `json:"personalEmail"`
	FunctionalStatus      string `json:"functionalStatus" validate:"required"`
	GeneralObservations   string `json:"generalObservations"`
	Comorbidity           string `json:"comorbidity"`
	Disability            string `json:"disability"`
	BloodType             string `json:"bloodType"`
	CreatedAt             string `json:"createdAt,omitempty"`
	UpdatedAt             string `json:"updatedAt,omitempty"`

	Documents   []Document   `json:"documents,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// FunctionalStatuses are the values accepted by the employee form select.
var FunctionalStatuses = []string{"Ativo", "Afastado", "Licença", "Férias"}

// InstitutionalLinks are the values accepted by the employee form select.
var InstitutionalLinks = []string{"Efetivo", "Comissionado", "Estagiário", "Terceirizado"}

// EmployeeField pairs an API field name with its display label. The order
// drives the dashboard table and the advanced filter grid.
type EmployeeField struct {
	Name  string
	Label string
}

// EmployeeFields lists the filterable dashboard columns.
var EmployeeFields = []EmployeeField{
	{"fullName", "Nome Completo"},
	{"registrationNumber", "Matrícula"},
	{"cpf", "CPF"},
	{"rg", "RG"},
	{"institutionalEmail", "E-mail Institucional"},
	{"position", "Cargo"},
	{"department", "Departamento"},
	{"functionalStatus", "Situação Funcional"},
	{"institutionalLink", "Vínculo Institucional"},
	{"role", "Função"},
	{"currentAssignment", "Lotação Atual"},
	{"admissionDate", "Data de Admissão"},
	{"dateOfBirth", "Data de Nascimento"},
	{"gender", "Gênero"},
	{"maritalStatus", "Estado Civil"},
	{"mobilePhone1", "Telefone Celular"},
	{"emergencyContactPhone", "Telefone de Emergência"},
	{"personalEmail", "E-mail Pessoal"},
	{"addressStreet", "Logradouro"},
	{"addressNumber", "Número"},
	{"addressNeighborhood", "Bairro"},
	{"addressCity", "Cidade"},
	{"addressState", "Estado"},
	{"addressZipCode", "CEP"},
	{"generalObservations", "Observações"},
}

// FieldMap flattens the record into API-field-name → value for filtering and
// for the read-only details tab. Owned collections are not included.
func (e *Employee) FieldMap() map[string]string {
	return map[string]string{
		"id":                    e.ID,
		"fullName":              e.FullName,
		"registrationNumber":    e.RegistrationNumber,
		"institutionalLink":     e.InstitutionalLink,
		"position":              e.Position,
		"role":                  e.Role,
		"department":            e.Department,
		"currentAssignment":     e.CurrentAssignment,
		"admissionDate":         e.AdmissionDate,
		"educationLevel":        e.EducationLevel,
		"educationArea":         e.EducationArea,
		"dateOfBirth":           e.DateOfBirth,
		"gender":                e.Gender,
		"maritalStatus":         e.MaritalStatus,
		"hasChildren":           e.HasChildren,
		"numberOfChildren":      e.NumberOfChildren,
		"cpf":                   e.CPF,
		"rg":                    e.RG,
		"rgIssuer":              e.RGIssuer,
		"addressStreet":         e.AddressStreet,
		"addressNumber":         e.AddressNumber,
		"addressComplement":     e.AddressComplement,
		"addressNeighborhood":   e.AddressNeighborhood,
		"addressCity":           e.AddressCity,
		"addressState":          e.AddressState,
		"addressZipCode":        e.AddressZipCode,
		"emergencyContactPhone": e.EmergencyContactPhone,
		"mobilePhone1":          e.MobilePhone1,
		"mobilePhone2":          e.MobilePhone2,
		"institutionalEmail":    e.InstitutionalEmail,
		"personalEmail":         e.PersonalEmail,
		"functionalStatus":      e.FunctionalStatus,
		"generalObservations":   e.GeneralObservations,
		"comorbidity":           e.Comorbidity,
		"disability":            e.Disability,
		"bloodType":             e.BloodType,
		"createdAt":             e.CreatedAt,
		"updatedAt":             e.UpdatedAt,
	}
}

// DetailFieldOrder drives the read-only details tab: every flat field, in
// presentation order.
var DetailFieldOrder = []string{
	"fullName", "registrationNumber", "institutionalLink", "position", "role",
	"department", "currentAssignment", "admissionDate", "educationLevel",
	"educationArea", "dateOfBirth", "gender", "maritalStatus", "hasChildren",
	"numberOfChildren", "cpf", "rg", "rgIssuer", "addressStreet",
	"addressNumber", "addressComplement", "addressNeighborhood", "addressCity",
	"addressState", "addressZipCode", "emergencyContactPhone", "mobilePhone1",
	"mobilePhone2", "institutionalEmail", "personalEmail", "functionalStatus",
	"generalObservations", "comorbidity", "disability", "bloodType", "id",
	"createdAt", "updatedAt",
}

// FieldLabels maps every employee field name to its display label for the
// details tab.
var FieldLabels = map[string]string{
	"fullName":              "Nome Completo",
	"registrationNumber":    "Matrícula",
	"institutionalLink":     "Vínculo Institucional",
	"position":              "Cargo",
	"role":                  "Função",
	"department":            "Departamento",
	"currentAssignment":     "Lotação Atual",
	"admissionDate":         "Data de Admissão",
	"educationLevel":        "Nível de Formação",
	"educationArea":         "Área de Formação",
	"dateOfBirth":           "Data de Nascimento",
	"gender":                "Gênero",
	"maritalStatus":         "Estado Civil",
	"hasChildren":           "Possui Filhos",
	"numberOfChildren":      "Número de Filhos",
	"cpf":                   "CPF",
	"rg":                    "RG",
	"rgIssuer":              "Órgão Emissor (RG)",
	"addressStreet":         "Logradouro",
	"addressNumber":         "Número (Endereço)",
	"addressComplement":     "Complemento",
	"addressNeighborhood":   "Bairro",
	"addressCity":           "Cidade",
	"addressState":          "Estado (UF)",
	"addressZipCode":        "CEP",
	"emergencyContactPhone": "Telefone de Emergência",
	"mobilePhone1":          "Celular 1",
	"mobilePhone2":          "Celular 2",
	"institutionalEmail":    "E-mail Institucional",
	"personalEmail":         "E-mail Pessoal",
	"functionalStatus":      "Situação Funcional",
	"generalObservations":   "Observações Gerais",
	"comorbidity":           "Comorbidade",
	"disability":            "Deficiência",
	"bloodType":             "Tipo Sanguíneo",
	"id":                    "ID do Sistema",
	"createdAt":             "Data de Cadastro",
	"updatedAt":             "Última Atualização",
}
