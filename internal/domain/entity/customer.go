package entity

import "time"

// Tipos de pessoa.
const (
	PersonTypeIndividual = "F" // pessoa física
	PersonTypeCompany    = "J" // pessoa jurídica
)

// Customer cadastro de cliente (PF ou PJ), CPF/CNPJ único.
type Customer struct {
	ID         string
	PersonType string // F, J
	Name       string
	LegalName  string // razão social (PJ)
	TaxID      string // CPF/CNPJ
	StateReg   string // inscrição estadual
	Email      string
	Phone      string
	WhatsApp   string
	BirthDate  *time.Time
	Address    string
	City       string
	State      string // UF
	ZipCode    string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
