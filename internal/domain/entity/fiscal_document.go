package entity

import (
	"encoding/json"
	"time"
)

// Tipos de documento fiscal.
const (
	FiscalTypeNFe  = "nfe"
	FiscalTypeNFCe = "nfce"
	FiscalTypeNFSe = "nfse"
)

// Situação do documento fiscal junto ao provedor.
const (
	FiscalStatusProcessing = "em_processamento"
	FiscalStatusAuthorized = "autorizada"
	FiscalStatusRejected   = "rejeitada"
)

// FiscalDocument stub de documento fiscal: a emissão real é delegada a um
// provedor externo; aqui só guardamos envio, retorno e situação.
type FiscalDocument struct {
	ID         string
	Type       string // nfe, nfce, nfse
	Number     *int
	Series     int
	AccessKey  string // chave de acesso (44 dígitos)
	Status     string
	XML        string
	Payload    json.RawMessage // json enviado ao provedor
	ProviderID string
	OrderID    *string // pedido faturado de origem, se houver
	Reason     string  // motivo de rejeição
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
