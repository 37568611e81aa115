package fiscal

import (
	"context"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// ProviderResult retorno da emissão junto ao provedor.
type ProviderResult struct {
	Status     string // autorizada, rejeitada, em_processamento
	Number     *int
	AccessKey  string
	ProviderID string
	Reason     string
}

// Provider porta para o emissor externo de documentos fiscais.
type Provider interface {
	Submit(ctx context.Context, doc *entity.FiscalDocument) (*ProviderResult, error)
}

// EnvelopeBuilder monta o XML de envio a partir do pedido faturado.
type EnvelopeBuilder interface {
	Build(doc *entity.FiscalDocument, order *entity.SalesOrder, customer *entity.Customer) (string, error)
}
