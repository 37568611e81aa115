package fiscal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
	"github.com/gestaoplug/erp-api/pkg/logger"
)

// UseCase emissão (stub) de documentos fiscais a partir de pedidos faturados.
// A emissão real é do provedor; aqui montamos o envio, registramos o retorno
// e guardamos a situação. Sem assinatura e sem retentativas.
type UseCase struct {
	docRepo      repository.FiscalDocumentRepository
	orderRepo    repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	builder      EnvelopeBuilder
	provider     Provider
	log          *logger.Logger
}

// NewUseCase constrói o caso de uso fiscal.
func NewUseCase(
	docRepo repository.FiscalDocumentRepository,
	orderRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	builder EnvelopeBuilder,
	provider Provider,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		docRepo:      docRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		builder:      builder,
		provider:     provider,
		log:          log,
	}
}

type submitPayload struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Type       string          `json:"type"`
	Series     int             `json:"series"`
	IssuedAt   time.Time       `json:"issued_at"`
}

// Issue emite um documento fiscal para um pedido faturado. O documento nasce
// em_processamento; o retorno do provedor decide autorizada ou rejeitada.
func (uc *UseCase) Issue(ctx context.Context, in dto.IssueFiscalRequest) (*entity.FiscalDocument, error) {
	if in.Type != entity.FiscalTypeNFe && in.Type != entity.FiscalTypeNFCe && in.Type != entity.FiscalTypeNFSe {
		return nil, fmt.Errorf("%w: tipo fiscal %q", domain.ErrInvalidInput, in.Type)
	}

	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, in.OrderID)
	}
	if order.Status != entity.OrderStatusInvoiced {
		return nil, fmt.Errorf("%w: só pedidos faturados geram documento fiscal", domain.ErrInvalidInput)
	}

	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, order.CustomerID)
	}

	series := in.Series
	if series <= 0 {
		series = 1
	}

	now := time.Now().UTC()
	doc := &entity.FiscalDocument{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Series:    series,
		Status:    entity.FiscalStatusProcessing,
		OrderID:   &order.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	xml, err := uc.builder.Build(doc, order, customer)
	if err != nil {
		return nil, fmt.Errorf("montar envelope: %w", err)
	}
	doc.XML = xml

	payload, err := json.Marshal(submitPayload{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.NetTotal(),
		Type:       in.Type,
		Series:     series,
		IssuedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("montar payload: %w", err)
	}
	doc.Payload = payload

	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}

	result, err := uc.provider.Submit(ctx, doc)
	if err != nil {
		// Sem retorno do provedor o documento fica em_processamento.
		uc.log.Error().Err(err).Str("fiscal_id", doc.ID).Msg("falha no envio ao provedor fiscal")
		return doc, nil
	}

	doc.Status = result.Status
	doc.Number = result.Number
	doc.AccessKey = result.AccessKey
	doc.ProviderID = result.ProviderID
	doc.Reason = result.Reason
	doc.UpdatedAt = time.Now().UTC()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("fiscal_id", doc.ID).
		Str("status", doc.Status).
		Msg("documento fiscal processado")
	return doc, nil
}

// Get documento por ID.
func (uc *UseCase) Get(id string) (*entity.FiscalDocument, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// List documentos fiscais paginados.
func (uc *UseCase) List(limit, offset int) ([]*entity.FiscalDocument, error) {
	return uc.docRepo.List(limit, offset)
}
