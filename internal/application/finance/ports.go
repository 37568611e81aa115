package finance

import (
	"context"

	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// FinanceTxRunner executa o callback numa transação com os repositórios
// financeiros ligados a ela: documento + parcelas nascem (ou não) juntos.
type FinanceTxRunner interface {
	RunFinance(ctx context.Context, fn func(
		docRepo repository.FinanceDocumentRepository,
		entryRepo repository.LedgerEntryRepository,
	) error) error
}
