package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo leituras agregadas para o painel inicial.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Totals agregados do painel em três consultas: parcelas, produtos e
// pedidos/locações. "Mês" é o mês-calendário de hoje, por data de pagamento.
func (r *DashboardRepo) Totals(today time.Time) (*repository.DashboardTotals, error) {
	ctx := context.Background()
	t := &repository.DashboardTotals{}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	err := r.q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount::numeric) FILTER (WHERE type = 'CR' AND paid_at IS NULL), 0),
			COALESCE(SUM(amount::numeric) FILTER (WHERE type = 'CP' AND paid_at IS NULL), 0),
			COUNT(*) FILTER (WHERE paid_at IS NULL AND due_date < $1),
			COALESCE(SUM(amount::numeric) FILTER (WHERE type = 'CR' AND paid_at >= $2 AND paid_at < $3), 0),
			COALESCE(SUM(amount::numeric) FILTER (WHERE type = 'CP' AND paid_at >= $2 AND paid_at < $3), 0)
		FROM ledger_entries`,
		today, monthStart, monthEnd).
		Scan(&t.ReceivableOpen, &t.PayableOpen, &t.OverdueEntries, &t.MonthIn, &t.MonthOut)
	if err != nil {
		return nil, fmt.Errorf("dashboard ledger totals: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE current_stock::numeric < 0)
		FROM products WHERE active`).
		Scan(&t.ProductCount, &t.NegativeStock)
	if err != nil {
		return nil, fmt.Errorf("dashboard product totals: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sales_orders WHERE status IN ('draft', 'confirmed')),
			(SELECT COUNT(*) FROM rental_reservations WHERE status IN ('reserved', 'pickedup'))`).
		Scan(&t.OpenOrders, &t.ActiveRentals)
	if err != nil {
		return nil, fmt.Errorf("dashboard activity totals: %w", err)
	}

	return t, nil
}
