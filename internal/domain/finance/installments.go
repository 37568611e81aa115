// Package finance concentra as regras puras de parcelamento e status de
// títulos financeiros: rateio do valor total, agenda de vencimentos,
// status agregado do documento e status de exibição das parcelas.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// DefaultIntervalDays intervalo entre vencimentos quando não informado.
const DefaultIntervalDays = 30

// NormalizeCount garante pelo menos uma parcela (contagem zero ou negativa vira 1).
func NormalizeCount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// InstallmentAmount rateia o valor total em n parcelas iguais, arredondando
// para 2 casas (half-up). Cada parcela é arredondada de forma independente:
// a soma das parcelas pode divergir do total em até n-1 centavos e a última
// parcela NÃO é ajustada. Ex.: 100.00 em 3 vezes dá 3 parcelas de 33.33.
func InstallmentAmount(total decimal.Decimal, n int) decimal.Decimal {
	count := decimal.NewFromInt(int64(NormalizeCount(n)))
	return total.Div(count).Round(2)
}

// Schedule devolve os n vencimentos: o primeiro em firstDue e os seguintes
// espaçados de intervalDays em intervalDays. Intervalo zero ou negativo
// assume DefaultIntervalDays.
func Schedule(firstDue time.Time, n, intervalDays int) []time.Time {
	if intervalDays <= 0 {
		intervalDays = DefaultIntervalDays
	}
	n = NormalizeCount(n)
	dates := make([]time.Time, n)
	due := DateOnly(firstDue)
	for i := 0; i < n; i++ {
		dates[i] = due
		due = due.AddDate(0, 0, intervalDays)
	}
	return dates
}

// DocumentStatus deriva o status agregado do documento a partir das parcelas:
// paid quando todas pagas, partial quando ao menos uma (mas não todas),
// open no restante.
func DocumentStatus(entries []*entity.LedgerEntry) string {
	if len(entries) == 0 {
		return entity.DocStatusOpen
	}
	var paid, unpaid int
	for _, e := range entries {
		if e.PaidAt != nil {
			paid++
		} else {
			unpaid++
		}
	}
	switch {
	case unpaid == 0:
		return entity.DocStatusPaid
	case paid > 0:
		return entity.DocStatusPartial
	default:
		return entity.DocStatusOpen
	}
}

// DisplayStatus status dinâmico de uma parcela em relação a today:
// paid, overdue, due_today ou open.
func DisplayStatus(e *entity.LedgerEntry, today time.Time) string {
	if e.PaidAt != nil {
		return entity.EntryStatusPaid
	}
	due := DateOnly(e.DueDate)
	today = DateOnly(today)
	switch {
	case due.Before(today):
		return entity.EntryStatusOverdue
	case due.Equal(today):
		return entity.EntryStatusDueToday
	default:
		return entity.EntryStatusOpen
	}
}

// SortRank chave de ordenação das listagens: overdue (0), due_today (1),
// open futuro (2), paid (3). Empates resolvem por vencimento e id.
func SortRank(e *entity.LedgerEntry, today time.Time) int {
	switch DisplayStatus(e, today) {
	case entity.EntryStatusOverdue:
		return 0
	case entity.EntryStatusDueToday:
		return 1
	case entity.EntryStatusOpen:
		return 2
	default:
		return 3
	}
}

// DateOnly descarta a parte de hora (meia-noite UTC).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
