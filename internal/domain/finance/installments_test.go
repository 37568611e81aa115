package finance_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/finance"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInstallmentAmount_RateioIndependente(t *testing.T) {
	tests := []struct {
		name  string
		total string
		n     int
		want  string
	}{
		{"divisao exata", "300.00", 3, "100"},
		{"terco com resto", "100.00", 3, "33.33"},
		{"metade de centavo arredonda para cima", "0.25", 10, "0.03"},
		{"parcela unica", "99.90", 1, "99.9"},
		{"contagem zero vira 1", "50.00", 0, "50"},
		{"contagem negativa vira 1", "50.00", -3, "50"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := finance.InstallmentAmount(d(tc.total), tc.n)
			assert.True(t, d(tc.want).Equal(got), "esperado %s, obtido %s", tc.want, got)
		})
	}
}

func TestInstallmentAmount_DerivaDoTotalEmAteNMenos1Centavos(t *testing.T) {
	totals := []string{"100.00", "99.99", "1.00", "1234.56", "0.10"}
	counts := []int{1, 2, 3, 7, 12}
	for _, total := range totals {
		for _, n := range counts {
			amount := finance.InstallmentAmount(d(total), n)
			sum := amount.Mul(decimal.NewFromInt(int64(n)))
			drift := sum.Sub(d(total)).Abs()
			maxDrift := decimal.New(int64(n), -2) // n centavos cobre o pior caso com folga
			assert.True(t, drift.LessThanOrEqual(maxDrift),
				"total=%s n=%d soma=%s deriva=%s", total, n, sum, drift)
		}
	}
}

func TestSchedule_VencimentosEspacados(t *testing.T) {
	dates := finance.Schedule(day("2024-01-01"), 3, 30)
	require.Len(t, dates, 3)
	assert.Equal(t, day("2024-01-01"), dates[0])
	assert.Equal(t, day("2024-01-31"), dates[1])
	assert.Equal(t, day("2024-03-01"), dates[2])
}

func TestSchedule_IntervaloZeroAssume30Dias(t *testing.T) {
	dates := finance.Schedule(day("2024-06-15"), 2, 0)
	require.Len(t, dates, 2)
	assert.Equal(t, day("2024-07-15"), dates[1])
}

func TestSchedule_ContagemInvalidaViraParcelaUnica(t *testing.T) {
	dates := finance.Schedule(day("2024-06-15"), -1, 15)
	require.Len(t, dates, 1)
	assert.Equal(t, day("2024-06-15"), dates[0])
}

func paidEntry(due string) *entity.LedgerEntry {
	paid := day(due)
	return &entity.LedgerEntry{DueDate: day(due), PaidAt: &paid}
}

func openEntry(due string) *entity.LedgerEntry {
	return &entity.LedgerEntry{DueDate: day(due)}
}

func TestDocumentStatus(t *testing.T) {
	tests := []struct {
		name    string
		entries []*entity.LedgerEntry
		want    string
	}{
		{"sem parcelas", nil, entity.DocStatusOpen},
		{"todas em aberto", []*entity.LedgerEntry{openEntry("2024-01-01"), openEntry("2024-02-01")}, entity.DocStatusOpen},
		{"uma paga", []*entity.LedgerEntry{paidEntry("2024-01-01"), openEntry("2024-02-01")}, entity.DocStatusPartial},
		{"todas pagas", []*entity.LedgerEntry{paidEntry("2024-01-01"), paidEntry("2024-02-01")}, entity.DocStatusPaid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, finance.DocumentStatus(tc.entries))
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	today := day("2024-06-10")
	assert.Equal(t, entity.EntryStatusPaid, finance.DisplayStatus(paidEntry("2024-01-01"), today))
	assert.Equal(t, entity.EntryStatusOverdue, finance.DisplayStatus(openEntry("2024-06-09"), today))
	assert.Equal(t, entity.EntryStatusDueToday, finance.DisplayStatus(openEntry("2024-06-10"), today))
	assert.Equal(t, entity.EntryStatusOpen, finance.DisplayStatus(openEntry("2024-06-11"), today))
}

func TestSortRank_OrdenaVencidasPrimeiro(t *testing.T) {
	today := day("2024-06-10")
	entries := []*entity.LedgerEntry{
		paidEntry("2024-01-01"),
		openEntry("2024-07-01"),
		openEntry("2024-06-10"),
		openEntry("2024-05-02"),
		openEntry("2024-05-01"),
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := finance.SortRank(entries[i], today), finance.SortRank(entries[j], today)
		if ri != rj {
			return ri < rj
		}
		return entries[i].DueDate.Before(entries[j].DueDate)
	})

	require.Len(t, entries, 5)
	// vencidas por vencimento crescente, depois vence hoje, futura, paga
	assert.Equal(t, day("2024-05-01"), entries[0].DueDate)
	assert.Equal(t, day("2024-05-02"), entries[1].DueDate)
	assert.Equal(t, day("2024-06-10"), entries[2].DueDate)
	assert.Equal(t, day("2024-07-01"), entries[3].DueDate)
	assert.NotNil(t, entries[4].PaidAt)
}
