package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// DashboardResponse agregados do painel inicial. Os valores formatados usam
// o padrão pt-BR (R$).
type DashboardResponse struct {
	ReceivableOpen          decimal.Decimal `json:"receivable_open"`
	ReceivableOpenFormatted string          `json:"receivable_open_formatted"`
	PayableOpen             decimal.Decimal `json:"payable_open"`
	PayableOpenFormatted    string          `json:"payable_open_formatted"`
	OverdueEntries          int             `json:"overdue_entries"`
	MonthIn                 decimal.Decimal `json:"month_in"`
	MonthInFormatted        string          `json:"month_in_formatted"`
	MonthOut                decimal.Decimal `json:"month_out"`
	MonthOutFormatted       string          `json:"month_out_formatted"`
	ProductCount            int             `json:"product_count"`
	NegativeStock           int             `json:"negative_stock"`
	OpenOrders              int             `json:"open_orders"`
	ActiveRentals           int             `json:"active_rentals"`
}

// ToDashboardResponse converte os agregados com o formatador monetário dado.
func ToDashboardResponse(t *repository.DashboardTotals, format func(decimal.Decimal) string) *DashboardResponse {
	return &DashboardResponse{
		ReceivableOpen:          t.ReceivableOpen,
		ReceivableOpenFormatted: format(t.ReceivableOpen),
		PayableOpen:             t.PayableOpen,
		PayableOpenFormatted:    format(t.PayableOpen),
		OverdueEntries:          t.OverdueEntries,
		MonthIn:                 t.MonthIn,
		MonthInFormatted:        format(t.MonthIn),
		MonthOut:                t.MonthOut,
		MonthOutFormatted:       format(t.MonthOut),
		ProductCount:            t.ProductCount,
		NegativeStock:           t.NegativeStock,
		OpenOrders:              t.OpenOrders,
		ActiveRentals:           t.ActiveRentals,
	}
}
