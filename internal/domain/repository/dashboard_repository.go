package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardTotals agregados para o painel.
type DashboardTotals struct {
	ReceivableOpen  decimal.Decimal
	PayableOpen     decimal.Decimal
	OverdueEntries  int
	MonthIn         decimal.Decimal
	MonthOut        decimal.Decimal
	ProductCount    int
	NegativeStock   int
	OpenOrders      int
	ActiveRentals   int
}

// DashboardRepository leituras agregadas para o painel inicial.
type DashboardRepository interface {
	Totals(today time.Time) (*DashboardTotals, error)
}
