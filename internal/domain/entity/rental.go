package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status da reserva de locação.
const (
	ReservationStatusReserved = "reserved"
	ReservationStatusPickedUp = "pickedup"
	ReservationStatusReturned = "returned"
	ReservationStatusCanceled = "canceled"
)

// ValidReservationStatus valida o status de reserva.
func ValidReservationStatus(status string) bool {
	switch status {
	case ReservationStatusReserved, ReservationStatusPickedUp,
		ReservationStatusReturned, ReservationStatusCanceled:
		return true
	}
	return false
}

// Reservation reserva de locação de um produto habilitado para locação.
type Reservation struct {
	ID         string
	ProductID  string
	CustomerID string
	Quantity   int
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	DailyRate  decimal.Decimal
	Deposit    decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Days número de diárias (mínimo 1).
func (r *Reservation) Days() int {
	d := int(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}

// Total diárias x valor da diária x quantidade.
func (r *Reservation) Total() decimal.Decimal {
	return r.DailyRate.Mul(decimal.NewFromInt(int64(r.Days()))).Mul(decimal.NewFromInt(int64(r.Quantity)))
}
