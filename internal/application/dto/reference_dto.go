package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

// CreateCategoryRequest entrada de criação de categoria de despesa.
type CreateCategoryRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	ParentID *string `json:"parent_id"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

// CreateAccountRequest entrada de criação de conta financeira.
type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,oneof=caixa banco digital"`
}

// AccountResponse saída de uma conta.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePaymentMethodRequest entrada de criação de meio de pagamento.
type CreatePaymentMethodRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,oneof=instantaneo boleto cartao"`
}

// PaymentMethodResponse saída de um meio de pagamento.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// CreateReservationRequest entrada de criação de reserva de locação.
type CreateReservationRequest struct {
	ProductID  string    `json:"product_id" validate:"required"`
	CustomerID string    `json:"customer_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"min=1"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
	Notes      string    `json:"notes"`
}

// ReservationResponse saída de uma reserva.
type ReservationResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	CustomerID string          `json:"customer_id"`
	Quantity   int             `json:"quantity"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Status     string          `json:"status"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Deposit    decimal.Decimal `json:"deposit"`
	Days       int             `json:"days"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateEventRequest entrada de criação de compromisso da agenda.
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at"`
	CustomerID  *string   `json:"customer_id"`
	Location    string    `json:"location"`
}

// EventResponse saída de um compromisso.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CustomerID  *string   `json:"customer_id,omitempty"`
	Location    string    `json:"location,omitempty"`
}

// ToReservationResponse converte a entidade para a resposta.
func ToReservationResponse(r *entity.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		Quantity:   r.Quantity,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status,
		DailyRate:  r.DailyRate,
		Deposit:    r.Deposit,
		Days:       r.Days(),
		Total:      r.Total(),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}

// ToEventResponse converte a entidade para a resposta.
func ToEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		CustomerID:  e.CustomerID,
		Location:    e.Location,
	}
}
