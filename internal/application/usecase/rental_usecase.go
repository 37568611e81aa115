package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// RentalUseCase reservas de locação de produtos habilitados.
type RentalUseCase struct {
	repo         repository.ReservationRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewRentalUseCase(
	repo repository.ReservationRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *RentalUseCase {
	return &RentalUseCase{repo: repo, productRepo: productRepo, customerRepo: customerRepo}
}

// Create cria uma reserva. Diária e caução vêm do cadastro do produto no
// momento da reserva.
func (uc *RentalUseCase) Create(in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.Quantity < 1 || !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.RentalAvailable {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	res := &entity.Reservation{
		ID:         uuid.NewString(),
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		Quantity:   in.Quantity,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     entity.ReservationStatusReserved,
		DailyRate:  product.DailyRate,
		Deposit:    product.Deposit,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(res); err != nil {
		return nil, err
	}
	return dto.ToReservationResponse(res), nil
}

// GetByID obtém uma reserva.
func (uc *RentalUseCase) GetByID(id string) (*dto.ReservationResponse, error) {
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToReservationResponse(res), nil
}

// ChangeStatus avança o ciclo reserved -> pickedup -> returned (ou canceled).
func (uc *RentalUseCase) ChangeStatus(id, status string) (*dto.ReservationResponse, error) {
	if !entity.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	res, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrNotFound
	}
	res.Status = status
	res.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(res); err != nil {
		return nil, err
	}
	return dto.ToReservationResponse(res), nil
}

// List reservas, opcionalmente por status.
func (uc *RentalUseCase) List(status string, page dto.PageRequest) ([]dto.ReservationResponse, error) {
	if status != "" && !entity.ValidReservationStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	reservations, err := uc.repo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *dto.ToReservationResponse(r))
	}
	return out, nil
}

// Delete exclui uma reserva.
func (uc *RentalUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
