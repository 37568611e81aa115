package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes (CPF/CNPJ único).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cria um cliente. CPF/CNPJ duplicado devolve ErrDuplicate.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.PersonType != entity.PersonTypeIndividual && in.PersonType != entity.PersonTypeCompany {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:         uuid.NewString(),
		PersonType: in.PersonType,
		Name:       in.Name,
		LegalName:  in.LegalName,
		TaxID:      in.TaxID,
		StateReg:   in.StateReg,
		Email:      in.Email,
		Phone:      in.Phone,
		WhatsApp:   in.WhatsApp,
		BirthDate:  in.BirthDate,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		ZipCode:    in.ZipCode,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// GetByID obtém um cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCustomerResponse(customer), nil
}

// Update atualiza um cliente campo a campo. CPF/CNPJ e tipo não mudam.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.LegalName != nil {
		customer.LegalName = *in.LegalName
	}
	if in.StateReg != nil {
		customer.StateReg = *in.StateReg
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.WhatsApp != nil {
		customer.WhatsApp = *in.WhatsApp
	}
	if in.BirthDate != nil {
		customer.BirthDate = in.BirthDate
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.State != nil {
		customer.State = *in.State
	}
	if in.ZipCode != nil {
		customer.ZipCode = *in.ZipCode
	}
	if in.Active != nil {
		customer.Active = *in.Active
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.ToCustomerResponse(customer), nil
}

// List clientes paginados, com busca opcional por nome/documento.
func (uc *CustomerUseCase) List(term string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	var (
		customers []*entity.Customer
		err       error
	)
	if term != "" {
		customers, err = uc.repo.Search(term, page.Limit, page.Offset)
	} else {
		customers, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.CustomerListResponse{
		Items: make([]dto.CustomerResponse, 0, len(customers)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range customers {
		resp.Items = append(resp.Items, *dto.ToCustomerResponse(c))
	}
	return resp, nil
}

// Delete exclui um cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
