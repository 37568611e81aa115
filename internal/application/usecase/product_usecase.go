package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD de produtos. Estoque não se edita aqui:
// current_stock é derivado pelo reconciliador.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um produto com SKU único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:              uuid.NewString(),
		SKU:             in.SKU,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Cost:            in.Cost,
		Unit:            in.Unit,
		NCM:             in.NCM,
		CFOP:            in.CFOP,
		RentalAvailable: in.RentalAvailable,
		DailyRate:       in.DailyRate,
		Deposit:         in.Deposit,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// Update atualiza um produto campo a campo. Estoque fica de fora.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.NCM != nil {
		product.NCM = *in.NCM
	}
	if in.CFOP != nil {
		product.CFOP = *in.CFOP
	}
	if in.RentalAvailable != nil {
		product.RentalAvailable = *in.RentalAvailable
	}
	if in.DailyRate != nil {
		product.DailyRate = *in.DailyRate
	}
	if in.Deposit != nil {
		product.Deposit = *in.Deposit
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// List produtos paginados, com busca opcional por nome/SKU.
func (uc *ProductUseCase) List(term string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	var (
		products []*entity.Product
		err      error
	)
	if term != "" {
		products, err = uc.repo.Search(term, page.Limit, page.Offset)
	} else {
		products, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range products {
		resp.Items = append(resp.Items, *dto.ToProductResponse(p))
	}
	return resp, nil
}

// Delete exclui um produto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
