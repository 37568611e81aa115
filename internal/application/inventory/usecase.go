package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// MovementInput dados de registro de um movimento de estoque.
type MovementInput struct {
	ProductID string
	Type      string // IN, ADJ
	Quantity  decimal.Decimal
	UnitCost  *decimal.Decimal
	Reason    string
	CreatedBy string
}

// UseCase operações de movimentação de estoque. Toda escrita dispara o
// recálculo do estoque do produto afetado.
type UseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	reconciler  *Reconciler
}

// NewUseCase constrói o caso de uso de estoque.
func NewUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	reconciler *Reconciler,
) *UseCase {
	return &UseCase{productRepo: productRepo, movRepo: movRepo, reconciler: reconciler}
}

// RegisterMovement valida e grava um movimento.
// IN exige quantidade positiva e custo unitário não negativo; ADJ exige
// quantidade diferente de zero e não carrega custo.
func (uc *UseCase) RegisterMovement(in MovementInput) (*entity.StockMovement, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, in.ProductID)
	}

	switch in.Type {
	case entity.MovementTypeIn:
		if !in.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: entrada exige quantidade positiva", domain.ErrInvalidInput)
		}
		if in.UnitCost == nil || in.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: entrada exige custo unitário não negativo", domain.ErrInvalidInput)
		}
	case entity.MovementTypeAdjust:
		if in.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: ajuste exige quantidade diferente de zero", domain.ErrInvalidInput)
		}
		in.UnitCost = nil
	default:
		return nil, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, in.Type)
	}

	mov := &entity.StockMovement{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Reason:    in.Reason,
		CreatedBy: in.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}

	uc.reconciler.Trigger(mov.ProductID)
	return mov, nil
}

// DeleteMovement remove um movimento e recalcula o produto afetado.
func (uc *UseCase) DeleteMovement(id string) error {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	if err := uc.movRepo.Delete(id); err != nil {
		return err
	}
	uc.reconciler.Trigger(mov.ProductID)
	return nil
}

// ListByProduct histórico de movimentos de um produto.
func (uc *UseCase) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByProduct(productID, limit, offset)
}
