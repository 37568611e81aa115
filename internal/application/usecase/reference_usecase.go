package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/domain"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/internal/domain/repository"
)

// CategoryUseCase categorias de despesa em árvore de dois níveis.
type CategoryUseCase struct {
	repo repository.ExpenseCategoryRepository
}

func NewCategoryUseCase(repo repository.ExpenseCategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria uma categoria. Filha de filha é rejeitada (árvore tem só dois
// níveis); o par (nome, pai) duplicado devolve ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.ParentID != nil {
		parent, err := uc.repo.GetByID(*in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		if parent.ParentID != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	category := &entity.ExpenseCategory{
		ID:       uuid.NewString(),
		Name:     in.Name,
		ParentID: in.ParentID,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, ParentID: category.ParentID}, nil
}

// List todas as categorias.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID})
	}
	return out, nil
}

// Delete exclui uma categoria sem filhas.
func (uc *CategoryUseCase) Delete(id string) error {
	children, err := uc.repo.ListChildren(id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// AccountUseCase contas financeiras e meios de pagamento.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
	methodRepo  repository.PaymentMethodRepository
}

func NewAccountUseCase(accountRepo repository.AccountRepository, methodRepo repository.PaymentMethodRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, methodRepo: methodRepo}
}

// CreateAccount cria uma conta ativa.
func (uc *AccountUseCase) CreateAccount(in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	account := &entity.Account{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Type:      in.Type,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// ListAccounts contas ativas.
func (uc *AccountUseCase) ListAccounts() ([]dto.AccountResponse, error) {
	accounts, err := uc.accountRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *toAccountResponse(a))
	}
	return out, nil
}

// DeactivateAccount desativação lógica.
func (uc *AccountUseCase) DeactivateAccount(id string) error {
	return uc.accountRepo.Deactivate(id)
}

// CreatePaymentMethod cria um meio de pagamento ativo.
func (uc *AccountUseCase) CreatePaymentMethod(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method := &entity.PaymentMethod{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Type:      in.Type,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.methodRepo.Create(method); err != nil {
		return nil, err
	}
	return &dto.PaymentMethodResponse{ID: method.ID, Name: method.Name, Type: method.Type, Active: method.Active}, nil
}

// ListPaymentMethods meios de pagamento ativos.
func (uc *AccountUseCase) ListPaymentMethods() ([]dto.PaymentMethodResponse, error) {
	methods, err := uc.methodRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.PaymentMethodResponse{ID: m.ID, Name: m.Name, Type: m.Type, Active: m.Active})
	}
	return out, nil
}

// DeactivatePaymentMethod desativação lógica.
func (uc *AccountUseCase) DeactivatePaymentMethod(id string) error {
	return uc.methodRepo.Deactivate(id)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{ID: a.ID, Name: a.Name, Type: a.Type, Active: a.Active, CreatedAt: a.CreatedAt}
}
