package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/application/usecase"
)

// CategoryHandler categorias de despesa (dois níveis).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Criar categoria de despesa
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Categoria"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorias (pais antes dos filhos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir categoria sem filhos
// @Tags         categories
// @Security     Bearer
// @Param        id  path  string  true  "ID da categoria"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AccountHandler contas e meios de pagamento.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler constrói o handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// CreateAccount godoc
// @Summary      Criar conta financeira
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Conta"
// @Success      201   {object}  dto.AccountResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.CreateAccount(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAccounts godoc
// @Summary      Listar contas ativas
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	out, err := h.uc.ListAccounts()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeactivateAccount godoc
// @Summary      Desativar conta
// @Tags         accounts
// @Security     Bearer
// @Param        id  path  string  true  "ID da conta"
// @Success      204
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) DeactivateAccount(c *fiber.Ctx) error {
	if err := h.uc.DeactivateAccount(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePaymentMethod godoc
// @Summary      Criar meio de pagamento
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentMethodRequest  true  "Meio de pagamento"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [post]
func (h *AccountHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.CreatePaymentMethod(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPaymentMethods godoc
// @Summary      Listar meios de pagamento ativos
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentMethodResponse
// @Router       /api/payment-methods [get]
func (h *AccountHandler) ListPaymentMethods(c *fiber.Ctx) error {
	out, err := h.uc.ListPaymentMethods()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// DeactivatePaymentMethod godoc
// @Summary      Desativar meio de pagamento
// @Tags         accounts
// @Security     Bearer
// @Param        id  path  string  true  "ID do meio de pagamento"
// @Success      204
// @Router       /api/payment-methods/{id} [delete]
func (h *AccountHandler) DeactivatePaymentMethod(c *fiber.Ctx) error {
	if err := h.uc.DeactivatePaymentMethod(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
