package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/application/sales"
)

// QuoteHandler orçamentos e conversão em pedido.
type QuoteHandler struct {
	uc *sales.QuoteUseCase
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(uc *sales.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create godoc
// @Summary      Criar orçamento
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "Orçamento"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id é obrigatório"})
	}
	quote, err := h.uc.Create(sales.QuoteInput{
		CustomerID:    in.CustomerID,
		ValidUntil:    in.ValidUntil,
		TotalDiscount: in.TotalDiscount,
		Notes:         in.Notes,
		CreatedBy:     GetUserID(c),
		Items:         toItemInputs(in.Items),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToQuoteResponse(quote))
}

// GetByID godoc
// @Summary      Obter orçamento por ID
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToQuoteResponse(quote))
}

// List godoc
// @Summary      Listar orçamentos (filtro opcional por status)
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Status (draft|sent|approved|rejected|canceled|expired)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	quotes, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, *dto.ToQuoteResponse(q))
	}
	return c.JSON(dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// ChangeStatus godoc
// @Summary      Mudar o status do orçamento
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do orçamento"
// @Param        body  body  dto.ChangeStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.QuoteResponse
// @Router       /api/quotes/{id}/status [post]
func (h *QuoteHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.ChangeStatus(c.Params("id"), in.Status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToQuoteResponse(quote))
}

// ConvertToOrder godoc
// @Summary      Converter orçamento em pedido de venda
// @Tags         quotes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do orçamento"
// @Success      201  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/convert [post]
func (h *QuoteHandler) ConvertToOrder(c *fiber.Ctx) error {
	order, err := h.uc.ConvertToOrder(c.Params("id"), GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderResponse(order))
}

// AddItem godoc
// @Summary      Adicionar item ao orçamento
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do orçamento"
// @Param        body  body  dto.ItemRequest  true  "Item"
// @Success      201   {object}  dto.ItemResponse
// @Router       /api/quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.uc.AddItem(c.Params("id"), sales.ItemInput{
		ProductID:   in.ProductID,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal(),
	})
}

// UpdateItem godoc
// @Summary      Atualizar item do orçamento
// @Tags         quotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID do item"
// @Param        body    body  dto.ItemRequest  true  "Item"
// @Success      200     {object}  dto.ItemResponse
// @Router       /api/quotes/items/{itemId} [put]
func (h *QuoteHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.uc.UpdateItem(c.Params("itemId"), sales.ItemInput{
		ProductID:   in.ProductID,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal(),
	})
}

// RemoveItem godoc
// @Summary      Remover item do orçamento
// @Tags         quotes
// @Security     Bearer
// @Param        itemId  path  string  true  "ID do item"
// @Success      204
// @Router       /api/quotes/items/{itemId} [delete]
func (h *QuoteHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Params("itemId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Excluir orçamento
// @Tags         quotes
// @Security     Bearer
// @Param        id  path  string  true  "ID do orçamento"
// @Success      204
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
