package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/application/sales"
)

// OrderHandler pedidos de venda e seus itens.
type OrderHandler struct {
	uc *sales.OrderUseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(uc *sales.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func toItemInputs(items []dto.ItemRequest) []sales.ItemInput {
	out := make([]sales.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, sales.ItemInput{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

// Create godoc
// @Summary      Criar pedido de venda (rascunho)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id é obrigatório"})
	}
	order, err := h.uc.Create(sales.OrderInput{
		CustomerID:    in.CustomerID,
		TotalDiscount: in.TotalDiscount,
		Notes:         in.Notes,
		CreatedBy:     GetUserID(c),
		Items:         toItemInputs(in.Items),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderResponse(order))
}

// GetByID godoc
// @Summary      Obter pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToOrderResponse(order))
}

// List godoc
// @Summary      Listar pedidos (filtro opcional por status)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Status (draft|confirmed|invoiced|canceled)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	orders, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *dto.ToOrderResponse(o))
	}
	return c.JSON(dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// ChangeStatus godoc
// @Summary      Mudar o status do pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.ChangeStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [post]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.uc.ChangeStatus(c.Params("id"), in.Status)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToOrderResponse(order))
}

// Update godoc
// @Summary      Atualizar cabeçalho do pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.OrderResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	order, err := h.uc.Update(c.Params("id"), in.TotalDiscount, in.Notes)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToOrderResponse(order))
}

// AddItem godoc
// @Summary      Adicionar item ao pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.ItemRequest  true  "Item"
// @Success      201   {object}  dto.ItemResponse
// @Router       /api/orders/{id}/items [post]
func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
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
// @Summary      Atualizar item do pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID do item"
// @Param        body    body  dto.ItemRequest  true  "Item"
// @Success      200     {object}  dto.ItemResponse
// @Router       /api/orders/items/{itemId} [put]
func (h *OrderHandler) UpdateItem(c *fiber.Ctx) error {
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
// @Summary      Remover item do pedido
// @Tags         orders
// @Security     Bearer
// @Param        itemId  path  string  true  "ID do item"
// @Success      204
// @Router       /api/orders/items/{itemId} [delete]
func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.Params("itemId")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Excluir pedido
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID do pedido"
// @Success      204
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
