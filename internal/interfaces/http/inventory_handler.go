package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/application/inventory"
)

// InventoryHandler movimentos de estoque e recálculo derivado.
type InventoryHandler struct {
	uc         *inventory.UseCase
	reconciler *inventory.Reconciler
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(uc *inventory.UseCase, reconciler *inventory.Reconciler) *InventoryHandler {
	return &InventoryHandler{uc: uc, reconciler: reconciler}
}

// CreateMovement godoc
// @Summary      Registrar movimento de estoque (IN ou ADJ)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ProductID == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id e type são obrigatórios"})
	}
	mov, err := h.uc.RegisterMovement(inventory.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Reason:    in.Reason,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Listar movimentos de um produto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do produto"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	movs, err := h.uc.ListByProduct(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}

// DeleteMovement godoc
// @Summary      Excluir movimento de estoque
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID do movimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecomputeStock godoc
// @Summary      Recalcular o estoque de um produto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/products/{id}/recompute [post]
func (h *InventoryHandler) RecomputeStock(c *fiber.Ctx) error {
	id := c.Params("id")
	qty, err := h.reconciler.Recompute(id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: id, CurrentStock: qty})
}

// RebuildAll godoc
// @Summary      Reconstruir o estoque de todos os produtos (admin)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RebuildResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/inventory/rebuild [post]
func (h *InventoryHandler) RebuildAll(c *fiber.Ctx) error {
	changed, err := h.reconciler.RebuildAll(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.RebuildResponse{Changed: changed})
}
