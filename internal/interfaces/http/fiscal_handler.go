package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestaoplug/erp-api/internal/application/dto"
	"github.com/gestaoplug/erp-api/internal/application/fiscal"
)

// FiscalHandler emissão e consulta de documentos fiscais.
type FiscalHandler struct {
	uc *fiscal.UseCase
}

// NewFiscalHandler constrói o handler.
func NewFiscalHandler(uc *fiscal.UseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// Issue godoc
// @Summary      Emitir documento fiscal de um pedido faturado
// @Tags         fiscal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueFiscalRequest  true  "Emissão"
// @Success      201   {object}  dto.FiscalDocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fiscal/documents [post]
func (h *FiscalHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueFiscalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.OrderID == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id e type são obrigatórios"})
	}
	doc, err := h.uc.Issue(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToFiscalDocumentResponse(doc))
}

// GetByID godoc
// @Summary      Obter documento fiscal por ID
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do documento"
// @Success      200  {object}  dto.FiscalDocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal/documents/{id} [get]
func (h *FiscalHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.ToFiscalDocumentResponse(doc))
}

// List godoc
// @Summary      Listar documentos fiscais
// @Tags         fiscal
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FiscalListResponse
// @Router       /api/fiscal/documents [get]
func (h *FiscalHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	docs, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	items := make([]dto.FiscalDocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *dto.ToFiscalDocumentResponse(d))
	}
	return c.JSON(dto.FiscalListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	})
}
