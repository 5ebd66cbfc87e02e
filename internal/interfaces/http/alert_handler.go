package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supir/suministros-api/internal/application/dto"
	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/infrastructure/pdf"
)

// AlertHandler expone las vistas derivadas de alertas: stock bajo,
// próximos a vencer y el reporte combinado en PDF.
type AlertHandler struct {
	uc          *usecase.SupplyItemUseCase
	pdfGen      *pdf.AlertReportGenerator
	defaultDays int
}

// NewAlertHandler construye el handler. defaultDays es la ventana por defecto
// del aviso de vencimiento (configurable vía FEED_NEAR_EXPIRATION_DAYS).
func NewAlertHandler(uc *usecase.SupplyItemUseCase, pdfGen *pdf.AlertReportGenerator, defaultDays int) *AlertHandler {
	return &AlertHandler{uc: uc, pdfGen: pdfGen, defaultDays: defaultDays}
}

// LowStock artículos en o por debajo de su umbral (umbral > 0).
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSupplyItemListResponse(list))
}

// NearExpiration artículos que vencen dentro de la ventana (?days=N).
func (h *AlertHandler) NearExpiration(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.defaultDays)
	list, err := h.uc.NearExpiration(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSupplyItemListResponse(list))
}

// Report genera el reporte PDF combinado de alertas.
func (h *AlertHandler) Report(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.defaultDays)
	lowStock, err := h.uc.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	nearExpiration, err := h.uc.NearExpiration(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	bytes, err := h.pdfGen.Generate(lowStock, nearExpiration, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="alertas-inventario.pdf"`)
	return c.Send(bytes)
}
