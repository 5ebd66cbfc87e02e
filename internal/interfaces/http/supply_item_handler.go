package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/supir/suministros-api/internal/application/dto"
	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
)

// SupplyItemHandler maneja las peticiones HTTP de artículos de inventario.
type SupplyItemHandler struct {
	uc *usecase.SupplyItemUseCase
}

// NewSupplyItemHandler construye el handler.
func NewSupplyItemHandler(uc *usecase.SupplyItemUseCase) *SupplyItemHandler {
	return &SupplyItemHandler{uc: uc}
}

// List devuelve todos los artículos ordenados por título.
func (h *SupplyItemHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSupplyItemListResponse(list))
}

// GetByBarcode devuelve un artículo por barcode.
func (h *SupplyItemHandler) GetByBarcode(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Params("barcode"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(dto.ToSupplyItemResponse(item))
}

// Create da de alta un artículo. La referencia al proveedor debe resolver.
func (h *SupplyItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplyItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	exp, err := entity.ParseOptionalDate(in.ExpirationDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiration_date debe ser ISO (2006-01-02) o N/A"})
	}
	item := &entity.SupplyItem{
		Barcode:        in.Barcode,
		ProductTitle:   in.ProductTitle,
		ProductDetails: in.ProductDetails,
		Category:       in.Category,
		AvailableUnits: in.AvailableUnits,
		ThresholdStock: in.ThresholdStock,
		ExpirationDate: exp,
	}
	if in.SupplierCode != "" {
		item.Supplier = &entity.Supplier{Code: in.SupplierCode}
	}
	if err := h.uc.Add(item); err != nil {
		return supplyItemError(c, err)
	}
	out, err := h.uc.Get(item.Barcode) // relee con el proveedor resuelto
	if err != nil || out == nil {
		return c.Status(fiber.StatusCreated).JSON(dto.ToSupplyItemResponse(item))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSupplyItemResponse(out))
}

// Update actualiza los campos mutables de un artículo existente.
func (h *SupplyItemHandler) Update(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	var in dto.UpdateSupplyItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Get(barcode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	if in.ProductTitle != nil {
		item.ProductTitle = *in.ProductTitle
	}
	if in.ProductDetails != nil {
		item.ProductDetails = *in.ProductDetails
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.AvailableUnits != nil {
		item.AvailableUnits = *in.AvailableUnits
	}
	if in.ThresholdStock != nil {
		item.ThresholdStock = *in.ThresholdStock
	}
	if in.ExpirationDate != nil {
		exp, err := entity.ParseOptionalDate(*in.ExpirationDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiration_date debe ser ISO (2006-01-02) o N/A"})
		}
		item.ExpirationDate = exp
	}
	if in.SupplierCode != nil {
		if *in.SupplierCode == "" {
			item.Supplier = nil
		} else {
			item.Supplier = &entity.Supplier{Code: *in.SupplierCode}
		}
	}
	if err := h.uc.Save(item); err != nil {
		return supplyItemError(c, err)
	}
	out, err := h.uc.Get(barcode)
	if err != nil || out == nil {
		return c.JSON(dto.ToSupplyItemResponse(item))
	}
	return c.JSON(dto.ToSupplyItemResponse(out))
}

// Delete borra un artículo por barcode.
func (h *SupplyItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("barcode")); err != nil {
		return supplyItemError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMany borra un lote de barcodes; devuelve el resultado por barcode.
func (h *SupplyItemHandler) DeleteMany(c *fiber.Ctx) error {
	var in dto.DeleteManyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results := h.uc.RemoveMany(in.Keys)
	return c.JSON(dto.ToDeleteManyResponse(results))
}

// supplyItemError traduce los errores de dominio a códigos HTTP.
func supplyItemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode, título y categoría son requeridos; cantidades no negativas"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el barcode ya existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrSupplierNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_SUPPLIER", Message: "el proveedor referenciado no existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
