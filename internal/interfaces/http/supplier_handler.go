package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/supir/suministros-api/internal/application/dto"
	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List devuelve todos los proveedores ordenados por nombre.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToSupplierListResponse(list))
}

// GetByCode devuelve un proveedor por código.
func (h *SupplierHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	supplier, err := h.uc.Get(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if supplier == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(dto.ToSupplierResponse(supplier))
}

// Create da de alta un proveedor.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := entity.ParseOptionalDate(in.RecentSupplyDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "recent_supply_date debe ser ISO (2006-01-02) o N/A"})
	}
	supplier := &entity.Supplier{Code: in.Code, Name: in.Name, RecentSupplyDate: date}
	if err := h.uc.Add(supplier); err != nil {
		return supplierError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSupplierResponse(supplier))
}

// Update actualiza nombre y/o fecha de un proveedor existente.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.Get(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if supplier == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.RecentSupplyDate != nil {
		date, err := entity.ParseOptionalDate(*in.RecentSupplyDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "recent_supply_date debe ser ISO (2006-01-02) o N/A"})
		}
		supplier.RecentSupplyDate = date
	}
	if err := h.uc.Save(supplier); err != nil {
		return supplierError(c, err)
	}
	return c.JSON(dto.ToSupplierResponse(supplier))
}

// Delete borra un proveedor; 409 si está referenciado por artículos.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("code")); err != nil {
		return supplierError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMany borra un lote de códigos; devuelve el resultado por código.
func (h *SupplierHandler) DeleteMany(c *fiber.Ctx) error {
	var in dto.DeleteManyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results := h.uc.RemoveMany(in.Keys)
	return c.JSON(dto.ToDeleteManyResponse(results))
}

// supplierError traduce los errores de dominio a códigos HTTP.
func supplierError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código y nombre son requeridos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de proveedor ya existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	case errors.Is(err, domain.ErrSupplierReferenced):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENCED", Message: "el proveedor está referenciado por artículos de inventario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
