package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pope-market/internal/application/dto"
	"github.com/jhoicas/pope-market/internal/application/orders"
	"github.com/jhoicas/pope-market/pkg/logger"
)

// OrderHandler maneja prenotazioni, cambios de estado y ricevute (protegido por sesión).
type OrderHandler struct {
	uc      *orders.OrderUseCase
	receipt *orders.ReceiptUseCase
	log     *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase, receipt *orders.ReceiptUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, receipt: receipt, log: log}
}

// Reserve godoc
// @Summary      Reservar colli de un lote al precio del día (solo wholesaler)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.ReserveRequest  true  "quantity (texto, entero positivo)"
// @Success      201   {object}  dto.ReserveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reservations [post]
func (h *OrderHandler) Reserve(c *fiber.Ctx) error {
	var in dto.ReserveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if strings.TrimSpace(in.Quantity) == "" {
		return validation(c, "la quantità è obbligatoria")
	}
	out, err := h.uc.Reserve(c.Context(), c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Órdenes visibles para la sesión (propias o de lotes propios)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una orden
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar el estado de una orden (prenotato → spedito → consegnato)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true   "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  false  "status destino; vacío = siguiente"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), strings.TrimSpace(in.Status))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar la ricevuta di prenotazione en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipt.Download(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}
