package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReserveRequest entrada para reservar colli. Quantity llega como texto desde el formulario.
type ReserveRequest struct {
	Quantity string `json:"quantity" validate:"required"`
}

// UpdateOrderStatusRequest entrada para avanzar el estado. Status vacío = siguiente estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=prenotato spedito consegnato"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	ProducerName     string          `json:"producer_name"`
	WholesalerID     string          `json:"wholesaler_id"`
	WholesalerName   string          `json:"wholesaler_name"`
	Quantity         int             `json:"quantity"`
	LockedDailyPrice decimal.Decimal `json:"locked_daily_price"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	NextStatus       string          `json:"next_status,omitempty"` // solo para el productor dueño
	CreatedAt        time.Time       `json:"created_at"`
}

// ReserveResponse salida de la reserva.
type ReserveResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

// OrderListResponse órdenes visibles para el usuario de la sesión.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
