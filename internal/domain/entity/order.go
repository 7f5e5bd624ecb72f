package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una prenotazione. Solo avanza en el orden de orderFlow.
type OrderStatus string

const (
	OrderStatusReserved  OrderStatus = "prenotato"
	OrderStatusShipped   OrderStatus = "spedito"
	OrderStatusDelivered OrderStatus = "consegnato"
)

var orderFlow = []OrderStatus{OrderStatusReserved, OrderStatusShipped, OrderStatusDelivered}

// Valid indica si s es un estado conocido.
func (s OrderStatus) Valid() bool {
	return s.index() >= 0
}

// Next devuelve el estado siguiente. ok es false para consegnato o un estado desconocido.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	i := s.index()
	if i < 0 || i == len(orderFlow)-1 {
		return "", false
	}
	return orderFlow[i+1], true
}

func (s OrderStatus) index() int {
	for i, st := range orderFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// Order representa una reserva de colli hecha por un grossista.
// Los nombres son copias tomadas al reservar; LockedDailyPrice es el precio del producto en ese momento.
type Order struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	ProducerName     string          `json:"producerName"`
	WholesalerID     string          `json:"wholesalerId"`
	WholesalerName   string          `json:"wholesalerName"`
	Quantity         int             `json:"quantity"`
	LockedDailyPrice decimal.Decimal `json:"lockedDailyPrice"`
	Status           OrderStatus     `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Total importe de la reserva al precio bloqueado.
func (o *Order) Total() decimal.Decimal {
	return o.LockedDailyPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}
