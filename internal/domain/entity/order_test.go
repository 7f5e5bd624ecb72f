package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// OrderStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStatus_Next(t *testing.T) {
	cases := []struct {
		from entity.OrderStatus
		want entity.OrderStatus
		ok   bool
	}{
		{entity.OrderStatusReserved, entity.OrderStatusShipped, true},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered, true},
		{entity.OrderStatusDelivered, "", false},
		{entity.OrderStatus("annullato"), "", false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			next, ok := tc.from.Next()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, next)
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entity.OrderStatusReserved.Valid())
	assert.True(t, entity.OrderStatusShipped.Valid())
	assert.True(t, entity.OrderStatusDelivered.Valid())
	assert.False(t, entity.OrderStatus("").Valid())
	assert.False(t, entity.OrderStatus("PRENOTATO").Valid())
}

// Total = precio bloqueado × colli.
func TestOrder_Total(t *testing.T) {
	o := &entity.Order{Quantity: 30, LockedDailyPrice: decimal.RequireFromString("18.50")}
	assert.True(t, o.Total().Equal(decimal.NewFromInt(555)), "got %s", o.Total())
}
