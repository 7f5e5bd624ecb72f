package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pope-market/internal/application/seed"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain/entity"
	"github.com/jhoicas/pope-market/internal/infrastructure/memory"
)

func TestRun_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	s, err := state.Open(ctx, memory.NewKVStore(""), nil)
	require.NoError(t, err)

	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	seeded, err := seed.Run(ctx, s, now)
	require.NoError(t, err)
	assert.True(t, seeded)

	s.View(func(st *state.State) {
		require.Len(t, st.Users, 2)
		producer := st.UserByEmail(seed.DemoProducerEmail)
		require.NotNil(t, producer)
		assert.Equal(t, entity.RoleProducer, producer.Role)
		assert.Equal(t, seed.DemoPassword, producer.Password)
		assert.NotNil(t, st.UserByEmail(seed.DemoWholesalerEmail))

		require.Len(t, st.Products, 2)
		for _, p := range st.Products {
			assert.Equal(t, p.Quantity, p.Available)
			assert.True(t, p.OwnedBy(producer.ID))
			assert.Equal(t, "2024-05-02", p.HarvestDate)
			assert.NotEmpty(t, p.Traceability.Area)
		}
		assert.True(t, st.Products[0].Price.Equal(decimal.RequireFromString("18.50")))
		assert.Empty(t, st.Orders)
		assert.Nil(t, st.CurrentUser(), "sembrar no abre sesión")
	})
}

// Con datos existentes no se toca nada.
func TestRun_SkipsWhenDataExists(t *testing.T) {
	ctx := context.Background()
	s, err := state.Open(ctx, memory.NewKVStore(""), nil)
	require.NoError(t, err)

	seeded, err := seed.Run(ctx, s, time.Now())
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = seed.Run(ctx, s, time.Now())
	require.NoError(t, err)
	assert.False(t, seeded)
	s.View(func(st *state.State) {
		assert.Len(t, st.Users, 2)
		assert.Len(t, st.Products, 2)
	})
}
