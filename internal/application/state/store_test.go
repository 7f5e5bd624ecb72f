package state_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain/entity"
	"github.com/jhoicas/pope-market/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// failingKV delega en un store en memoria pero falla SetMany cuando fail=true.
type failingKV struct {
	*memory.KVStore
	fail bool
}

func (f *failingKV) SetMany(ctx context.Context, entries map[string][]byte) error {
	if f.fail {
		return errors.New("disco lleno")
	}
	return f.KVStore.SetMany(ctx, entries)
}

func sampleUser(id, role string) *entity.User {
	return &entity.User{
		ID: id, Name: "Utente " + id, Email: id + "@pope.it",
		Password: "pw", Role: role, CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un store vacío arranca sin datos y sin sesión.
func TestOpen_EmptyStore(t *testing.T) {
	s, err := state.Open(context.Background(), memory.NewKVStore("pope_market_"), nil)
	require.NoError(t, err)

	s.View(func(st *state.State) {
		assert.True(t, st.IsEmpty())
		assert.Nil(t, st.CurrentUser())
		assert.Empty(t, st.Orders)
	})
}

// Lo que persiste Update se recupera igual al reabrir sobre el mismo KV.
func TestUpdate_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore("pope_market_")
	s, err := state.Open(ctx, kv, nil)
	require.NoError(t, err)

	producer := sampleUser("p1", entity.RoleProducer)
	err = s.Update(ctx, func(st *state.State) error {
		st.AddUser(producer)
		st.PrependProduct(&entity.Product{
			ID: "prod1", ProducerID: "p1", Name: "Peperoni", Quantity: 10, Available: 10,
			Price: decimal.RequireFromString("18.5"),
		})
		st.CurrentUserID = "p1"
		return nil
	})
	require.NoError(t, err)

	reopened, err := state.Open(ctx, kv, nil)
	require.NoError(t, err)
	reopened.View(func(st *state.State) {
		require.NotNil(t, st.CurrentUser())
		assert.Equal(t, "p1", st.CurrentUser().ID)
		require.Len(t, st.Products, 1)
		assert.True(t, st.Products[0].Price.Equal(decimal.RequireFromString("18.5")))
	})

	assert.ElementsMatch(t,
		[]string{"pope_market_users", "pope_market_products", "pope_market_orders", "pope_market_currentUser"},
		kv.Keys(), "se persisten exactamente las cuatro claves con prefijo")
}

// currentUser se guarda como objeto User completo, o null si no hay sesión.
func TestUpdate_CurrentUserShape(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore("")
	s, err := state.Open(ctx, kv, nil)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, func(st *state.State) error {
		st.AddUser(sampleUser("w1", entity.RoleWholesaler))
		return nil
	}))
	raw, err := kv.Get(ctx, state.KeyCurrentUser)
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(raw))

	require.NoError(t, s.Update(ctx, func(st *state.State) error {
		st.CurrentUserID = "w1"
		return nil
	}))
	raw, err = kv.Get(ctx, state.KeyCurrentUser)
	require.NoError(t, err)
	var u map[string]any
	require.NoError(t, json.Unmarshal(raw, &u))
	assert.Equal(t, "w1", u["id"])
	assert.Equal(t, "wholesaler", u["role"])
}

// Si fn falla, nada cambia: ni en memoria ni en el KV.
func TestUpdate_RollbackOnFnError(t *testing.T) {
	ctx := context.Background()
	s, err := state.Open(ctx, memory.NewKVStore(""), nil)
	require.NoError(t, err)

	boom := errors.New("validación")
	err = s.Update(ctx, func(st *state.State) error {
		st.AddUser(sampleUser("u1", entity.RoleProducer))
		return boom
	})
	require.ErrorIs(t, err, boom)

	s.View(func(st *state.State) {
		assert.Empty(t, st.Users, "el usuario agregado antes del error no debe quedar")
	})
}

// Si la persistencia falla, el estado en memoria vuelve a como estaba.
func TestUpdate_RollbackOnPersistError(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KVStore: memory.NewKVStore("")}
	s, err := state.Open(ctx, kv, nil)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, func(st *state.State) error {
		st.AddUser(sampleUser("u1", entity.RoleProducer))
		st.PrependProduct(&entity.Product{ID: "prod1", ProducerID: "u1", Quantity: 5, Available: 5, Price: decimal.NewFromInt(3)})
		return nil
	}))

	kv.fail = true
	err = s.Update(ctx, func(st *state.State) error {
		st.ProductByID("prod1").Available = 0
		return nil
	})
	require.Error(t, err)

	s.View(func(st *state.State) {
		assert.Equal(t, 5, st.ProductByID("prod1").Available, "la mutación no persistida se revierte")
	})
}

// Una sesión que apunta a un usuario inexistente se descarta al cargar.
func TestOpen_DanglingSessionDropped(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore("")
	ghost, _ := json.Marshal(sampleUser("ghost", entity.RoleProducer))
	require.NoError(t, kv.Set(ctx, state.KeyCurrentUser, ghost))
	require.NoError(t, kv.Set(ctx, state.KeyUsers, []byte("[]")))

	s, err := state.Open(ctx, kv, nil)
	require.NoError(t, err)
	s.View(func(st *state.State) {
		assert.Nil(t, st.CurrentUser())
	})
}

// JSON corrupto en una clave es un error de carga.
func TestOpen_CorruptKey(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore("")
	require.NoError(t, kv.Set(ctx, state.KeyProducts, []byte("{not json")))

	_, err := state.Open(ctx, kv, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products")
}

// Precios numéricos (no string) también se aceptan al cargar.
func TestOpen_NumericPriceAccepted(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore("")
	require.NoError(t, kv.Set(ctx, state.KeyProducts, []byte(`[{"id":"x","price":18.5,"quantity":3,"available":3}]`)))

	s, err := state.Open(ctx, kv, nil)
	require.NoError(t, err)
	s.View(func(st *state.State) {
		require.NotNil(t, st.ProductByID("x"))
		assert.True(t, st.ProductByID("x").Price.Equal(decimal.RequireFromString("18.5")))
	})
}

func TestState_UserByEmailIsCaseInsensitive(t *testing.T) {
	st := &state.State{}
	st.AddUser(sampleUser("u1", entity.RoleProducer))
	assert.NotNil(t, st.UserByEmail("  U1@POPE.IT "))
	assert.Nil(t, st.UserByEmail("u2@pope.it"))
}
