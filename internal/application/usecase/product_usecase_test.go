package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pope-market/internal/application/auth"
	"github.com/jhoicas/pope-market/internal/application/dto"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/application/usecase"
	"github.com/jhoicas/pope-market/internal/domain"
	"github.com/jhoicas/pope-market/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	auth     *auth.AuthUseCase
	products *usecase.ProductUseCase
}

func newEnv(t *testing.T) env {
	t.Helper()
	s, err := state.Open(context.Background(), memory.NewKVStore(""), nil)
	require.NoError(t, err)
	return env{auth: auth.NewAuthUseCase(s), products: usecase.NewProductUseCase(s)}
}

func (e env) loginAs(t *testing.T, email, role string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.auth.Register(ctx, dto.RegisterRequest{Name: "Azienda " + role, Email: email, Password: "pw", Role: role})
	require.NoError(t, err)
	_, err = e.auth.Login(ctx, dto.LoginRequest{Email: email, Password: "pw"})
	require.NoError(t, err)
}

func validLot() dto.PublishProductRequest {
	return dto.PublishProductRequest{
		Name:        "  Peperoni rossi ",
		Quantity:    120,
		Price:       decimal.RequireFromString("18.50"),
		HarvestDate: "2024-05-02",
		Traceability: dto.TraceabilityDTO{
			Company: "Azienda Agricola Popé", Area: " Piana del Sele ",
			Treatments: "Difesa integrata", ResidueAnalysis: "AR-1456",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Publish
// ──────────────────────────────────────────────────────────────────────────────

// Available arranca igual a Quantity y el nombre del productor se copia.
func TestPublish_ProducerPublishesLot(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "prod@pope.it", "producer")

	out, err := e.products.Publish(context.Background(), validLot())
	require.NoError(t, err)

	assert.Equal(t, "Prodotto pubblicato correttamente.", out.Message)
	p := out.Product
	assert.Equal(t, "Peperoni rossi", p.Name)
	assert.Equal(t, 120, p.Quantity)
	assert.Equal(t, 120, p.Available)
	assert.Equal(t, "Azienda producer", p.ProducerName)
	assert.Equal(t, "Piana del Sele", p.Traceability.Area)
	assert.False(t, p.SoldOut)
}

// El último publicado queda primero.
func TestPublish_NewestFirst(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "prod@pope.it", "producer")

	first := validLot()
	second := validLot()
	second.Name = "Pomodori datterino"
	_, err := e.products.Publish(context.Background(), first)
	require.NoError(t, err)
	_, err = e.products.Publish(context.Background(), second)
	require.NoError(t, err)

	list := e.products.List(context.Background())
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Pomodori datterino", list.Items[0].Name)
}

func TestPublish_RejectsNonProducer(t *testing.T) {
	e := newEnv(t)

	_, err := e.products.Publish(context.Background(), validLot())
	require.ErrorIs(t, err, domain.ErrUnauthorized, "sin sesión")

	e.loginAs(t, "gross@pope.it", "wholesaler")
	_, err = e.products.Publish(context.Background(), validLot())
	require.ErrorIs(t, err, domain.ErrUnauthorized, "un grossista no publica")

	assert.Equal(t, 0, e.products.List(context.Background()).Total)
}

func TestPublish_RejectsInvalidQuantityAndPrice(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "prod@pope.it", "producer")

	lot := validLot()
	lot.Quantity = 0
	_, err := e.products.Publish(context.Background(), lot)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	lot = validLot()
	lot.Price = decimal.Zero
	_, err = e.products.Publish(context.Background(), lot)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)

	lot.Price = decimal.NewFromInt(-3)
	_, err = e.products.Publish(context.Background(), lot)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, "prod@pope.it", "producer")
	out, err := e.products.Publish(context.Background(), validLot())
	require.NoError(t, err)

	got, err := e.products.GetByID(context.Background(), out.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Product.ID, got.ID)

	_, err = e.products.GetByID(context.Background(), "non-esiste")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
