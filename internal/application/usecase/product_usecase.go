package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/pope-market/internal/application/dto"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain"
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

const msgPublished = "Prodotto pubblicato correttamente."

// ProductUseCase casos de uso del catálogo: publicar lotes y consultarlos.
// Available solo cambia vía reservas (ver orders.OrderUseCase).
type ProductUseCase struct {
	store *state.Store
	now   func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store) *ProductUseCase {
	return &ProductUseCase{store: store, now: time.Now}
}

// Publish publica un lote del productor logueado. Available inicia igual a Quantity
// y el producto queda primero en el listado.
func (uc *ProductUseCase) Publish(ctx context.Context, in dto.PublishProductRequest) (*dto.PublishProductResponse, error) {
	var out *dto.PublishProductResponse
	err := uc.store.Update(ctx, func(st *state.State) error {
		producer := st.CurrentUser()
		if !producer.IsProducer() {
			return fmt.Errorf("%w: solo i produttori possono pubblicare prodotti", domain.ErrUnauthorized)
		}
		if in.Quantity < 1 {
			return domain.ErrInvalidQuantity
		}
		if !in.Price.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidPrice
		}
		product := &entity.Product{
			ID:           uuid.New().String(),
			ProducerID:   producer.ID,
			ProducerName: producer.Name,
			Name:         strings.TrimSpace(in.Name),
			Quantity:     in.Quantity,
			Available:    in.Quantity,
			Price:        in.Price,
			HarvestDate:  in.HarvestDate,
			Photo:        in.Photo,
			Traceability: entity.Traceability{
				Company:         strings.TrimSpace(in.Traceability.Company),
				Area:            strings.TrimSpace(in.Traceability.Area),
				Treatments:      strings.TrimSpace(in.Traceability.Treatments),
				ResidueAnalysis: strings.TrimSpace(in.Traceability.ResidueAnalysis),
			},
			CreatedAt: uc.now().UTC(),
		}
		st.PrependProduct(product)
		out = &dto.PublishProductResponse{Message: msgPublished, Product: *ToProductResponse(product)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(_ context.Context, id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	uc.store.View(func(st *state.State) {
		out = ToProductResponse(st.ProductByID(id))
	})
	if out == nil {
		return nil, domain.ErrProductNotFound
	}
	return out, nil
}

// List lista todos los productos, más recientes primero.
func (uc *ProductUseCase) List(_ context.Context) *dto.ProductListResponse {
	var items []dto.ProductResponse
	uc.store.View(func(st *state.State) {
		items = make([]dto.ProductResponse, 0, len(st.Products))
		for _, p := range st.Products {
			items = append(items, *ToProductResponse(p))
		}
	})
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// ToProductResponse mapea la entidad a la salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		ProducerID:   p.ProducerID,
		ProducerName: p.ProducerName,
		Name:         p.Name,
		Quantity:     p.Quantity,
		Available:    p.Available,
		Price:        p.Price,
		HarvestDate:  p.HarvestDate,
		Photo:        p.Photo,
		Traceability: dto.TraceabilityDTO{
			Company:         p.Traceability.Company,
			Area:            p.Traceability.Area,
			Treatments:      p.Traceability.Treatments,
			ResidueAnalysis: p.Traceability.ResidueAnalysis,
		},
		SoldOut:   p.SoldOut(),
		CreatedAt: p.CreatedAt,
	}
}
