package orders

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pope-market/internal/application/dto"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain"
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

const msgReserved = "Prenotazione registrata con prezzo bloccato."

// OrderUseCase reservas de colli y ciclo de vida de las órdenes (prenotato → spedito → consegnato).
type OrderUseCase struct {
	store *state.Store
	now   func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(store *state.Store) *OrderUseCase {
	return &OrderUseCase{store: store, now: time.Now}
}

// Reserve reserva rawQuantity colli del producto para el grossista logueado.
// Descuenta Available y crea la orden con el precio del producto bloqueado, en una sola operación.
func (uc *OrderUseCase) Reserve(ctx context.Context, productID, rawQuantity string) (*dto.ReserveResponse, error) {
	var out *dto.ReserveResponse
	err := uc.store.Update(ctx, func(st *state.State) error {
		wholesaler := st.CurrentUser()
		if !wholesaler.IsWholesaler() {
			return fmt.Errorf("%w: solo i grossisti possono prenotare", domain.ErrUnauthorized)
		}
		product := st.ProductByID(productID)
		if product == nil {
			return domain.ErrProductNotFound
		}
		qty, err := parseQuantity(rawQuantity)
		if err != nil {
			return err
		}
		if qty > product.Available {
			return fmt.Errorf("%w: restano %d colli", domain.ErrInsufficientAvailability, product.Available)
		}

		product.Available -= qty
		order := &entity.Order{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			ProductName:      product.Name,
			ProducerName:     product.ProducerName,
			WholesalerID:     wholesaler.ID,
			WholesalerName:   wholesaler.Name,
			Quantity:         qty,
			LockedDailyPrice: product.Price,
			Status:           entity.OrderStatusReserved,
			CreatedAt:        uc.now().UTC(),
		}
		st.PrependOrder(order)
		out = &dto.ReserveResponse{Message: msgReserved, Order: *toOrderResponse(order, wholesaler, product)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus avanza la orden un paso. Solo el productor dueño del producto puede hacerlo y
// requested debe ser exactamente el estado siguiente; requested vacío avanza al siguiente.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, requested string) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.store.Update(ctx, func(st *state.State) error {
		producer := st.CurrentUser()
		if !producer.IsProducer() {
			return fmt.Errorf("%w: solo i produttori possono aggiornare lo stato", domain.ErrUnauthorized)
		}
		order := st.OrderByID(orderID)
		if order == nil {
			return domain.ErrOrderNotFound
		}
		product := st.ProductByID(order.ProductID)
		if !product.OwnedBy(producer.ID) {
			return fmt.Errorf("%w: l'ordine non riguarda un tuo prodotto", domain.ErrUnauthorized)
		}
		next, ok := order.Status.Next()
		if !ok {
			return fmt.Errorf("%w: l'ordine è già %s", domain.ErrInvalidStatusTransition, order.Status)
		}
		if requested != "" && entity.OrderStatus(requested) != next {
			return fmt.Errorf("%w: da %s a %s", domain.ErrInvalidStatusTransition, order.Status, requested)
		}
		order.Status = next
		out = toOrderResponse(order, producer, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve las órdenes visibles para la sesión: el grossista ve las suyas,
// el productor las de sus productos. Más recientes primero.
func (uc *OrderUseCase) List(_ context.Context) (*dto.OrderListResponse, error) {
	var (
		items []dto.OrderResponse
		err   error
	)
	uc.store.View(func(st *state.State) {
		current := st.CurrentUser()
		if current == nil {
			err = domain.ErrUnauthorized
			return
		}
		items = make([]dto.OrderResponse, 0)
		for _, o := range st.Orders {
			product := st.ProductByID(o.ProductID)
			if !canView(current, o, product) {
				continue
			}
			items = append(items, *toOrderResponse(o, current, product))
		}
	})
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una orden visible para la sesión.
func (uc *OrderUseCase) GetByID(_ context.Context, id string) (*dto.OrderResponse, error) {
	var (
		out *dto.OrderResponse
		err error
	)
	uc.store.View(func(st *state.State) {
		order := st.OrderByID(id)
		if order == nil {
			err = domain.ErrOrderNotFound
			return
		}
		current := st.CurrentUser()
		product := st.ProductByID(order.ProductID)
		if !canView(current, order, product) {
			err = domain.ErrUnauthorized
			return
		}
		out = toOrderResponse(order, current, product)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parseQuantity interpreta la cantidad del formulario: entero >= 1.
func parseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		return 0, domain.ErrInvalidQuantity
	}
	return qty, nil
}

// canView: el grossista que reservó o el productor dueño del producto.
func canView(user *entity.User, order *entity.Order, product *entity.Product) bool {
	switch {
	case user.IsWholesaler():
		return order.WholesalerID == user.ID
	case user.IsProducer():
		return product.OwnedBy(user.ID)
	}
	return false
}

func toOrderResponse(o *entity.Order, viewer *entity.User, product *entity.Product) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:               o.ID,
		ProductID:        o.ProductID,
		ProductName:      o.ProductName,
		ProducerName:     o.ProducerName,
		WholesalerID:     o.WholesalerID,
		WholesalerName:   o.WholesalerName,
		Quantity:         o.Quantity,
		LockedDailyPrice: o.LockedDailyPrice,
		Total:            o.Total(),
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
	}
	if viewer.IsProducer() && product.OwnedBy(viewer.ID) {
		if next, ok := o.Status.Next(); ok {
			out.NextStatus = string(next)
		}
	}
	return out
}
