package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain"
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// ReceiptUseCase genera la ricevuta di prenotazione (PDF) de una orden.
type ReceiptUseCase struct {
	store     *state.Store
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando el generador.
func NewReceiptUseCase(store *state.Store, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{store: store, generator: generator}
}

// Download genera el PDF de la orden para el grossista que la hizo o el productor dueño del producto.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrOrderNotFound    si la orden no existe.
//   - domain.ErrUnauthorized     si la sesión no puede ver la orden.
func (uc *ReceiptUseCase) Download(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	var (
		order   entity.Order
		product *entity.Product
	)
	uc.store.View(func(st *state.State) {
		o := st.OrderByID(orderID)
		if o == nil {
			err = domain.ErrOrderNotFound
			return
		}
		p := st.ProductByID(o.ProductID)
		if !canView(st.CurrentUser(), o, p) {
			err = domain.ErrUnauthorized
			return
		}
		// Copias: el generador trabaja fuera del lock.
		order = *o
		if p != nil {
			cp := *p
			product = &cp
		}
	})
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, &order, product)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("prenotazione_%s.pdf", shortID(order.ID)), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
