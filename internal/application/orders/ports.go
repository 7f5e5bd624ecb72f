package orders

import (
	"context"

	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// ReceiptPDFGenerator genera la ricevuta di prenotazione en PDF.
// Lo implementa infrastructure/pdf con Maroto.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, product *entity.Product) ([]byte, error)
}
