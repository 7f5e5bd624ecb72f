package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Traceability datos de trazabilidad del lote (texto libre).
type Traceability struct {
	Company         string `json:"company"`
	Area            string `json:"area"`
	Treatments      string `json:"treatments"`
	ResidueAnalysis string `json:"residueAnalysis"`
}

// Product representa un lote publicado por un productor.
// Quantity y Price no cambian tras la publicación; Available baja con cada reserva.
type Product struct {
	ID           string          `json:"id"`
	ProducerID   string          `json:"producerId"`
	ProducerName string          `json:"producerName"` // copia del nombre al publicar
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`    // colli totales del lote
	Available    int             `json:"available"`   // 0 <= Available <= Quantity
	Price        decimal.Decimal `json:"price"`       // precio por collo
	HarvestDate  string          `json:"harvestDate"` // YYYY-MM-DD
	Photo        string          `json:"photo"`
	Traceability Traceability    `json:"traceability"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OwnedBy indica si el producto pertenece al usuario dado.
func (p *Product) OwnedBy(userID string) bool {
	return p != nil && userID != "" && p.ProducerID == userID
}

// SoldOut indica si no quedan colli disponibles.
func (p *Product) SoldOut() bool { return p.Available <= 0 }
