package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TraceabilityDTO datos de trazabilidad del lote.
type TraceabilityDTO struct {
	Company         string `json:"company"`
	Area            string `json:"area"`
	Treatments      string `json:"treatments"`
	ResidueAnalysis string `json:"residue_analysis"`
}

// PublishProductRequest entrada para publicar un lote (solo productores).
type PublishProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Quantity     int             `json:"quantity" validate:"min=1"`
	Price        decimal.Decimal `json:"price"`
	HarvestDate  string          `json:"harvest_date"`
	Photo        string          `json:"photo"`
	Traceability TraceabilityDTO `json:"traceability"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	ProducerID   string          `json:"producer_id"`
	ProducerName string          `json:"producer_name"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Available    int             `json:"available"`
	Price        decimal.Decimal `json:"price"`
	HarvestDate  string          `json:"harvest_date"`
	Photo        string          `json:"photo"`
	Traceability TraceabilityDTO `json:"traceability"`
	SoldOut      bool            `json:"sold_out"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PublishProductResponse salida de la publicación.
type PublishProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// ProductListResponse lista de productos, más recientes primero.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
