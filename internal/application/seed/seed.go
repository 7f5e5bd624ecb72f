// Package seed carga los datos demo del marketplace: un productor, un grossista y dos lotes
// con trazabilidad completa. Solo corre sobre un estado vacío.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// Credenciales demo (texto plano, solo demo).
const (
	DemoProducerEmail   = "produttore@pope.it"
	DemoWholesalerEmail = "grossista@pope.it"
	DemoPassword        = "password123"
)

// Run agrega los datos demo si no hay usuarios ni productos y persiste.
// Devuelve true si sembró; false si ya había datos.
func Run(ctx context.Context, store *state.Store, now time.Time) (bool, error) {
	empty := false
	store.View(func(st *state.State) { empty = st.IsEmpty() })
	if !empty {
		return false, nil
	}

	seeded := false
	err := store.Update(ctx, func(st *state.State) error {
		if !st.IsEmpty() {
			return nil
		}
		now = now.UTC()
		harvest := now.Format("2006-01-02")

		producer := &entity.User{
			ID:        uuid.New().String(),
			Name:      "Azienda Agricola Popé",
			Email:     DemoProducerEmail,
			Password:  DemoPassword,
			Role:      entity.RoleProducer,
			CreatedAt: now,
		}
		wholesaler := &entity.User{
			ID:        uuid.New().String(),
			Name:      "Grossisti Centro Italia",
			Email:     DemoWholesalerEmail,
			Password:  DemoPassword,
			Role:      entity.RoleWholesaler,
			CreatedAt: now,
		}

		products := []*entity.Product{
			{
				ID:           uuid.New().String(),
				ProducerID:   producer.ID,
				ProducerName: producer.Name,
				Name:         "Peperoni rossi",
				Quantity:     120,
				Available:    120,
				Price:        decimal.RequireFromString("18.50"),
				HarvestDate:  harvest,
				Photo:        "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?auto=format&fit=crop&w=800&q=60",
				Traceability: entity.Traceability{
					Company:         "Azienda Agricola Popé",
					Area:            "Piana del Sele",
					Treatments:      "Difesa integrata",
					ResidueAnalysis: "Conforme ai limiti UE, report AR-1456",
				},
				CreatedAt: now,
			},
			{
				ID:           uuid.New().String(),
				ProducerID:   producer.ID,
				ProducerName: producer.Name,
				Name:         "Pomodori datterino",
				Quantity:     90,
				Available:    90,
				Price:        decimal.NewFromInt(22),
				HarvestDate:  harvest,
				Photo:        "https://images.unsplash.com/photo-1546470427-e5ac89cd0b8b?auto=format&fit=crop&w=800&q=60",
				Traceability: entity.Traceability{
					Company:         "Azienda Agricola Popé",
					Area:            "Agro Nocerino-Sarnese",
					Treatments:      "Controllo biologico dei parassiti",
					ResidueAnalysis: "Report LAB-882, nessun residuo critico",
				},
				CreatedAt: now,
			},
		}

		st.AddUser(producer)
		st.AddUser(wholesaler)
		st.Products = append(st.Products, products...)
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
