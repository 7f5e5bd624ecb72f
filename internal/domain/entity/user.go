package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Roles válidos para User.
const (
	RoleProducer   = "producer"   // produttore: publica lotes
	RoleWholesaler = "wholesaler" // grossista: reserva colli
)

// User representa un usuario registrado. Se crea en el registro y no se modifica nunca.
// Los tags JSON replican la forma persistida en el key-value store.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`    // normalizado: trim + minúsculas
	Password  string    `json:"password"` // texto plano, solo demo
	Role      string    `json:"role"`     // producer, wholesaler
	CreatedAt time.Time `json:"createdAt"`
}

// IsProducer indica si el usuario puede publicar productos.
func (u *User) IsProducer() bool { return u != nil && u.Role == RoleProducer }

// IsWholesaler indica si el usuario puede reservar colli.
func (u *User) IsWholesaler() bool { return u != nil && u.Role == RoleWholesaler }

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleProducer || role == RoleWholesaler
}

// NormalizeEmail aplica trim y minúsculas para comparar emails sin distinguir mayúsculas.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
