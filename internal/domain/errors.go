package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El texto es el mensaje que ve el usuario; el detalle se agrega con fmt.Errorf("%w: ...").
var (
	ErrDuplicateEmail           = errors.New("email già registrata")
	ErrInvalidCredentials       = errors.New("credenziali non valide")
	ErrUnauthorized             = errors.New("operazione non autorizzata")
	ErrProductNotFound          = errors.New("prodotto non trovato")
	ErrOrderNotFound            = errors.New("ordine non trovato")
	ErrInvalidQuantity          = errors.New("inserisci una quantità valida")
	ErrInvalidPrice             = errors.New("inserisci un prezzo valido")
	ErrInvalidRole              = errors.New("ruolo non valido")
	ErrInsufficientAvailability = errors.New("disponibilità insufficiente")
	ErrInvalidStatusTransition  = errors.New("transizione di stato non consentita")
)
