package dto

import "time"

// RegisterRequest entrada para registro: nombre, email, password y rol (producer | wholesaler).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=producer wholesaler"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse salida del registro; el usuario no queda logueado.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse salida del login con el usuario de la sesión.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// SessionResponse usuario de la sesión actual (nil si no hay nadie logueado).
type SessionResponse struct {
	User *UserResponse `json:"user"`
}
