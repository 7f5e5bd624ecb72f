package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pope-market/internal/application/dto"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/domain"
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// Mensajes para el usuario.
const (
	msgRegistered = "Registrazione completata. Ora puoi fare login."
	msgWelcome    = "Benvenuto %s."
	msgLoggedOut  = "Sessione chiusa."
)

// AuthUseCase casos de uso de autenticación: registro, login, logout y sesión actual.
// Las credenciales se guardan y comparan en texto plano: es un marketplace demo.
type AuthUseCase struct {
	store *state.Store
	now   func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store *state.Store) *AuthUseCase {
	return &AuthUseCase{store: store, now: time.Now}
}

// Register crea un usuario. Devuelve ErrDuplicateEmail si el email (sin distinguir mayúsculas) ya existe.
// No inicia sesión.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var out *dto.RegisterResponse
	err := uc.store.Update(ctx, func(st *state.State) error {
		if st.UserByEmail(in.Email) != nil {
			return domain.ErrDuplicateEmail
		}
		if !entity.ValidRole(in.Role) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidRole, in.Role)
		}
		user := &entity.User{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(in.Name),
			Email:     entity.NormalizeEmail(in.Email),
			Password:  in.Password,
			Role:      in.Role,
			CreatedAt: uc.now().UTC(),
		}
		st.AddUser(user)
		out = &dto.RegisterResponse{Message: msgRegistered, User: *ToUserResponse(user)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login busca un usuario con email normalizado y password exacto y lo deja como sesión actual.
// Email inexistente y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out *dto.LoginResponse
	err := uc.store.Update(ctx, func(st *state.State) error {
		user := st.UserByEmail(in.Email)
		if user == nil || user.Password != in.Password {
			return domain.ErrInvalidCredentials
		}
		st.CurrentUserID = user.ID
		out = &dto.LoginResponse{
			Message: fmt.Sprintf(msgWelcome, user.Name),
			User:    *ToUserResponse(user),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Logout cierra la sesión actual. No afecta a Users.
func (uc *AuthUseCase) Logout(ctx context.Context) (*dto.MessageResponse, error) {
	err := uc.store.Update(ctx, func(st *state.State) error {
		st.CurrentUserID = ""
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: msgLoggedOut}, nil
}

// CurrentUser devuelve el usuario de la sesión, o nil si no hay nadie logueado.
func (uc *AuthUseCase) CurrentUser(_ context.Context) *dto.UserResponse {
	var out *dto.UserResponse
	uc.store.View(func(st *state.State) {
		out = ToUserResponse(st.CurrentUser())
	})
	return out
}

// ToUserResponse mapea la entidad a la salida pública (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
