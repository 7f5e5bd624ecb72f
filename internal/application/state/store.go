package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/pope-market/internal/domain/entity"
	"github.com/jhoicas/pope-market/internal/domain/repository"
	"github.com/jhoicas/pope-market/pkg/logger"
)

// Claves lógicas del key-value store (el adaptador agrega su prefijo).
const (
	KeyUsers       = "users"
	KeyProducts    = "products"
	KeyOrders      = "orders"
	KeyCurrentUser = "currentUser"
)

// Store es el dueño exclusivo del estado del marketplace durante toda la vida del proceso.
// Todas las operaciones se serializan: una reserva (leer, validar, descontar, insertar) nunca
// se intercala con otra operación.
type Store struct {
	mu    sync.RWMutex
	kv    repository.KVStore
	log   *logger.Logger
	state *State
}

// Open construye el Store cargando las cuatro claves desde kv. Las claves ausentes usan su valor por defecto.
func Open(ctx context.Context, kv repository.KVStore, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{kv: kv, log: log.Component("state")}
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.state = st
	s.log.Debug().
		Int("users", len(st.Users)).
		Int("products", len(st.Products)).
		Int("orders", len(st.Orders)).
		Bool("session", st.CurrentUserID != "").
		Msg("estado cargado")
	return s, nil
}

// Update ejecuta fn con acceso exclusivo al estado y, si fn no falla, persiste las cuatro claves.
// Si fn o la persistencia fallan, el estado en memoria vuelve a como estaba antes de la llamada.
func (s *Store) Update(ctx context.Context, fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.state.clone()
	if err := fn(s.state); err != nil {
		s.state = backup
		return err
	}
	if err := s.persist(ctx, s.state); err != nil {
		s.state = backup
		s.log.Error().Err(err).Msg("persistir estado")
		return err
	}
	return nil
}

// View ejecuta fn con acceso de solo lectura. fn no debe modificar ni retener punteros del estado.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

func (s *Store) load(ctx context.Context) (*State, error) {
	st := &State{}
	if err := s.loadKey(ctx, KeyUsers, &st.Users); err != nil {
		return nil, err
	}
	if err := s.loadKey(ctx, KeyProducts, &st.Products); err != nil {
		return nil, err
	}
	if err := s.loadKey(ctx, KeyOrders, &st.Orders); err != nil {
		return nil, err
	}

	var current *entity.User
	if err := s.loadKey(ctx, KeyCurrentUser, &current); err != nil {
		return nil, err
	}
	// Solo se conserva el ID; una sesión hacia un usuario inexistente se descarta.
	if current != nil && st.UserByID(current.ID) != nil {
		st.CurrentUserID = current.ID
	}
	return st, nil
}

func (s *Store) loadKey(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("leer %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, st *State) error {
	entries := make(map[string][]byte, 4)

	encode := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("codificar %s: %w", key, err)
		}
		entries[key] = raw
		return nil
	}

	users, products, orders := st.Users, st.Products, st.Orders
	if users == nil {
		users = []*entity.User{}
	}
	if products == nil {
		products = []*entity.Product{}
	}
	if orders == nil {
		orders = []*entity.Order{}
	}
	if err := encode(KeyUsers, users); err != nil {
		return err
	}
	if err := encode(KeyProducts, products); err != nil {
		return err
	}
	if err := encode(KeyOrders, orders); err != nil {
		return err
	}
	// currentUser conserva la forma original (objeto User o null).
	if err := encode(KeyCurrentUser, st.CurrentUser()); err != nil {
		return err
	}

	if err := s.kv.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("guardar estado: %w", err)
	}
	return nil
}
