package state

import (
	"github.com/jhoicas/pope-market/internal/domain/entity"
)

// State colecciones en memoria del marketplace y la sesión actual.
// Products y Orders se mantienen en orden más-reciente-primero.
type State struct {
	Users         []*entity.User
	Products      []*entity.Product
	Orders        []*entity.Order
	CurrentUserID string // referencia débil a Users; "" = sin sesión
}

// CurrentUser resuelve la sesión contra Users. nil si no hay sesión.
func (s *State) CurrentUser() *entity.User {
	if s.CurrentUserID == "" {
		return nil
	}
	return s.UserByID(s.CurrentUserID)
}

// UserByID busca un usuario por ID.
func (s *State) UserByID(id string) *entity.User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UserByEmail busca un usuario por email normalizado.
func (s *State) UserByEmail(email string) *entity.User {
	email = entity.NormalizeEmail(email)
	for _, u := range s.Users {
		if entity.NormalizeEmail(u.Email) == email {
			return u
		}
	}
	return nil
}

// ProductByID busca un producto por ID.
func (s *State) ProductByID(id string) *entity.Product {
	for _, p := range s.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// OrderByID busca una orden por ID.
func (s *State) OrderByID(id string) *entity.Order {
	for _, o := range s.Orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// AddUser agrega un usuario al final (orden de registro).
func (s *State) AddUser(u *entity.User) {
	s.Users = append(s.Users, u)
}

// PrependProduct inserta el producto al inicio.
func (s *State) PrependProduct(p *entity.Product) {
	s.Products = append([]*entity.Product{p}, s.Products...)
}

// PrependOrder inserta la orden al inicio.
func (s *State) PrependOrder(o *entity.Order) {
	s.Orders = append([]*entity.Order{o}, s.Orders...)
}

// IsEmpty indica que no hay usuarios ni productos (condición para el seed demo).
func (s *State) IsEmpty() bool {
	return len(s.Users) == 0 && len(s.Products) == 0
}

// clone copia profunda usada para restaurar el estado si una operación falla.
func (s *State) clone() *State {
	c := &State{
		Users:         make([]*entity.User, len(s.Users)),
		Products:      make([]*entity.Product, len(s.Products)),
		Orders:        make([]*entity.Order, len(s.Orders)),
		CurrentUserID: s.CurrentUserID,
	}
	for i, u := range s.Users {
		cp := *u
		c.Users[i] = &cp
	}
	for i, p := range s.Products {
		cp := *p
		c.Products[i] = &cp
	}
	for i, o := range s.Orders {
		cp := *o
		c.Orders[i] = &cp
	}
	return c
}
