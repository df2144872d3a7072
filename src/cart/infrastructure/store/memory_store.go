package store

import (
	"context"
	"sync"

	"github.com/JosueLm7/PanaderiaDelicia/src/cart/domain/entity"
)

// MemoryCartStore guarda los carritos en memoria, uno por sesión.
// El carrito sobrevive recargas de página mientras el proceso viva y la
// cookie de sesión siga vigente.
type MemoryCartStore struct {
	carts map[string]*entity.Cart
	mu    sync.RWMutex
}

// NewMemoryCartStore crea un nuevo store en memoria
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]*entity.Cart),
	}
}

// Get retorna el carrito de la sesión o ErrCartNotFound
func (s *MemoryCartStore) Get(_ context.Context, cartID string) (*entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, entity.ErrCartNotFound
	}

	// Copia defensiva: el aggregate se muta fuera del lock
	clone := *cart
	clone.Lines = append([]entity.CartLine(nil), cart.Lines...)
	return &clone, nil
}

// Save guarda el carrito reemplazando el estado anterior de la sesión
func (s *MemoryCartStore) Save(_ context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *cart
	clone.Lines = append([]entity.CartLine(nil), cart.Lines...)
	s.carts[cart.ID] = &clone
	return nil
}

// Delete elimina el carrito de la sesión; borrar uno inexistente no es error
func (s *MemoryCartStore) Delete(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return nil
}
