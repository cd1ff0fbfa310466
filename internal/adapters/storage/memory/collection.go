package memory

import (
	"context"
	"sync"

	"unisovet-console/internal/adapters/storage/snapshot"
)

// Slots de snapshot, um por coleção (mesmos nomes do armazenamento original).
const (
	SlotClients      = "patpetshop_clients"
	SlotPets         = "patpetshop_pets"
	SlotAppointments = "patpetshop_appointments"
	SlotInventory    = "patpetshop_inventory"
	SlotSuppliers    = "patpetshop_suppliers"
)

// collection é uma coleção em memória, ordenada por inserção, espelhada
// no seu slot de snapshot de forma síncrona depois de cada mutação.
// O espelho é best-effort: falha de gravação não desfaz a mutação.
type collection[T any] struct {
	mu    sync.RWMutex
	slot  *snapshot.Slot[T]
	items []T
	idOf  func(T) string
}

func newCollection[T any](ctx context.Context, slot *snapshot.Slot[T], fallback []T, idOf func(T) string) *collection[T] {
	return &collection[T]{
		slot:  slot,
		items: slot.Load(ctx, fallback),
		idOf:  idOf,
	}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if c.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(ctx context.Context, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, rec)
	c.slot.Save(ctx, c.items)
}

// replace troca o registro de mesmo id; retorna false (coleção e slot
// intocados) quando o id não existe.
func (c *collection[T]) replace(ctx context.Context, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(rec)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = rec
			c.slot.Save(ctx, c.items)
			return true
		}
	}
	return false
}

// remove tira o registro de id dado; id ausente é no-op (sem regravar o slot).
func (c *collection[T]) remove(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.slot.Save(ctx, c.items)
			return
		}
	}
}
