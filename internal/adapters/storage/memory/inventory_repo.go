package memory

import (
	"context"

	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/domain/inventory"
	"unisovet-console/internal/platform/logger"
)

type InventoryRepo struct {
	col *collection[inventory.Item]
}

func NewInventoryRepo(ctx context.Context, store snapshot.Store, log logger.Logger, fallback []inventory.Item) *InventoryRepo {
	slot := snapshot.NewSlot[inventory.Item](store, log, SlotInventory)
	return &InventoryRepo{
		col: newCollection(ctx, slot, fallback, func(i inventory.Item) string { return i.ID }),
	}
}

func (r *InventoryRepo) List(context.Context) ([]inventory.Item, error) {
	return r.col.list(), nil
}

func (r *InventoryRepo) GetByID(_ context.Context, id string) (inventory.Item, error) {
	i, ok := r.col.get(id)
	if !ok {
		return inventory.Item{}, inventory.ErrNotFound
	}
	return i, nil
}

func (r *InventoryRepo) Create(ctx context.Context, i inventory.Item) error {
	r.col.add(ctx, i)
	return nil
}

func (r *InventoryRepo) Replace(ctx context.Context, i inventory.Item) error {
	if !r.col.replace(ctx, i) {
		return inventory.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	r.col.remove(ctx, id)
	return nil
}
