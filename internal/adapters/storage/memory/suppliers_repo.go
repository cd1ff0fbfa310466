package memory

import (
	"context"

	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/domain/suppliers"
	"unisovet-console/internal/platform/logger"
)

type SuppliersRepo struct {
	col *collection[suppliers.Supplier]
}

func NewSuppliersRepo(ctx context.Context, store snapshot.Store, log logger.Logger, fallback []suppliers.Supplier) *SuppliersRepo {
	slot := snapshot.NewSlot[suppliers.Supplier](store, log, SlotSuppliers)
	return &SuppliersRepo{
		col: newCollection(ctx, slot, fallback, func(s suppliers.Supplier) string { return s.ID }),
	}
}

func (r *SuppliersRepo) List(context.Context) ([]suppliers.Supplier, error) {
	return r.col.list(), nil
}

func (r *SuppliersRepo) GetByID(_ context.Context, id string) (suppliers.Supplier, error) {
	s, ok := r.col.get(id)
	if !ok {
		return suppliers.Supplier{}, suppliers.ErrNotFound
	}
	return s, nil
}

func (r *SuppliersRepo) Create(ctx context.Context, s suppliers.Supplier) error {
	r.col.add(ctx, s)
	return nil
}

func (r *SuppliersRepo) Replace(ctx context.Context, s suppliers.Supplier) error {
	if !r.col.replace(ctx, s) {
		return suppliers.ErrNotFound
	}
	return nil
}

func (r *SuppliersRepo) Delete(ctx context.Context, id string) error {
	r.col.remove(ctx, id)
	return nil
}
