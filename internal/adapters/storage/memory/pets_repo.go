package memory

import (
	"context"

	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/domain/pets"
	"unisovet-console/internal/platform/logger"
)

type PetsRepo struct {
	col *collection[pets.Pet]
}

func NewPetsRepo(ctx context.Context, store snapshot.Store, log logger.Logger, fallback []pets.Pet) *PetsRepo {
	slot := snapshot.NewSlot[pets.Pet](store, log, SlotPets)
	return &PetsRepo{
		col: newCollection(ctx, slot, fallback, func(p pets.Pet) string { return p.ID }),
	}
}

func (r *PetsRepo) List(context.Context) ([]pets.Pet, error) {
	return r.col.list(), nil
}

func (r *PetsRepo) GetByID(_ context.Context, id string) (pets.Pet, error) {
	p, ok := r.col.get(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.col.add(ctx, p)
	return nil
}

func (r *PetsRepo) Replace(ctx context.Context, p pets.Pet) error {
	if !r.col.replace(ctx, p) {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	r.col.remove(ctx, id)
	return nil
}
