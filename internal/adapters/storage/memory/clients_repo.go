package memory

import (
	"context"

	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/platform/logger"
)

type ClientsRepo struct {
	col *collection[clients.Client]
}

func NewClientsRepo(ctx context.Context, store snapshot.Store, log logger.Logger, fallback []clients.Client) *ClientsRepo {
	slot := snapshot.NewSlot[clients.Client](store, log, SlotClients)
	return &ClientsRepo{
		col: newCollection(ctx, slot, fallback, func(c clients.Client) string { return c.ID }),
	}
}

func (r *ClientsRepo) List(context.Context) ([]clients.Client, error) {
	return r.col.list(), nil
}

func (r *ClientsRepo) GetByID(_ context.Context, id string) (clients.Client, error) {
	c, ok := r.col.get(id)
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return c, nil
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	r.col.add(ctx, c)
	return nil
}

func (r *ClientsRepo) Replace(ctx context.Context, c clients.Client) error {
	if !r.col.replace(ctx, c) {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	r.col.remove(ctx, id)
	return nil
}
