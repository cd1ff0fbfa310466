package memory

import (
	"context"

	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/platform/logger"
)

type AppointmentsRepo struct {
	col *collection[appointments.Appointment]
}

func NewAppointmentsRepo(ctx context.Context, store snapshot.Store, log logger.Logger, fallback []appointments.Appointment) *AppointmentsRepo {
	slot := snapshot.NewSlot[appointments.Appointment](store, log, SlotAppointments)
	return &AppointmentsRepo{
		col: newCollection(ctx, slot, fallback, func(a appointments.Appointment) string { return a.ID }),
	}
}

func (r *AppointmentsRepo) List(context.Context) ([]appointments.Appointment, error) {
	return r.col.list(), nil
}

func (r *AppointmentsRepo) GetByID(_ context.Context, id string) (appointments.Appointment, error) {
	a, ok := r.col.get(id)
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.col.add(ctx, a)
	return nil
}

func (r *AppointmentsRepo) Replace(ctx context.Context, a appointments.Appointment) error {
	if !r.col.replace(ctx, a) {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	r.col.remove(ctx, id)
	return nil
}
