package appointments

import "context"

// Repository é a coleção de agendamentos. A ordem de inserção é preservada.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	Create(ctx context.Context, a Appointment) error

	// Replace troca o registro inteiro de mesmo id.
	// Com id inexistente a coleção fica intocada e retorna ErrNotFound.
	Replace(ctx context.Context, a Appointment) error

	// Delete é no-op (sem erro) quando o id não existe.
	Delete(ctx context.Context, id string) error
}
