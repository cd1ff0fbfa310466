package pets

import "context"

// Repository é a coleção de pets. A ordem de inserção é preservada.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) error

	// Replace troca o registro inteiro de mesmo id.
	// Com id inexistente a coleção fica intocada e retorna ErrNotFound.
	Replace(ctx context.Context, p Pet) error

	// Delete é no-op (sem erro) quando o id não existe.
	Delete(ctx context.Context, id string) error
}
