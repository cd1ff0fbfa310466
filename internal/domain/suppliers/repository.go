package suppliers

import "context"

// Repository é a coleção de fornecedores. A ordem de inserção é preservada.
type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	GetByID(ctx context.Context, id string) (Supplier, error)
	Create(ctx context.Context, s Supplier) error

	// Replace troca o registro inteiro de mesmo id.
	// Com id inexistente a coleção fica intocada e retorna ErrNotFound.
	Replace(ctx context.Context, s Supplier) error

	// Delete é no-op (sem erro) quando o id não existe.
	Delete(ctx context.Context, id string) error
}
