package inventory

import "context"

// Repository é a coleção de itens de estoque. A ordem de inserção é preservada.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, i Item) error

	// Replace troca o registro inteiro de mesmo id.
	// Com id inexistente a coleção fica intocada e retorna ErrNotFound.
	Replace(ctx context.Context, i Item) error

	// Delete é no-op (sem erro) quando o id não existe.
	Delete(ctx context.Context, id string) error
}
