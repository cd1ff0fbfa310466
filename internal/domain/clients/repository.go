package clients

import "context"

// Repository é a coleção de clientes. A ordem de inserção é preservada.
type Repository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, c Client) error

	// Replace troca o registro inteiro de mesmo id.
	// Com id inexistente a coleção fica intocada e retorna ErrNotFound.
	Replace(ctx context.Context, c Client) error

	// Delete é no-op (sem erro) quando o id não existe.
	Delete(ctx context.Context, id string) error
}
