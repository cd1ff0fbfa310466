package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"unisovet-console/internal/domain/suppliers"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// SupplierLookup resolve o fornecedor de um item. Satisfeito por suppliers.Service.
type SupplierLookup interface {
	GetByID(ctx context.Context, id string) (suppliers.Supplier, error)
}

type Service struct {
	repo         Repository
	suppliersDir SupplierLookup
}

func NewService(repo Repository, suppliersDir SupplierLookup) *Service {
	return &Service{repo: repo, suppliersDir: suppliersDir}
}

type Input struct {
	Name              string
	Category          Category
	Quantity          int
	Unit              Unit
	SupplierID        string
	LastPurchaseDate  time.Time
	LowStockThreshold int
}

func (in Input) check() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.SupplierID) == "" {
		return ErrInvalidInput
	}
	if !in.Category.IsValid() || !in.Unit.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

func (in Input) toItem(id string) Item {
	return Item{
		ID:                id,
		Name:              strings.TrimSpace(in.Name),
		Category:          in.Category,
		Quantity:          in.Quantity,
		Unit:              in.Unit,
		SupplierID:        strings.TrimSpace(in.SupplierID),
		LastPurchaseDate:  in.LastPurchaseDate,
		LowStockThreshold: in.LowStockThreshold,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Item, error) {
	if err := in.check(); err != nil {
		return Item{}, err
	}

	item := in.toItem(uuid.NewString())
	if err := s.repo.Create(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Item, error) {
	if err := in.check(); err != nil {
		return Item{}, err
	}

	item := in.toItem(id)
	if err := s.repo.Replace(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	return s.repo.GetByID(ctx, id)
}

// List filtra por substring (case-insensitive) no nome do item.
func (s *Service) List(ctx context.Context, query string) ([]Item, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]Item, 0, len(all))
	for _, item := range all {
		if strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out, nil
}

// SupplierName resolve o nome do fornecedor; referência quebrada vira "Desconhecido".
func (s *Service) SupplierName(ctx context.Context, supplierID string) string {
	sup, err := s.suppliersDir.GetByID(ctx, supplierID)
	if err != nil {
		return "Desconhecido"
	}
	return sup.Name
}

// Supplier é a ação "contactar fornecedor" de um item com estoque baixo:
// devolve o contato do fornecedor vinculado ao item.
func (s *Service) Supplier(ctx context.Context, itemID string) (suppliers.Supplier, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return suppliers.Supplier{}, err
	}

	sup, err := s.suppliersDir.GetByID(ctx, item.SupplierID)
	if err != nil {
		return suppliers.Supplier{}, ErrNotFound
	}
	return sup, nil
}
