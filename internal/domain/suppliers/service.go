package suppliers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
}

func (s *Service) Create(ctx context.Context, in Input) (Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Supplier{}, ErrInvalidInput
	}

	sup := Supplier{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
	}

	if err := s.repo.Create(ctx, sup); err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Supplier{}, ErrInvalidInput
	}

	sup := Supplier{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Email:         strings.TrimSpace(in.Email),
	}

	if err := s.repo.Replace(ctx, sup); err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

// List filtra por substring (case-insensitive) em nome e pessoa de contato.
func (s *Service) List(ctx context.Context, query string) ([]Supplier, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]Supplier, 0, len(all))
	for _, sup := range all {
		if strings.Contains(strings.ToLower(sup.Name), q) ||
			strings.Contains(strings.ToLower(sup.ContactPerson), q) {
			out = append(out, sup)
		}
	}
	return out, nil
}
