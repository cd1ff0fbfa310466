package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"unisovet-console/internal/domain/clients"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnknownOwner = errors.New("owner does not exist")
)

// OwnerLookup resolve o cliente dono do pet. Satisfeito por clients.Service.
type OwnerLookup interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
}

type Service struct {
	repo   Repository
	owners OwnerLookup
}

func NewService(repo Repository, owners OwnerLookup) *Service {
	return &Service{repo: repo, owners: owners}
}

type Input struct {
	OwnerID   string
	Name      string
	Species   string
	Breed     string
	BirthDate *time.Time
}

// Create exige que o dono exista no momento do cadastro.
// (Excluir o cliente depois deixa o pet órfão — resolvido como "Desconhecido".)
func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if _, err := s.owners.GetByID(ctx, strings.TrimSpace(in.OwnerID)); err != nil {
		return Pet{}, ErrUnknownOwner
	}

	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:        id,
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
	}

	if err := s.repo.Replace(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// OwnerName resolve o nome do dono; referência quebrada vira "Desconhecido".
func (s *Service) OwnerName(ctx context.Context, ownerID string) string {
	c, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return "Desconhecido"
	}
	return c.Name
}

// List filtra por substring (case-insensitive) em nome e raça.
func (s *Service) List(ctx context.Context, query string) ([]Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Breed), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
