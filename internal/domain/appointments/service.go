package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/pets"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Lookups para resolver nomes de exibição. Satisfeitos pelos services
// de clients e pets.
type ClientLookup interface {
	GetByID(ctx context.Context, id string) (clients.Client, error)
}

type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo       Repository
	clientsDir ClientLookup
	petsDir    PetLookup
}

func NewService(repo Repository, clientsDir ClientLookup, petsDir PetLookup) *Service {
	return &Service{repo: repo, clientsDir: clientsDir, petsDir: petsDir}
}

type Input struct {
	ClientID string
	PetID    string
	Date     time.Time
	Reason   string
	Status   Status
}

func (in Input) check() error {
	if strings.TrimSpace(in.ClientID) == "" || strings.TrimSpace(in.PetID) == "" {
		return ErrInvalidInput
	}
	if in.Date.IsZero() || strings.TrimSpace(in.Reason) == "" {
		return ErrInvalidInput
	}
	if !in.Status.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Appointment, error) {
	if err := in.check(); err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:       uuid.NewString(),
		ClientID: strings.TrimSpace(in.ClientID),
		PetID:    strings.TrimSpace(in.PetID),
		Date:     in.Date,
		Reason:   strings.TrimSpace(in.Reason),
		Status:   in.Status,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Appointment, error) {
	if err := in.check(); err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:       id,
		ClientID: strings.TrimSpace(in.ClientID),
		PetID:    strings.TrimSpace(in.PetID),
		Date:     in.Date,
		Reason:   strings.TrimSpace(in.Reason),
		Status:   in.Status,
	}

	if err := s.repo.Replace(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// UpdateStatus troca só o status, preservando o resto do registro.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	if !status.IsValid() {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	a.Status = status
	if err := s.repo.Replace(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// List filtra por substring (case-insensitive) no motivo.
func (s *Service) List(ctx context.Context, query string) ([]Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Reason), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ClientName resolve o nome do cliente; referência quebrada vira "Desconhecido".
func (s *Service) ClientName(ctx context.Context, clientID string) string {
	c, err := s.clientsDir.GetByID(ctx, clientID)
	if err != nil {
		return "Desconhecido"
	}
	return c.Name
}

// PetName resolve o nome do pet; referência quebrada vira "Desconhecido".
func (s *Service) PetName(ctx context.Context, petID string) string {
	p, err := s.petsDir.GetByID(ctx, petID)
	if err != nil {
		return "Desconhecido"
	}
	return p.Name
}
