package dashboard

import (
	"context"
	"sort"
	"time"

	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/pets"
)

// Service agrega os números da tela inicial. Só leitura, nenhuma mutação.
type Service struct {
	clientsRepo clients.Repository
	petsRepo    pets.Repository
	apptsRepo   appointments.Repository
	now         func() time.Time
}

func NewService(clientsRepo clients.Repository, petsRepo pets.Repository, apptsRepo appointments.Repository) *Service {
	return &Service{
		clientsRepo: clientsRepo,
		petsRepo:    petsRepo,
		apptsRepo:   apptsRepo,
		now:         time.Now,
	}
}

type Summary struct {
	TotalClients         int             `json:"total_clients"`
	TotalPets            int             `json:"total_pets"`
	UpcomingAppointments int             `json:"upcoming_appointments"`
	Upcoming             []UpcomingEntry `json:"upcoming"`
}

// UpcomingEntry é um agendamento futuro com os nomes já resolvidos
// para exibição direta no painel.
type UpcomingEntry struct {
	ID         string              `json:"id"`
	ClientID   string              `json:"client_id"`
	ClientName string              `json:"client_name"`
	PetID      string              `json:"pet_id"`
	PetName    string              `json:"pet_name"`
	Date       time.Time           `json:"date"`
	Reason     string              `json:"reason"`
	Status     appointments.Status `json:"status"`
}

// Summarize conta clientes e pets e lista os agendamentos futuros
// (status Agendado com data estritamente no futuro), ordenados por data.
// Referências quebradas viram "Desconhecido", como nas listas.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	cs, err := s.clientsRepo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	ps, err := s.petsRepo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	as, err := s.apptsRepo.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	now := s.now()
	upcoming := make([]UpcomingEntry, 0)
	for _, a := range as {
		if a.Status == appointments.StatusScheduled && a.Date.After(now) {
			upcoming = append(upcoming, UpcomingEntry{
				ID:         a.ID,
				ClientID:   a.ClientID,
				ClientName: s.clientName(ctx, a.ClientID),
				PetID:      a.PetID,
				PetName:    s.petName(ctx, a.PetID),
				Date:       a.Date,
				Reason:     a.Reason,
				Status:     a.Status,
			})
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	return Summary{
		TotalClients:         len(cs),
		TotalPets:            len(ps),
		UpcomingAppointments: len(upcoming),
		Upcoming:             upcoming,
	}, nil
}

func (s *Service) clientName(ctx context.Context, id string) string {
	c, err := s.clientsRepo.GetByID(ctx, id)
	if err != nil {
		return "Desconhecido"
	}
	return c.Name
}

func (s *Service) petName(ctx context.Context, id string) string {
	p, err := s.petsRepo.GetByID(ctx, id)
	if err != nil {
		return "Desconhecido"
	}
	return p.Name
}
