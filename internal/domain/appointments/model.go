package appointments

import "time"

// Status do agendamento. Enum livre: nenhuma máquina de estados além
// dos valores válidos (Concluído pode voltar a Agendado, etc.).
type Status string

const (
	StatusScheduled Status = "Agendado"
	StatusCompleted Status = "Concluído"
	StatusCancelled Status = "Cancelado"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment referencia um cliente e um pet; as referências não são
// revalidadas depois da criação (exclusões deixam referências órfãs).
type Appointment struct {
	ID       string    `json:"id"`
	ClientID string    `json:"client_id"`
	PetID    string    `json:"pet_id"`
	Date     time.Time `json:"date"`
	Reason   string    `json:"reason"`
	Status   Status    `json:"status"`
}
