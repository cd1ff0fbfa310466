package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/pets"
	"unisovet-console/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrBusy: já existe um envio em andamento. Um request por vez,
	// sem fila e sem cancelamento.
	ErrBusy = errors.New("assistant busy")
)

type Turn struct {
	Role Role
	Text string
}

type GenerateRequest struct {
	System string
	Turns  []Turn
}

// Generator é o serviço remoto de geração de texto (porta de saída).
type Generator interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (string, error)
}

type Service struct {
	gen Generator
	log logger.Logger

	clientsRepo clients.Repository
	petsRepo    pets.Repository
	apptsRepo   appointments.Repository

	mu         sync.Mutex
	transcript []Message
	busy       bool
}

func NewService(
	gen Generator,
	log logger.Logger,
	clientsRepo clients.Repository,
	petsRepo pets.Repository,
	apptsRepo appointments.Repository,
) *Service {
	if log == nil {
		log = logger.Nop{}
	}
	return &Service{
		gen:         gen,
		log:         log,
		clientsRepo: clientsRepo,
		petsRepo:    petsRepo,
		apptsRepo:   apptsRepo,
	}
}

// Transcript devolve a conversa. Na primeira leitura com transcript vazio
// (abertura do painel) injeta a saudação.
func (s *Service) Transcript(context.Context) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transcript) == 0 {
		s.transcript = append(s.transcript, Message{Role: RoleModel, Content: Greeting})
	}

	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Send registra a mensagem do usuário, faz exatamente uma chamada ao
// provedor com o transcript completo mais a system instruction recém-montada,
// e registra a resposta. Qualquer falha do provedor vira a mensagem fixa de
// desculpas — nunca um erro para o chamador.
func (s *Service) Send(ctx context.Context, content string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrInvalidInput
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	s.busy = true
	s.transcript = append(s.transcript, Message{Role: RoleUser, Content: content})

	turns := make([]Turn, 0, len(s.transcript))
	for _, m := range s.transcript {
		turns = append(turns, Turn{Role: m.Role, Text: m.Content})
	}
	s.mu.Unlock()

	// O flag cai mesmo se o Generator entrar em pânico; senão o serviço
	// ficaria travado em "ocupado" para sempre.
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	reply := Message{Role: RoleModel}

	var (
		text string
		err  error
	)
	if s.gen == nil {
		// sem provedor configurado: degrada para a mensagem de desculpas
		err = errors.New("no generator configured")
	} else {
		text, err = s.gen.GenerateContent(ctx, GenerateRequest{
			System: s.buildSystem(ctx),
			Turns:  turns,
		})
	}
	if err != nil {
		s.log.Warn("assistant generate failed", map[string]any{"err": err.Error()})
		reply.Content = Apology
	} else {
		reply.Content = text
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, reply)
	s.mu.Unlock()

	return reply, nil
}

// buildSystem lê as coleções ao vivo; falha de leitura vira lista vazia
// (a assistente responde com o que tiver).
func (s *Service) buildSystem(ctx context.Context) string {
	cs, err := s.clientsRepo.List(ctx)
	if err != nil {
		cs = nil
	}
	ps, err := s.petsRepo.List(ctx)
	if err != nil {
		ps = nil
	}
	as, err := s.apptsRepo.List(ctx)
	if err != nil {
		as = nil
	}
	return BuildContext(cs, ps, as)
}
