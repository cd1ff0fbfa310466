package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/pets"
)

type emptyClientsRepo struct{}

func (emptyClientsRepo) List(context.Context) ([]clients.Client, error) { return nil, nil }
func (emptyClientsRepo) GetByID(context.Context, string) (clients.Client, error) {
	return clients.Client{}, clients.ErrNotFound
}
func (emptyClientsRepo) Create(context.Context, clients.Client) error  { return nil }
func (emptyClientsRepo) Replace(context.Context, clients.Client) error { return nil }
func (emptyClientsRepo) Delete(context.Context, string) error          { return nil }

type emptyPetsRepo struct{}

func (emptyPetsRepo) List(context.Context) ([]pets.Pet, error) { return nil, nil }
func (emptyPetsRepo) GetByID(context.Context, string) (pets.Pet, error) {
	return pets.Pet{}, pets.ErrNotFound
}
func (emptyPetsRepo) Create(context.Context, pets.Pet) error  { return nil }
func (emptyPetsRepo) Replace(context.Context, pets.Pet) error { return nil }
func (emptyPetsRepo) Delete(context.Context, string) error    { return nil }

type emptyApptsRepo struct{}

func (emptyApptsRepo) List(context.Context) ([]appointments.Appointment, error) { return nil, nil }
func (emptyApptsRepo) GetByID(context.Context, string) (appointments.Appointment, error) {
	return appointments.Appointment{}, appointments.ErrNotFound
}
func (emptyApptsRepo) Create(context.Context, appointments.Appointment) error  { return nil }
func (emptyApptsRepo) Replace(context.Context, appointments.Appointment) error { return nil }
func (emptyApptsRepo) Delete(context.Context, string) error                    { return nil }

type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	lastReq GenerateRequest
	reply   string
	err     error

	// quando definido, GenerateContent bloqueia até o canal fechar
	release chan struct{}
}

func (g *fakeGenerator) GenerateContent(_ context.Context, req GenerateRequest) (string, error) {
	g.mu.Lock()
	g.calls++
	g.lastReq = req
	g.mu.Unlock()
	if g.release != nil {
		<-g.release
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func newTestService(gen Generator) *Service {
	return NewService(gen, nil, emptyClientsRepo{}, emptyPetsRepo{}, emptyApptsRepo{})
}

func TestService_Transcript_InjectsGreetingOnce(t *testing.T) {
	svc := newTestService(nil)

	first := svc.Transcript(context.Background())
	if len(first) != 1 {
		t.Fatalf("expected 1 message, got %d", len(first))
	}
	if first[0].Role != RoleModel || first[0].Content != Greeting {
		t.Fatalf("expected greeting from model, got %#v", first[0])
	}

	second := svc.Transcript(context.Background())
	if len(second) != 1 {
		t.Fatalf("greeting injected again: %d messages", len(second))
	}
}

func TestService_Send_HappyPath(t *testing.T) {
	gen := &fakeGenerator{reply: "Temos 0 clientes cadastrados."}
	svc := newTestService(gen)
	svc.Transcript(context.Background())

	reply, err := svc.Send(context.Background(), "  quantos clientes temos?  ")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if reply.Role != RoleModel || reply.Content != gen.reply {
		t.Fatalf("unexpected reply: %#v", reply)
	}

	if gen.calls != 1 {
		t.Fatalf("expected exactly 1 provider call, got %d", gen.calls)
	}
	// transcript completo vai junto, e a mensagem do usuário chega sem espaços
	if len(gen.lastReq.Turns) != 2 {
		t.Fatalf("expected 2 turns (greeting + user), got %d", len(gen.lastReq.Turns))
	}
	if gen.lastReq.Turns[1].Text != "quantos clientes temos?" {
		t.Fatalf("user turn not trimmed: %q", gen.lastReq.Turns[1].Text)
	}
	if !strings.Contains(gen.lastReq.System, "UnisoVet") {
		t.Fatalf("system instruction missing persona: %q", gen.lastReq.System)
	}

	msgs := svc.Transcript(context.Background())
	if len(msgs) != 3 {
		t.Fatalf("expected greeting+user+model, got %d messages", len(msgs))
	}
}

func TestService_Send_EmptyContentRejected(t *testing.T) {
	svc := newTestService(&fakeGenerator{})
	if _, err := svc.Send(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Send_WhileBusyRejected(t *testing.T) {
	gen := &fakeGenerator{reply: "ok", release: make(chan struct{})}
	svc := newTestService(gen)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := svc.Send(context.Background(), "primeira"); err != nil {
			t.Errorf("first send failed: %v", err)
		}
	}()

	// espera o primeiro envio chegar ao provedor
	for {
		gen.mu.Lock()
		started := gen.calls == 1
		gen.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := svc.Send(context.Background(), "segunda"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(gen.release)
	<-done

	if gen.calls != 1 {
		t.Fatalf("rejected send must not reach the provider, got %d calls", gen.calls)
	}
}

func TestService_Send_ProviderFailureYieldsApology(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream 503")}
	svc := newTestService(gen)

	reply, err := svc.Send(context.Background(), "olá")
	if err != nil {
		t.Fatalf("provider failure must not surface as error, got %v", err)
	}
	if reply.Content != Apology {
		t.Fatalf("expected apology, got %q", reply.Content)
	}

	msgs := svc.Transcript(context.Background())
	apologies := 0
	for _, m := range msgs {
		if m.Content == Apology {
			apologies++
		}
	}
	if apologies != 1 {
		t.Fatalf("expected exactly one apology, got %d", apologies)
	}

	// falha não pode deixar o serviço travado
	gen.err = nil
	gen.reply = "de volta"
	if _, err := svc.Send(context.Background(), "ainda aí?"); err != nil {
		t.Fatalf("service stuck busy after failure: %v", err)
	}
}

type panicOnceGenerator struct {
	calls int
}

func (g *panicOnceGenerator) GenerateContent(context.Context, GenerateRequest) (string, error) {
	g.calls++
	if g.calls == 1 {
		panic("provider blew up")
	}
	return "de volta", nil
}

func TestService_Send_PanicClearsBusy(t *testing.T) {
	gen := &panicOnceGenerator{}
	svc := newTestService(gen)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		_, _ = svc.Send(context.Background(), "primeira")
	}()

	// o pânico não pode deixar o serviço preso em "ocupado"
	reply, err := svc.Send(context.Background(), "segunda")
	if err != nil {
		t.Fatalf("service stuck busy after panic: %v", err)
	}
	if reply.Content != "de volta" {
		t.Fatalf("unexpected reply after recovery: %q", reply.Content)
	}
}

func TestService_Send_NilGeneratorDegradesToApology(t *testing.T) {
	svc := newTestService(nil)

	reply, err := svc.Send(context.Background(), "oi")
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if reply.Content != Apology {
		t.Fatalf("expected apology without provider, got %q", reply.Content)
	}
}
