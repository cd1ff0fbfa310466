package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"unisovet-console/internal/platform/logger"
)

var (
	// ErrNoSnapshot indica que o slot nunca foi gravado.
	ErrNoSnapshot = errors.New("no snapshot")
)

// Store guarda um payload JSON por slot nomeado (um slot por coleção).
type Store interface {
	Load(ctx context.Context, slot string) ([]byte, error)
	Save(ctx context.Context, slot string, payload []byte) error
}

// memoryStore é a variante em memória (testes e modo sem persistência).
type memoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemory() Store {
	return &memoryStore{slots: map[string][]byte{}}
}

func (s *memoryStore) Load(_ context.Context, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.slots[slot]
	if !ok {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *memoryStore) Save(_ context.Context, slot string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(payload))
	copy(b, payload)
	s.slots[slot] = b
	return nil
}

// Slot espelha uma coleção tipada em um slot do Store.
//
// Contrato best-effort: Load nunca falha (slot ausente, payload corrompido ou
// store indisponível caem no fallback) e falha de Save só gera log — o estado
// em memória segue valendo mesmo que o espelho persistido divirja.
type Slot[T any] struct {
	store Store
	log   logger.Logger
	name  string
}

func NewSlot[T any](store Store, log logger.Logger, name string) *Slot[T] {
	if log == nil {
		log = logger.Nop{}
	}
	return &Slot[T]{store: store, log: log, name: name}
}

func (s *Slot[T]) Name() string { return s.name }

func (s *Slot[T]) Load(ctx context.Context, fallback []T) []T {
	raw, err := s.store.Load(ctx, s.name)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			s.log.Warn("snapshot load failed, using fallback", map[string]any{
				"slot": s.name, "err": err.Error(),
			})
		}
		return fallback
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("snapshot unreadable, using fallback", map[string]any{
			"slot": s.name, "err": err.Error(),
		})
		return fallback
	}
	return out
}

func (s *Slot[T]) Save(ctx context.Context, records []T) {
	b, err := json.Marshal(records)
	if err != nil {
		s.log.Error("snapshot marshal failed", map[string]any{
			"slot": s.name, "err": err.Error(),
		})
		return
	}
	if err := s.store.Save(ctx, s.name, b); err != nil {
		s.log.Error("snapshot save failed", map[string]any{
			"slot": s.name, "err": err.Error(),
		})
	}
}
