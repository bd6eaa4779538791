package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"kanbanpro/internal/core/ports"

	"go.uber.org/zap"
)

// Store owns the application State. Dispatches are serialized; every
// dispatch rewrites each collection it touched in the key-value store.
type Store struct {
	mu    sync.RWMutex
	state State
	kv    ports.KeyValueStore
	now   func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source used for seeding.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(kv ports.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		state: State{CurrentBoards: map[string]string{}},
		kv:    kv,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every collection and seeds demo data into empty ones.
func (s *Store) Load(ctx context.Context, seed Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := State{CurrentBoards: map[string]string{}}
	if err := s.read(ctx, KeyUsers, &loaded.Users); err != nil {
		return err
	}
	if err := s.read(ctx, KeyTasks, &loaded.Tasks); err != nil {
		return err
	}
	if err := s.read(ctx, KeyBoards, &loaded.Boards); err != nil {
		return err
	}
	if err := s.read(ctx, KeySessions, &loaded.Sessions); err != nil {
		return err
	}
	if err := s.read(ctx, KeyCurrentBoards, &loaded.CurrentBoards); err != nil {
		return err
	}
	if loaded.CurrentBoards == nil {
		loaded.CurrentBoards = map[string]string{}
	}

	var seeded []Action
	now := s.now()
	if len(loaded.Users) == 0 {
		seeded = append(seeded, SetUsers{Users: demoUsers(now, seed.PasswordHash)})
	}
	_, demoBoardExists := loaded.FindBoard(demoBoardID)
	if len(loaded.Boards) == 0 {
		demoBoardExists = true
		seeded = append(seeded, SetBoards{Boards: demoBoards(now)})
		for _, userID := range []string{demoAdminID, demoUserID} {
			if _, ok := loaded.CurrentBoards[userID]; !ok {
				seeded = append(seeded, SetCurrentBoard{UserID: userID, BoardID: demoBoardID})
			}
		}
	}
	// Demo tasks belong to the demo board.
	if len(loaded.Tasks) == 0 && demoBoardExists {
		seeded = append(seeded, SetTasks{Tasks: demoTasks(now)})
	}

	s.state = loaded
	if len(seeded) == 0 {
		return nil
	}

	zap.L().Info("seeding demo data", zap.Int("actions", len(seeded)))
	return s.apply(ctx, seeded)
}

// Dispatch applies the actions in order and persists what they touched.
func (s *Store) Dispatch(ctx context.Context, actions ...Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, actions)
}

// Update runs fn against the current state and dispatches the actions it
// returns, all under the store lock. It keeps read-check-write sequences
// such as duplicate checks atomic.
func (s *Store) Update(ctx context.Context, fn func(State) ([]Action, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := fn(s.state.Clone())
	if err != nil {
		return err
	}
	return s.apply(ctx, actions)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// apply reduces the actions and writes every touched collection in key
// order. The reduced state is kept even when a write fails; every key is
// still attempted and the failures are returned together.
func (s *Store) apply(ctx context.Context, actions []Action) error {
	touched := make(map[string]struct{})
	for _, action := range actions {
		s.state = Reduce(s.state, action)
		for _, key := range action.Keys() {
			touched[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(touched))
	for key := range touched {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if err := s.persist(ctx, key); err != nil {
			zap.L().Error("failed to persist collection", zap.String("key", key), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) persist(ctx context.Context, key string) error {
	var value any
	switch key {
	case KeyUsers:
		value = s.state.Users
	case KeyTasks:
		value = s.state.Tasks
	case KeyBoards:
		value = s.state.Boards
	case KeySessions:
		value = s.state.Sessions
	case KeyCurrentBoards:
		value = s.state.CurrentBoards
	default:
		return fmt.Errorf("unknown storage key %q", key)
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string, dst any) error {
	payload, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
