package service

import (
	"context"
	"testing"
	"time"

	"kanbanpro/internal/adapter/blob"
	"kanbanpro/internal/adapter/memory"
	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"

	"github.com/stretchr/testify/require"
)

const testPassword = "kanban123"

var (
	testNow = time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC)
	admin   = domain.Principal{UserID: "1", Role: domain.RoleAdmin}
	regular = domain.Principal{UserID: "2", Role: domain.RoleUser}
)

type testEnv struct {
	kv    *memory.KVStore
	store *state.Store
	blobs *blob.FileStore
	clock func() time.Time
}

// newTestEnv boots a seeded store on in-memory storage and a temp blob dir.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	kv := memory.NewKVStore()
	clock := func() time.Time { return testNow }
	store := state.NewStore(kv, state.WithClock(clock))
	require.NoError(t, store.Load(context.Background(), state.Seed{PasswordHash: hash}))

	blobs, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)

	return &testEnv{kv: kv, store: store, blobs: blobs, clock: clock}
}

func (e *testEnv) auth() *AuthService {
	s := NewAuthService(e.store, "test-secret", time.Hour)
	s.now = e.clock
	return s
}

func (e *testEnv) users() *UserService {
	s := NewUserService(e.store)
	s.now = e.clock
	return s
}

func (e *testEnv) boards() *BoardService {
	s := NewBoardService(e.store, e.blobs)
	s.now = e.clock
	return s
}

func (e *testEnv) tasks() *TaskService {
	s := NewTaskService(e.store, e.blobs)
	s.now = e.clock
	return s
}

func (e *testEnv) attachments() *AttachmentService {
	s := NewAttachmentService(e.store, e.blobs, time.UTC)
	s.now = e.clock
	return s
}

func (e *testEnv) analytics() *AnalyticsService {
	s := NewAnalyticsService(e.store, time.UTC)
	s.now = e.clock
	return s
}
