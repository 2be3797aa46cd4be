package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/factory"
	"github.com/xavierca1/evangelism-crm/internal/infra/database"
	"github.com/xavierca1/evangelism-crm/internal/random"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

const testClientID = "demo-church-lagos"

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// plainHasher keeps tests fast; bcrypt is covered in the auth package.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type MockSeedStore struct {
	mock.Mock
}

func (m *MockSeedStore) InsertMany(ctx context.Context, collection string, records []entity.Record) error {
	args := m.Called(ctx, collection, records)
	return args.Error(0)
}

func (m *MockSeedStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeedStore) Count(ctx context.Context, collection string, filter entity.Filter) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeedStore) Find(ctx context.Context, collection string, filter entity.Filter, out interface{}) error {
	args := m.Called(ctx, collection, filter, out)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(to, name, churchName string) error {
	args := m.Called(to, name, churchName)
	return args.Error(0)
}

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) SendText(ctx context.Context, phone, body string) error {
	args := m.Called(ctx, phone, body)
	return args.Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) DispatchCall(ctx context.Context, job CallJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

// failingStore fails InsertMany for one collection and delegates the rest.
type failingStore struct {
	*database.MemoryStore
	collection string
	err        error
}

func (s *failingStore) InsertMany(ctx context.Context, collection string, records []entity.Record) error {
	if collection == s.collection {
		return s.err
	}
	return s.MemoryStore.InsertMany(ctx, collection, records)
}

func seedInput(converts, workers, services int) SeedDemoInput {
	return SeedDemoInput{
		ClientID:      testClientID,
		ChurchName:    "Grace Evangelical Ministries",
		AdminEmail:    "admin@graceevangelical.demo",
		AdminPassword: "Demo@2025",
		Converts:      converts,
		Workers:       workers,
		Services:      services,
		Seed:          42,
	}
}

func newSeeder(t *testing.T, store SeedStore) *SeedDemoUseCase {
	uc := NewSeedDemoUseCase(store, plainHasher{}, logger.NewTestLogger(t))
	uc.Now = clock
	return uc
}

// seededStore returns a memory store holding a small seeded tenant.
func seededStore(t *testing.T) *database.MemoryStore {
	t.Helper()
	store := database.NewMemoryStore()
	if _, err := newSeeder(t, store).Execute(context.Background(), seedInput(50, 5, 10)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func testFactory() *factory.Factory {
	return factory.New(random.NewSource(7), testClientID, clock)
}

func count(t *testing.T, store SeedStore, collection string) int {
	t.Helper()
	n, err := store.Count(context.Background(), collection, entity.ByClient(testClientID))
	if err != nil {
		t.Fatalf("count %s: %v", collection, err)
	}
	return int(n)
}
