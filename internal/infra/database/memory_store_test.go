package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

func newUser(clientID, email string) entity.User {
	return entity.User{
		Base:     entity.NewBase(clientID, time.Now()),
		Name:     "Test User",
		Email:    email,
		Role:     entity.RoleFollowupWorker,
		IsActive: true,
	}
}

func newScore(clientID, convertID string, score int) entity.HealthScore {
	return entity.HealthScore{
		Base:      entity.NewBase(clientID, time.Now()),
		ConvertID: convertID,
		Score:     score,
	}
}

func TestMemoryStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	scores := []entity.HealthScore{
		newScore("c1", "a", 20),
		newScore("c1", "b", 55),
		newScore("c2", "c", 10),
		newScore("c1", "d", 39),
	}
	require.NoError(t, store.InsertMany(ctx, entity.CollectionHealthScores, entity.Records(scores)))

	var low []entity.HealthScore
	err := store.Find(ctx, entity.CollectionHealthScores, entity.ByClient("c1", entity.Lt("score", entity.AtRiskThreshold)), &low)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "a", low[0].ConvertID)
	assert.Equal(t, "d", low[1].ConvertID)

	n, err := store.Count(ctx, entity.CollectionHealthScores, entity.ByClient("c1"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = store.Count(ctx, entity.CollectionHealthScores, entity.Where(entity.Gt("score", 50)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_TypedValuesMatchStoredForm(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	alerts := []entity.Alert{
		{Base: entity.NewBase("c1", time.Now()), Status: entity.AlertOpen, Severity: entity.SeverityHigh},
		{Base: entity.NewBase("c1", time.Now()), Status: entity.AlertResolved, Severity: entity.SeverityMedium},
		{Base: entity.NewBase("c1", time.Now()), Status: entity.AlertAcknowledged, Severity: entity.SeverityMedium},
	}
	require.NoError(t, store.InsertMany(ctx, entity.CollectionAlerts, entity.Records(alerts)))

	n, err := store.Count(ctx, entity.CollectionAlerts, entity.Where(entity.In("status", entity.AlertOpen, entity.AlertAcknowledged)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = store.Count(ctx, entity.CollectionAlerts, entity.Where(entity.Eq("severity", entity.SeverityMedium)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryStore_MissingCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.DeleteAll(ctx, "nope")
	assert.ErrorIs(t, err, entity.ErrCollectionNotFound)

	n, err := store.Count(ctx, "nope", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	var out []entity.User
	require.NoError(t, store.Find(ctx, "nope", nil, &out))
	assert.Empty(t, out)
}

func TestMemoryStore_DeleteAllKeepsCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithCollections(entity.CollectionAuditLogs))

	n, err := store.DeleteAll(ctx, entity.CollectionAuditLogs)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.InsertMany(ctx, entity.CollectionUsers, entity.Records([]entity.User{
		newUser("c1", "a@x.ng"), newUser("c1", "b@x.ng"),
	})))
	n, err = store.DeleteAll(ctx, entity.CollectionUsers)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = store.DeleteAll(ctx, entity.CollectionUsers)
	require.NoError(t, err)
	assert.Zero(t, n)

	store.Drop(entity.CollectionUsers)
	_, err = store.DeleteAll(ctx, entity.CollectionUsers)
	assert.ErrorIs(t, err, entity.ErrCollectionNotFound)
}

func TestMemoryStore_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.InsertMany(ctx, entity.CollectionUsers, entity.Records([]entity.User{newUser("c1", "a@x.ng")})))

	err := store.InsertMany(ctx, entity.CollectionUsers, entity.Records([]entity.User{newUser("c1", "b@x.ng"), newUser("c1", "a@x.ng")}))
	assert.ErrorIs(t, err, entity.ErrDuplicateRecord)

	// the failed batch is not partially applied
	n, err := store.Count(ctx, entity.CollectionUsers, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = store.InsertMany(ctx, entity.CollectionUsers, entity.Records([]entity.User{newUser("c1", "c@x.ng"), newUser("c1", "c@x.ng")}))
	assert.ErrorIs(t, err, entity.ErrDuplicateRecord)
}

func TestMemoryStore_UpsertAndDeleteOne(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := newUser("c1", "a@x.ng")
	second := newUser("c1", "b@x.ng")
	require.NoError(t, store.InsertMany(ctx, entity.CollectionUsers, entity.Records([]entity.User{first, second})))

	first.Name = "Renamed"
	require.NoError(t, store.Upsert(ctx, entity.CollectionUsers, first))

	var users []entity.User
	require.NoError(t, store.Find(ctx, entity.CollectionUsers, nil, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "Renamed", users[0].Name, "upsert keeps the original position")

	second.Email = "a@x.ng"
	assert.ErrorIs(t, store.Upsert(ctx, entity.CollectionUsers, second), entity.ErrDuplicateRecord)

	require.NoError(t, store.DeleteOne(ctx, entity.CollectionUsers, first.ID))
	assert.ErrorIs(t, store.DeleteOne(ctx, entity.CollectionUsers, first.ID), entity.ErrRecordNotFound)

	n, err := store.Count(ctx, entity.CollectionUsers, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()
	assert.ErrorIs(t, store.InsertMany(ctx, entity.CollectionUsers, nil), context.Canceled)
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}

func TestOpenMemoryAndUnknownDriver(t *testing.T) {
	store, closeFn, err := Open(context.Background(), Options{Driver: "memory"})
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, closeFn(context.Background()))

	_, _, err = Open(context.Background(), Options{Driver: "cassandra"})
	assert.Error(t, err)
}
