package database

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

func setupMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, ""), mock
}

func TestPostgresStore_InsertMany(t *testing.T) {
	store, mock := setupMockStore(t)
	users := []entity.User{newUser("c1", "a@x.ng"), newUser("c1", "b@x.ng")}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "demo_documents" (collection,id,client_id,data) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)`)).
		WithArgs("users", users[0].ID, "c1", sqlmock.AnyArg(), "users", users[1].ID, "c1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := store.InsertMany(context.Background(), entity.CollectionUsers, entity.Records(users))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_InsertMany_Empty(t *testing.T) {
	store, mock := setupMockStore(t)
	require.NoError(t, store.InsertMany(context.Background(), entity.CollectionUsers, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_InsertMany_DuplicateEmail(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(`INSERT INTO "demo_documents"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := store.InsertMany(context.Background(), entity.CollectionUsers, entity.Records([]entity.User{newUser("c1", "a@x.ng")}))
	assert.ErrorIs(t, err, entity.ErrDuplicateRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Upsert(t *testing.T) {
	store, mock := setupMockStore(t)
	user := newUser("c1", "a@x.ng")

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (collection, id) DO UPDATE SET client_id = EXCLUDED.client_id, data = EXCLUDED.data`)).
		WithArgs("users", user.ID, "c1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Upsert(context.Background(), entity.CollectionUsers, user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteAll(t *testing.T) {
	t.Run("returns the removed count", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "demo_documents" WHERE collection = $1`)).
			WithArgs("converts").
			WillReturnResult(sqlmock.NewResult(0, 42))

		n, err := store.DeleteAll(context.Background(), entity.CollectionConverts)
		require.NoError(t, err)
		assert.Equal(t, int64(42), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table is a missing collection", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(`DELETE FROM "demo_documents"`).
			WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"})

		_, err := store.DeleteAll(context.Background(), entity.CollectionConverts)
		assert.ErrorIs(t, err, entity.ErrCollectionNotFound)
	})

	t.Run("other failures pass through", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(`DELETE FROM "demo_documents"`).
			WillReturnError(&pgconn.PgError{Code: "57014", Message: "canceling statement"})

		_, err := store.DeleteAll(context.Background(), entity.CollectionConverts)
		require.Error(t, err)
		assert.NotErrorIs(t, err, entity.ErrCollectionNotFound)
	})
}

func TestPostgresStore_DeleteOne_NotFound(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "demo_documents" WHERE collection = $1 AND id = $2`)).
		WithArgs("converts", "x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.DeleteOne(context.Background(), entity.CollectionConverts, "x")
	assert.ErrorIs(t, err, entity.ErrRecordNotFound)
}

func TestPostgresStore_Count(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "demo_documents" WHERE collection = $1 AND client_id = $2 AND (data->>'score')::numeric < $3`)).
		WithArgs("health_scores", "c1", float64(40)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := store.Count(context.Background(), entity.CollectionHealthScores, entity.ByClient("c1", entity.Lt("score", 40)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Count_JSONFilters(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE collection = $1 AND data @> $2::jsonb AND data->>'status' = ANY($3)`)).
		WithArgs("alerts", `{"is_demo":true}`, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := store.Count(context.Background(), entity.CollectionAlerts, entity.Where(
		entity.Eq("is_demo", true),
		entity.In("status", entity.AlertOpen, entity.AlertAcknowledged),
	))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Find(t *testing.T) {
	store, mock := setupMockStore(t)

	a := newScore("c1", "a", 20)
	b := newScore("c1", "b", 30)
	rawA, _ := json.Marshal(a)
	rawB, _ := json.Marshal(b)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM "demo_documents" WHERE collection = $1 AND client_id = $2 ORDER BY seq`)).
		WithArgs("health_scores", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(rawA).AddRow(rawB))

	var out []entity.HealthScore
	require.NoError(t, store.Find(context.Background(), entity.CollectionHealthScores, entity.ByClient("c1"), &out))
	require.Len(t, out, 2)
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, 30, out[1].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "demo_documents"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS "demo_documents_client_id_idx"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS "demo_documents_convert_id_idx"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE UNIQUE INDEX IF NOT EXISTS "demo_documents_users_email_key" ON "demo_documents" ((data->>'email')) WHERE collection = 'users'`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyFilter_RejectsQuotedFields(t *testing.T) {
	store, _ := setupMockStore(t)
	_, err := store.Count(context.Background(), entity.CollectionConverts, entity.Where(entity.Eq("x'; drop", 1)))
	assert.Error(t, err)
}
