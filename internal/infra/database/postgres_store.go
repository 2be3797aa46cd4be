package database

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

// DocumentsTable is the default table holding every collection as JSONB rows keyed
// by (collection, id).
const DocumentsTable = "demo_documents"

const (
	pgUniqueViolation = "23505"
	pgUndefinedTable  = "42P01"
)

type PostgresStore struct {
	DB    *sql.DB
	name  string
	table string
	psql  sq.StatementBuilderType
}

// NewPostgresStore uses DocumentsTable when table is empty.
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = DocumentsTable
	}
	return &PostgresStore{
		DB:    db,
		name:  table,
		table: pq.QuoteIdentifier(table),
		psql:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Migrate creates the documents table and its indexes.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			seq BIGSERIAL PRIMARY KEY,
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			client_id TEXT NOT NULL DEFAULT '',
			data JSONB NOT NULL,
			UNIQUE (collection, id)
		)`, s.table),
	}
	for _, field := range lookupFields {
		stmts = append(stmts, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (collection, (data->>'%s'))`,
			pq.QuoteIdentifier(s.name+"_"+field+"_idx"), s.table, field))
	}
	for collection, fields := range UniqueIndexes {
		for _, field := range fields {
			stmts = append(stmts, fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s ((data->>'%s')) WHERE collection = %s`,
				pq.QuoteIdentifier(s.name+"_"+collection+"_"+field+"_key"), s.table, field, pq.QuoteLiteral(collection)))
		}
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate documents table: %w", err)
		}
	}
	return nil
}

type row struct {
	id       string
	clientID string
	data     []byte
}

func encodeRow(record entity.Record) (row, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return row{}, err
	}
	var tenant struct {
		ClientID string `json:"client_id"`
	}
	if err := json.Unmarshal(data, &tenant); err != nil {
		return row{}, err
	}
	return row{id: record.RecordID(), clientID: tenant.ClientID, data: data}, nil
}

func (s *PostgresStore) InsertMany(ctx context.Context, collection string, records []entity.Record) error {
	if len(records) == 0 {
		return nil
	}
	q := s.psql.Insert(s.table).Columns("collection", "id", "client_id", "data")
	for _, record := range records {
		r, err := encodeRow(record)
		if err != nil {
			return entity.NewStorageError("insert", collection, err)
		}
		q = q.Values(collection, r.id, r.clientID, r.data)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return entity.NewStorageError("insert", collection, err)
	}
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return entity.NewStorageError("insert", collection, mapPgError(err))
	}
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, collection string, record entity.Record) error {
	r, err := encodeRow(record)
	if err != nil {
		return entity.NewStorageError("upsert", collection, err)
	}
	query, args, err := s.psql.Insert(s.table).
		Columns("collection", "id", "client_id", "data").
		Values(collection, r.id, r.clientID, r.data).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET client_id = EXCLUDED.client_id, data = EXCLUDED.data").
		ToSql()
	if err != nil {
		return entity.NewStorageError("upsert", collection, err)
	}
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return entity.NewStorageError("upsert", collection, mapPgError(err))
	}
	return nil
}

// DeleteAll reports entity.ErrCollectionNotFound when the documents table is missing.
func (s *PostgresStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	query, args, err := s.psql.Delete(s.table).Where(sq.Eq{"collection": collection}).ToSql()
	if err != nil {
		return 0, entity.NewStorageError("delete_all", collection, err)
	}
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, entity.NewStorageError("delete_all", collection, mapPgError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, entity.NewStorageError("delete_all", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) DeleteOne(ctx context.Context, collection, id string) error {
	query, args, err := s.psql.Delete(s.table).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return entity.NewStorageError("delete", collection, err)
	}
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return entity.NewStorageError("delete", collection, mapPgError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entity.NewStorageError("delete", collection, err)
	}
	if n == 0 {
		return entity.NewStorageError("delete", collection, entity.ErrRecordNotFound)
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context, collection string, filter entity.Filter) (int64, error) {
	q := s.psql.Select("COUNT(*)").From(s.table).Where(sq.Eq{"collection": collection})
	q, err := applyFilter(q, filter)
	if err != nil {
		return 0, entity.NewStorageError("count", collection, err)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return 0, entity.NewStorageError("count", collection, err)
	}

	var n int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		err = mapPgError(err)
		if errors.Is(err, entity.ErrCollectionNotFound) {
			return 0, nil
		}
		return 0, entity.NewStorageError("count", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter entity.Filter, out interface{}) error {
	q := s.psql.Select("data").From(s.table).Where(sq.Eq{"collection": collection})
	q, err := applyFilter(q, filter)
	if err != nil {
		return entity.NewStorageError("find", collection, err)
	}
	query, args, err := q.OrderBy("seq").ToSql()
	if err != nil {
		return entity.NewStorageError("find", collection, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		err = mapPgError(err)
		if errors.Is(err, entity.ErrCollectionNotFound) {
			return json.Unmarshal([]byte("[]"), out)
		}
		return entity.NewStorageError("find", collection, err)
	}
	defer rows.Close()

	var buf bytes.Buffer
	buf.WriteByte('[')
	for first := true; rows.Next(); first = false {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return entity.NewStorageError("find", collection, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		buf.Write(data)
	}
	if err := rows.Err(); err != nil {
		return entity.NewStorageError("find", collection, err)
	}
	buf.WriteByte(']')

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return entity.NewStorageError("find", collection, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// applyFilter translates conditions on JSON fields. client_id uses its own column.
func applyFilter(q sq.SelectBuilder, filter entity.Filter) (sq.SelectBuilder, error) {
	for _, cond := range filter {
		if strings.ContainsAny(cond.Field, "'\"") {
			return q, fmt.Errorf("invalid field name %q", cond.Field)
		}
		value, err := normalize(cond.Value)
		if err != nil {
			return q, err
		}

		switch cond.Op {
		case entity.OpEq:
			if cond.Field == "client_id" {
				q = q.Where(sq.Eq{"client_id": value})
				continue
			}
			doc, err := json.Marshal(map[string]any{cond.Field: value})
			if err != nil {
				return q, err
			}
			q = q.Where(sq.Expr("data @> ?::jsonb", string(doc)))

		case entity.OpLt, entity.OpGt:
			op := "<"
			if cond.Op == entity.OpGt {
				op = ">"
			}
			switch v := value.(type) {
			case float64:
				q = q.Where(sq.Expr(fmt.Sprintf("(data->>'%s')::numeric %s ?", cond.Field, op), v))
			case string:
				q = q.Where(sq.Expr(fmt.Sprintf("data->>'%s' %s ?", cond.Field, op), v))
			default:
				return q, fmt.Errorf("cannot order %s by %T", cond.Field, cond.Value)
			}

		case entity.OpIn:
			values, ok := value.([]any)
			if !ok {
				return q, fmt.Errorf("in filter on %s needs a list", cond.Field)
			}
			strs := make([]string, len(values))
			for i, v := range values {
				strs[i] = fmt.Sprint(v)
			}
			q = q.Where(sq.Expr(fmt.Sprintf("data->>'%s' = ANY(?)", cond.Field), pq.Array(strs)))

		default:
			return q, fmt.Errorf("unsupported operator %q", cond.Op)
		}
	}
	return q, nil
}

func mapPgError(err error) error {
	code := ""
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}
	switch code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %v", entity.ErrDuplicateRecord, err)
	case pgUndefinedTable:
		return fmt.Errorf("%w: %v", entity.ErrCollectionNotFound, err)
	}
	return err
}
