package department

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const (
	selectLastDepartmentQuery = `
		SELECT department_id FROM last_departments WHERE user_id = $1`
	upsertLastDepartmentQuery = `
		INSERT INTO last_departments (user_id, department_id, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET department_id = excluded.department_id, updated_at = now()`
)

// DBTX is the subset of pgx connection behavior the store needs; satisfied by
// *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgStore persists the last-department map in postgres.
type PgStore struct {
	db DBTX
}

func NewPgStore(db DBTX) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	var departmentID string
	err := s.db.QueryRow(ctx, selectLastDepartmentQuery, userID).Scan(&departmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", errors.Wrap(err, "pg store: get")
	}
	return departmentID, nil
}

func (s *PgStore) Set(ctx context.Context, userID uuid.UUID, departmentID string) error {
	if _, err := s.db.Exec(ctx, upsertLastDepartmentQuery, userID, departmentID); err != nil {
		return errors.Wrap(err, "pg store: set")
	}
	return nil
}
