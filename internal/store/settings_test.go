package store

import (
	"context"
	"errors"
	"testing"

	"weekly-todo/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "WHERE id = 1")
			return fakeRow{vals: []any{false}}
		},
	}
	s, err := GetSettings(context.Background(), db)
	require.NoError(t, err)
	require.False(t, s.AllowSignups)

	db = &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return fakeRow{scanErr: pgx.ErrNoRows} },
	}
	_, err = GetSettings(context.Background(), db)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateSettings(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, []any{false}, args)
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, UpdateSettings(context.Background(), db, false))

	db = &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		},
	}
	require.Error(t, UpdateSettings(context.Background(), db, true))
}

func TestEnsureSettings(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Contains(t, sql, "ON CONFLICT (id) DO NOTHING")
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}
	require.NoError(t, EnsureSettings(context.Background(), db))

	db = &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		},
	}
	require.Error(t, EnsureSettings(context.Background(), db))
}
