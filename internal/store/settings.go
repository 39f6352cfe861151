package store

import (
	"context"
	"fmt"

	"weekly-todo/internal/database"
	"weekly-todo/internal/model"
)

// settings 為單列資料表，固定 id = 1。

func GetSettings(ctx context.Context, db database.Querier) (*model.Settings, error) {
	row := db.QueryRow(ctx,
		`SELECT allow_signups FROM settings WHERE id = 1`,
	)
	s := &model.Settings{}
	if err := row.Scan(&s.AllowSignups); err != nil {
		return nil, fmt.Errorf("GetSettings: %w", err)
	}
	return s, nil
}

func UpdateSettings(ctx context.Context, db database.Querier, allowSignups bool) error {
	_, err := db.Exec(ctx,
		`UPDATE settings SET allow_signups = $1 WHERE id = 1`,
		allowSignups,
	)
	if err != nil {
		return fmt.Errorf("UpdateSettings: %w", err)
	}
	return nil
}

// EnsureSettings 確保單列設定存在，首次啟動時寫入預設值。
func EnsureSettings(ctx context.Context, db database.Querier) error {
	_, err := db.Exec(ctx,
		`INSERT INTO settings (id, allow_signups) VALUES (1, TRUE)
		 ON CONFLICT (id) DO NOTHING`,
	)
	if err != nil {
		return fmt.Errorf("EnsureSettings: %w", err)
	}
	return nil
}
