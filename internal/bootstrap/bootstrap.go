// File: internal/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"weekly-todo/internal/database"
	"weekly-todo/internal/model"
	"weekly-todo/internal/service"
	"weekly-todo/internal/store"

	"github.com/jackc/pgx/v5"
)

// EnsureDefaults 於啟動時建立首次執行所需的資料：
// 單列設定與管理員帳號。重複執行不會改動既有資料。
func EnsureDefaults(ctx context.Context, db database.DB) error {
	if err := store.EnsureSettings(ctx, db); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Print("bootstrap: ADMIN_PASSWORD 未設定，略過管理員帳號建立")
		return nil
	}

	if _, err := store.GetUserByUsername(ctx, db, username); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("bootstrap: %w", err)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if _, err := store.CreateUser(ctx, db, &model.User{
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
	}); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	log.Printf("bootstrap: 管理員帳號 %q 已建立", username)
	return nil
}
