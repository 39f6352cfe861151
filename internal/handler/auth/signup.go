// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/model"
	"weekly-todo/internal/service"
	"weekly-todo/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// validator 沒有「英數加底線」的內建規則，字元集另行檢查。
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// uniqueViolation 為 Postgres unique constraint 錯誤碼。
const uniqueViolation = "23505"

// SignupHandler 註冊新使用者並回傳 JWT
// @Summary     註冊使用者
// @Description 建立新帳號；註冊開關關閉時回 403，帳號已存在回 409
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.SignupRequest true "註冊資料"
// @Success     201 {object} dto.AuthResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     409 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request body: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if !usernamePattern.MatchString(req.Username) {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Username can only contain letters, numbers, and underscores"})
		}

		ctx := c.Request().Context()

		settings, err := store.GetSettings(ctx, db)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}
		if settings == nil || !settings.AllowSignups {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "Sign-ups are currently disabled."})
		}

		if _, err := store.GetUserByUsername(ctx, db, req.Username); err == nil {
			return c.JSON(http.StatusConflict, dto.HTTPError{Message: "Username already exists"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to hash password"})
		}

		user := &model.User{
			Username:     req.Username,
			PasswordHash: hash,
			IsAdmin:      false,
		}
		created, err := store.CreateUser(ctx, db, user)
		if err != nil {
			// 與上方存在性檢查之間的競態由 unique constraint 收尾
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusConflict, dto.HTTPError{Message: "Username already exists"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error creating user"})
		}

		token, err := service.IssueAccessToken(*created, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: fmt.Sprintf("failed to issue token: %v", err)})
		}

		return c.JSON(http.StatusCreated, dto.AuthResponse{
			Token: token,
			User: dto.AuthUser{
				ID:       created.ID,
				Username: created.Username,
				IsAdmin:  created.IsAdmin,
			},
		})
	}
}
