package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"weekly-todo/internal/database"
	"weekly-todo/internal/model"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, user_id, text, day, completed, position, created_at, updated_at`

func scanTask(row pgx.Row, t *model.Task) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.Text,
		&t.Day,
		&t.Completed,
		&t.Position,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

func ListTasksByUser(ctx context.Context, db database.Querier, userID int) ([]model.Task, error) {
	rows, err := db.Query(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks WHERE user_id = $1
		 ORDER BY day, position`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTasksByUser: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, fmt.Errorf("ListTasksByUser: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTasksByUser: %w", err)
	}
	return tasks, nil
}

// CreateTask 於該 (user, day) bucket 末端新增任務。
// position 以單一語句計算 MAX(position)+1，避免先讀後寫的競態。
func CreateTask(ctx context.Context, db database.Querier, userID int, text, day string) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, text, day, position)
		 VALUES ($1, $2, $3,
		         COALESCE((SELECT MAX(position) + 1 FROM tasks WHERE user_id = $1 AND day = $3), 0))
		 RETURNING `+taskColumns,
		userID,
		text,
		day,
	)
	t := &model.Task{}
	if err := scanTask(row, t); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

// UpdateTask 做部分更新，僅異動有給值的欄位。
// WHERE 同時檢查擁有者，查無資料時回傳 pgx.ErrNoRows。
func UpdateTask(ctx context.Context, db database.Querier, userID, taskID int, text *string, completed *bool) (*model.Task, error) {
	var sets []string
	var args []any
	if text != nil {
		args = append(args, *text)
		sets = append(sets, "text = $"+strconv.Itoa(len(args)))
	}
	if completed != nil {
		args = append(args, *completed)
		sets = append(sets, "completed = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("UpdateTask: no fields to update")
	}

	args = append(args, taskID, userID)
	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)-1) +
		` AND user_id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + taskColumns

	t := &model.Task{}
	if err := scanTask(db.QueryRow(ctx, query, args...), t); err != nil {
		return nil, fmt.Errorf("UpdateTask: %w", err)
	}
	return t, nil
}

// DeleteTask 刪除使用者擁有的任務，查無資料時回傳 pgx.ErrNoRows。
func DeleteTask(ctx context.Context, db database.Querier, userID, taskID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTask: %w", pgx.ErrNoRows)
	}
	return nil
}

// ReorderTasks 在單一交易內整批覆寫 day 與 position。
// WHERE 內嵌擁有者檢查：不屬於該使用者的項目只是不命中任何列，不視為錯誤。
func ReorderTasks(ctx context.Context, db database.DB, userID int, placements []model.TaskPlacement) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ReorderTasks: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range placements {
		if p.ID == 0 || p.Day == "" {
			continue
		}
		if _, err := tx.Exec(ctx,
			`UPDATE tasks SET day = $1, position = $2
			 WHERE id = $3 AND user_id = $4`,
			p.Day,
			p.Position,
			p.ID,
			userID,
		); err != nil {
			return fmt.Errorf("ReorderTasks: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ReorderTasks: %w", err)
	}
	return nil
}

// ListIncompleteTasksByDay 取出某日所有未完成任務，依 user 再依 position 排序，
// 供 rollover 規劃使用。
func ListIncompleteTasksByDay(ctx context.Context, db database.Querier, day string) ([]model.Task, error) {
	rows, err := db.Query(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks WHERE day = $1 AND completed = FALSE
		 ORDER BY user_id, position`,
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("ListIncompleteTasksByDay: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, fmt.Errorf("ListIncompleteTasksByDay: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListIncompleteTasksByDay: %w", err)
	}
	return tasks, nil
}

// MaxPositionsByDay 回傳某日每個使用者目前的最大 position。
func MaxPositionsByDay(ctx context.Context, db database.Querier, day string) (map[int]int, error) {
	rows, err := db.Query(ctx,
		`SELECT user_id, MAX(position)
		 FROM tasks WHERE day = $1
		 GROUP BY user_id`,
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("MaxPositionsByDay: %w", err)
	}
	defer rows.Close()

	maxPos := map[int]int{}
	for rows.Next() {
		var userID, pos int
		if err := rows.Scan(&userID, &pos); err != nil {
			return nil, fmt.Errorf("MaxPositionsByDay: %w", err)
		}
		maxPos[userID] = pos
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MaxPositionsByDay: %w", err)
	}
	return maxPos, nil
}

// MoveTask 更新單筆任務的 day 與 position，rollover 交易內使用。
func MoveTask(ctx context.Context, db database.Querier, taskID int, day string, position int) error {
	_, err := db.Exec(ctx,
		`UPDATE tasks SET day = $1, position = $2 WHERE id = $3`,
		day,
		position,
		taskID,
	)
	if err != nil {
		return fmt.Errorf("MoveTask: %w", err)
	}
	return nil
}
