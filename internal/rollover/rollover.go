// File: internal/rollover/rollover.go
package rollover

import (
	"context"
	"fmt"
	"log"
	"time"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"
	"weekly-todo/internal/model"
	"weekly-todo/internal/store"
)

// 測試可覆寫。
var timeNow = time.Now

// SourceDay 回傳 rollover 的來源日。週一從週五補，週六週日不補。
func SourceDay(weekday time.Weekday) (string, bool) {
	switch weekday {
	case time.Saturday, time.Sunday:
		return "", false
	case time.Monday:
		return time.Friday.String(), true
	default:
		return (weekday - 1).String(), true
	}
}

// Plan 為來源日的未完成任務計算目的地位置。
// tasks 需依 user 再依 position 排序；每個使用者的任務接在其目的日
// bucket 的尾端，維持原本相對順序。純函式，不碰儲存層。
func Plan(tasks []model.Task, destDay string, maxPos map[int]int) []model.TaskPlacement {
	next := make(map[int]int, len(maxPos))
	var placements []model.TaskPlacement
	for _, t := range tasks {
		pos, ok := next[t.UserID]
		if !ok {
			if m, exists := maxPos[t.UserID]; exists {
				pos = m + 1
			}
		}
		placements = append(placements, model.TaskPlacement{
			ID:       t.ID,
			Day:      destDay,
			Position: pos,
		})
		next[t.UserID] = pos + 1
	}
	return placements
}

// lockTTL 略大於一天，確保同一日內不會重複執行，又不會卡到隔日。
const lockTTL = 25 * time.Hour

// Run 執行一次 rollover：把來源日所有未完成任務搬到 now 的工作日，
// 已完成任務留在原地。整批更新在單一交易內完成。
// 以 Redis SetNX 做當日鎖，排程重複觸發或多實例同時執行時最多跑一次。
func Run(ctx context.Context, db database.DB, c cache.Cache, now time.Time) error {
	sourceDay, ok := SourceDay(now.Weekday())
	if !ok {
		log.Print("rollover: weekend, nothing to do")
		return nil
	}
	destDay := now.Weekday().String()

	lockKey := "rollover:" + now.Format("2006-01-02")
	acquired, err := c.SetNX(ctx, lockKey, 1, lockTTL).Result()
	if err != nil {
		return fmt.Errorf("rollover: acquire lock: %w", err)
	}
	if !acquired {
		log.Printf("rollover: already ran for %s", now.Format("2006-01-02"))
		return nil
	}

	tasks, err := store.ListIncompleteTasksByDay(ctx, db, sourceDay)
	if err != nil {
		return fmt.Errorf("rollover: %w", err)
	}
	if len(tasks) == 0 {
		log.Printf("rollover: no incomplete tasks on %s", sourceDay)
		return nil
	}

	maxPos, err := store.MaxPositionsByDay(ctx, db, destDay)
	if err != nil {
		return fmt.Errorf("rollover: %w", err)
	}

	placements := Plan(tasks, destDay, maxPos)

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("rollover: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range placements {
		if err := store.MoveTask(ctx, tx, p.ID, p.Day, p.Position); err != nil {
			return fmt.Errorf("rollover: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("rollover: %w", err)
	}

	log.Printf("rollover: moved %d tasks from %s to %s", len(placements), sourceDay, destDay)
	return nil
}
