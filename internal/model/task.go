// File: internal/model/task.go
package model

import "time"

// Weekdays 為任務允許的五個工作日標籤，順序即一週順序。
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// IsWeekday 回報 day 是否為允許的工作日標籤。
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TaskPlacement 描述一筆任務應落在的 day 與 position，
// 供整批重排與 rollover 使用。
type TaskPlacement struct {
	ID       int    `json:"id"`
	Day      string `json:"day"`
	Position int    `json:"position"`
}

type Task struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	Day       string    `db:"day" json:"day"`
	Completed bool      `db:"completed" json:"completed"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
