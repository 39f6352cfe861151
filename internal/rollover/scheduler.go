// File: internal/rollover/scheduler.go
package rollover

import (
	"context"
	"fmt"
	"log"
	"time"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"
	"weekly-todo/internal/worker"
)

// Scheduler 每天在固定的本地時間觸發一次 rollover，
// 實際工作丟給 worker pool 執行。
type Scheduler struct {
	db    database.DB
	cache cache.Cache
	pool  worker.Pool

	hour   int
	minute int

	stop chan struct{}
	done chan struct{}
}

// NewScheduler 建立排程器。at 格式為 "HH:MM"（本地時間）。
func NewScheduler(db database.DB, c cache.Cache, pool worker.Pool, at string) (*Scheduler, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("rollover: invalid schedule %q: %w", at, err)
	}
	return &Scheduler{
		db:     db,
		cache:  c,
		pool:   pool,
		hour:   t.Hour(),
		minute: t.Minute(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

// untilNext 計算距離下一個觸發時刻的時間，永遠為正。
func untilNext(now time.Time, hour, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// Start 啟動排程迴圈，呼叫端以 Stop 結束。
func (s *Scheduler) Start() {
	go func() {
		defer close(s.done)
		for {
			timer := time.NewTimer(untilNext(timeNow(), s.hour, s.minute))
			select {
			case <-s.stop:
				timer.Stop()
				return
			case <-timer.C:
				s.pool.Submit(s.runOnce)
			}
		}
	}()
}

func (s *Scheduler) runOnce() {
	if err := Run(context.Background(), s.db, s.cache, timeNow()); err != nil {
		// 失敗不重試，留待明天的排程。
		log.Printf("rollover: %v", err)
	}
}

// Stop 停止排程並等待迴圈結束，已提交給 pool 的工作不受影響。
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}
