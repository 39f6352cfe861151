package worker

import (
	"log"
	"sync"
)

// Job represents a unit of background work executed by the pool.
type Job func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Job)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					runJob(job)
				}
			}
		}()
	}
	return p
}

// runJob 隔離單一工作的 panic，避免排程工作失敗時殺掉整個 worker。
func runJob(job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker: job panic: %v", r)
		}
	}()
	job()
}

type pool struct {
	jobs chan Job
	wg   sync.WaitGroup
}

func (p *pool) Submit(j Job) {
	p.jobs <- j
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
