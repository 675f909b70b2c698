package workerpool

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	// ErrPoolClosed 池已关闭
	ErrPoolClosed = errors.New("workerpool: pool closed")
	// ErrQueueFull 队列已满
	ErrQueueFull = errors.New("workerpool: queue full")
)

// Task 任务函数, ctx 在 Shutdown 超时后被取消
type Task func(ctx context.Context)

// Stats 运行统计
type Stats struct {
	Queued    int
	Capacity  int
	Completed int64
	Panicked  int64
}

// Pool 固定数量 worker 消费有界队列
type Pool struct {
	name   string
	tasks  chan Task
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool

	completed atomic.Int64
	panicked  atomic.Int64
}

// New 创建 Worker Pool
// workers: worker 数量
// queueSize: 任务队列大小
func New(name string, workers, queueSize int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		name:   name,
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
		logger: logger.With("pool", name),
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Info("Worker pool started", "workers", workers, "queue_size", queueSize)
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	// 队列关闭后把剩余任务执行完再退出
	for task := range p.tasks {
		p.run(id, task)
	}
}

func (p *Pool) run(id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.logger.Error("Task panic recovered", "worker_id", id, "panic", r)
		}
	}()
	task(p.ctx)
	p.completed.Add(1)
}

// Submit 提交任务, 队列满时阻塞直到有空位或 ctx 结束
func (p *Pool) Submit(ctx context.Context, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit 尝试提交任务, 队列满时立即返回 ErrQueueFull
func (p *Pool) TrySubmit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stats 当前统计
func (p *Pool) Stats() Stats {
	return Stats{
		Queued:    len(p.tasks),
		Capacity:  cap(p.tasks),
		Completed: p.completed.Load(),
		Panicked:  p.panicked.Load(),
	}
}

// Shutdown 停止接收任务并等待队列清空.
// ctx 结束时取消任务上下文, 仍等待 worker 退出
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		p.logger.Warn("Worker pool shutdown timed out, cancelling tasks", "queued", len(p.tasks))
		p.cancel()
		<-done
	}
	p.cancel()
	p.logger.Info("Worker pool shutdown completed", "completed", p.completed.Load())
}
