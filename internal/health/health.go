package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
)

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"

	probeTimeout = 2 * time.Second
)

// Probe 单个依赖的检查函数
type Probe func(ctx context.Context) error

// Status 健康状态, 依赖名 -> connected/disconnected
type Status map[string]string

// Healthy 所有依赖均已连接
func (s Status) Healthy() bool {
	for _, v := range s {
		if v != StatusConnected {
			return false
		}
	}
	return true
}

// Checker 健康检查器
type Checker struct {
	names  []string
	probes map[string]Probe
}

// NewChecker 创建 NATS/Redis/PostgreSQL 健康检查器
func NewChecker(nc *nats.Conn, redisClient *redis.Client, db *pgxpool.Pool) *Checker {
	c := &Checker{probes: make(map[string]Probe)}
	c.Register("nats", func(ctx context.Context) error {
		if !nc.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
	c.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})
	c.Register("database", db.Ping)
	return c
}

// Register 注册检查项
func (h *Checker) Register(name string, probe Probe) {
	if h.probes == nil {
		h.probes = make(map[string]Probe)
	}
	if _, ok := h.probes[name]; !ok {
		h.names = append(h.names, name)
	}
	h.probes[name] = probe
}

// Check 执行健康检查
func (h *Checker) Check(ctx context.Context) Status {
	status := make(Status, len(h.names))
	for _, name := range h.names {
		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		if err := h.probes[name](probeCtx); err == nil {
			status[name] = StatusConnected
		} else {
			status[name] = StatusDisconnected
		}
		cancel()
	}
	return status
}

// IsHealthy 检查是否健康
func (h *Checker) IsHealthy(ctx context.Context) bool {
	return h.Check(ctx).Healthy()
}

// ServeHTTP HTTP 健康检查端点
func (h *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if status.Healthy() {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(status)
}

// ReadyHandler 就绪探针
func (h *Checker) ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.IsHealthy(r.Context()) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Not Ready"))
		}
	}
}

// NewServeMux /health 与 /ready 路由
func (h *Checker) NewServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/health", h)
	mux.Handle("/ready", h.ReadyHandler())
	return mux
}
