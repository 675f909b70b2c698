package nats

import (
	"errors"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"sudooom.mahjong.score/internal/config"
)

// Client NATS 客户端封装
type Client struct {
	conn         *nats.Conn
	logger       *slog.Logger
	drainTimeout time.Duration
	closed       chan struct{}
}

// ErrDrainTimeout 排空超时, 连接已被强制关闭
var ErrDrainTimeout = errors.New("nats drain timeout")

// NewClient 创建 NATS 客户端
func NewClient(cfg config.NATSConfig, name string) (*Client, error) {
	logger := slog.Default().With("component", "nats")
	closed := make(chan struct{})
	drainTimeout := cfg.DrainTimeout
	if drainTimeout <= 0 {
		drainTimeout = 5 * time.Second
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("Disconnected from NATS", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
			close(closed)
		}),
		nats.DrainTimeout(drainTimeout),
		nats.Timeout(10 * time.Second),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:         conn,
		logger:       logger,
		drainTimeout: drainTimeout,
		closed:       closed,
	}, nil
}

// Conn 返回底层 NATS 连接
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// Drain 排空连接: 停止接收新消息, 发出已缓冲的应答后关闭.
// 应在订阅器 Stop 之后调用
func (c *Client) Drain() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("NATS drain failed, closing", "error", err)
		c.conn.Close()
		return err
	}

	// 多等一秒, 让 nats 自身的排空超时先触发
	select {
	case <-c.closed:
		return nil
	case <-time.After(c.drainTimeout + time.Second):
		c.conn.Close()
		return ErrDrainTimeout
	}
}

// Close 关闭连接
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// IsConnected 检查连接状态
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}
