package nats

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nats-io/nats.go"

	"sudooom.mahjong.score/internal/mahjong/riichi"
	appErrors "sudooom.mahjong.score/pkg/errors"
	"sudooom.mahjong.score/pkg/response"
)

// ScoreHandler 计分处理接口
type ScoreHandler interface {
	Score(ctx context.Context, req *riichi.ScoreRequest) (*riichi.ScoreResult, error)
}

// SubscriberConfig 订阅配置
type SubscriberConfig struct {
	Subject     string // 请求主题
	QueueGroup  string // 队列组, 多实例负载均衡
	WorkerCount int    // Worker 数量
	BufferSize  int    // 消息缓冲区大小
}

// ScoreSubscriber 计分请求订阅器 (request/reply)
type ScoreSubscriber struct {
	nc           *nats.Conn
	handler      ScoreHandler
	logger       *slog.Logger
	subscription *nats.Subscription
	config       SubscriberConfig
	msgChan      chan *nats.Msg
	wg           sync.WaitGroup
	cancelFunc   context.CancelFunc
	stopping     atomic.Bool
}

// NewScoreSubscriber 创建计分请求订阅器
func NewScoreSubscriber(nc *nats.Conn, handler ScoreHandler, config SubscriberConfig) *ScoreSubscriber {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 16
	}
	if config.BufferSize <= 0 {
		config.BufferSize = 1024
	}

	return &ScoreSubscriber{
		nc:      nc,
		handler: handler,
		logger:  slog.Default().With("component", "score-subscriber"),
		config:  config,
	}
}

// Start 启动订阅
func (s *ScoreSubscriber) Start(ctx context.Context) error {
	s.msgChan = make(chan *nats.Msg, s.config.BufferSize)

	workerCtx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel

	for i := 0; i < s.config.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(workerCtx)
	}

	sub, err := s.nc.QueueSubscribe(s.config.Subject, s.config.QueueGroup, func(msg *nats.Msg) {
		if s.stopping.Load() {
			s.reject(msg, "服务停止中")
			return
		}
		select {
		case s.msgChan <- msg:
		default:
			// 缓冲区满时直接应答错误, 避免请求方等到超时
			s.logger.Warn("Message buffer full, rejecting request", "bufferSize", s.config.BufferSize)
			s.reject(msg, "服务繁忙")
		}
	})
	if err != nil {
		cancel()
		return err
	}

	s.subscription = sub
	s.logger.Info("NATS subscriber started",
		"subject", s.config.Subject,
		"queueGroup", s.config.QueueGroup,
		"workerCount", s.config.WorkerCount,
		"bufferSize", s.config.BufferSize,
	)
	return nil
}

func (s *ScoreSubscriber) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.msgChan:
			if !ok {
				return
			}
			s.reply(msg, HandleRequest(ctx, s.handler, msg.Data))
		}
	}
}

func (s *ScoreSubscriber) reply(msg *nats.Msg, data []byte) {
	if msg.Reply == "" {
		s.logger.Debug("Request without reply subject dropped", "subject", msg.Subject)
		return
	}
	if err := msg.Respond(data); err != nil {
		s.logger.Error("Failed to respond", "error", err)
	}
}

func (s *ScoreSubscriber) reject(msg *nats.Msg, reason string) {
	s.reply(msg, encodeResponse(response.New(appErrors.CodeServerError, reason, nil)))
}

// HandleRequest 解码请求、计分并编码应答信封
func HandleRequest(ctx context.Context, handler ScoreHandler, data []byte) []byte {
	var req riichi.ScoreRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return encodeResponse(response.New(appErrors.CodeInvalidRequest, err.Error(), nil))
	}

	result, err := handler.Score(ctx, &req)
	if err != nil {
		return encodeResponse(response.FromError(err))
	}
	return encodeResponse(response.OK(result))
}

func encodeResponse(resp response.Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		data, _ = json.Marshal(response.New(appErrors.CodeServerError, "服务器内部错误", nil))
	}
	return data
}

// Stop 停止订阅. 已进入缓冲区但未处理的请求统一应答错误
func (s *ScoreSubscriber) Stop() error {
	s.stopping.Store(true)

	// 先退订, 之后不会再有消息写入通道
	if s.subscription != nil {
		if err := s.subscription.Unsubscribe(); err != nil {
			s.logger.Error("Failed to unsubscribe", "error", err)
		}
	}

	if s.cancelFunc != nil {
		s.cancelFunc()
	}

	s.wg.Wait()

	rejected := s.drainPending()
	s.logger.Info("NATS subscriber stopped", "rejected", rejected)
	return nil
}

// drainPending 清空缓冲区, 返回被拒绝的请求数
func (s *ScoreSubscriber) drainPending() int {
	n := 0
	for {
		select {
		case msg := <-s.msgChan:
			s.reject(msg, "服务停止中")
			n++
		default:
			return n
		}
	}
}

// GetBufferUsage 获取缓冲区使用情况（用于监控）
func (s *ScoreSubscriber) GetBufferUsage() (current int, capacity int) {
	if s.msgChan == nil {
		return 0, 0
	}
	return len(s.msgChan), cap(s.msgChan)
}
