package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"sudooom.mahjong.score/internal/mahjong/riichi"
	"sudooom.mahjong.score/internal/model"
	"sudooom.mahjong.score/internal/repository"
	"sudooom.mahjong.score/internal/workerpool"
	appErrors "sudooom.mahjong.score/pkg/errors"
)

// persistTimeout 单条记录落库超时
const persistTimeout = 5 * time.Second

// Engine 计分引擎
type Engine interface {
	Score(req *riichi.ScoreRequest) (*riichi.ScoreResult, error)
	Rules() riichi.Rules
}

// ResultCache 计分结果缓存
type ResultCache interface {
	Get(ctx context.Context, fingerprint string) (*riichi.ScoreResult, bool, error)
	Set(ctx context.Context, fingerprint string, result *riichi.ScoreResult) error
}

// RecordStore 计分记录存储
type RecordStore interface {
	Create(ctx context.Context, rec *model.ScoreRecord) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.ScoreRecord, error)
	List(ctx context.Context, limit int) ([]*model.ScoreRecord, error)
}

// ScoreService 计分服务: 缓存 -> 引擎 -> 回写缓存 + 异步落库
// cache/store/pool 为 nil 时跳过对应步骤
type ScoreService struct {
	engine Engine
	cache  ResultCache
	store  RecordStore
	pool   *workerpool.Pool
	logger *slog.Logger
}

// NewScoreService 创建计分服务
func NewScoreService(engine Engine, cache ResultCache, store RecordStore, pool *workerpool.Pool) *ScoreService {
	return &ScoreService{
		engine: engine,
		cache:  cache,
		store:  store,
		pool:   pool,
		logger: slog.Default().With("component", "score-service"),
	}
}

// fingerprintInput 指纹包含规则开关, 规则不同的结果不能共用缓存
type fingerprintInput struct {
	Rules   riichi.Rules         `json:"rules"`
	Request *riichi.ScoreRequest `json:"request"`
}

// Fingerprint 请求的 SHA-256 指纹 (hex)
func Fingerprint(rules riichi.Rules, req *riichi.ScoreRequest) (string, error) {
	data, err := json.Marshal(fingerprintInput{Rules: rules, Request: req})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Score 计分
func (s *ScoreService) Score(ctx context.Context, req *riichi.ScoreRequest) (*riichi.ScoreResult, error) {
	if req == nil {
		return nil, appErrors.ErrInvalidRequest
	}

	fp, err := Fingerprint(s.engine.Rules(), req)
	if err != nil {
		return nil, appErrors.ErrInvalidRequest.Wrap(err)
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, fp)
		if err != nil {
			s.logger.Warn("Failed to read result cache", "fingerprint", fp, "error", err)
		} else if found {
			s.logger.Debug("Result cache hit", "fingerprint", fp)
			return cached, nil
		}
	}

	result, err := s.engine.Score(req)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, fp, result); err != nil {
			s.logger.Warn("Failed to write result cache", "fingerprint", fp, "error", err)
		}
	}

	s.persist(fp, req, result)
	return result, nil
}

// persist 提交异步落库任务, 队列满时丢弃并告警
func (s *ScoreService) persist(fp string, req *riichi.ScoreRequest, result *riichi.ScoreResult) {
	if s.store == nil || s.pool == nil {
		return
	}

	rec, err := newRecord(fp, req, result)
	if err != nil {
		s.logger.Error("Failed to build score record", "fingerprint", fp, "error", err)
		return
	}

	err = s.pool.TrySubmit(func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, persistTimeout)
		defer cancel()

		id, err := s.store.Create(ctx, rec)
		if err != nil {
			s.logger.Error("Failed to persist score record", "fingerprint", fp, "error", err)
			return
		}
		s.logger.Debug("Score record persisted", "id", id, "fingerprint", fp)
	})
	if err != nil {
		s.logger.Warn("Score record dropped", "fingerprint", fp, "error", err)
	}
}

func newRecord(fp string, req *riichi.ScoreRequest, result *riichi.ScoreResult) (*model.ScoreRecord, error) {
	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resData, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	return &model.ScoreRecord{
		Fingerprint: fp,
		Request:     reqData,
		Result:      resData,
		Outcome:     string(result.Outcome),
		TotalPoints: result.TotalPoints,
		Han:         result.Han,
		Fu:          result.Fu,
		Yakuman:     result.Yakuman,
		CreateAt:    time.Now(),
	}, nil
}

// GetRecord 查询计分记录
func (s *ScoreService) GetRecord(ctx context.Context, id int64) (*model.ScoreRecord, error) {
	if s.store == nil {
		return nil, appErrors.ErrRecordNotFound
	}

	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScoreRecordNotFound) {
			return nil, appErrors.ErrRecordNotFound.Wrap(err)
		}
		return nil, appErrors.ErrDBError.Wrap(err)
	}
	return rec, nil
}

// ListRecords 最近的计分记录
func (s *ScoreService) ListRecords(ctx context.Context, limit int) ([]*model.ScoreRecord, error) {
	if s.store == nil {
		return []*model.ScoreRecord{}, nil
	}

	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, appErrors.ErrDBError.Wrap(err)
	}
	return records, nil
}
