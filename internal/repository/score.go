package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sudooom.mahjong.score/internal/model"
)

var ErrScoreRecordNotFound = errors.New("score record not found")

// MaxListLimit 单次查询的记录上限
const MaxListLimit = 100

// ScoreRepository 计分记录仓库
type ScoreRepository struct {
	db *pgxpool.Pool
}

// NewScoreRepository 创建计分记录仓库
func NewScoreRepository(db *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create 写入计分记录, 返回自增 ID
func (r *ScoreRepository) Create(ctx context.Context, rec *model.ScoreRecord) (int64, error) {
	query := `
		INSERT INTO score_records (fingerprint, request, result, outcome, total_points, han, fu, yakuman, create_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rec.Fingerprint,
		rec.Request,
		rec.Result,
		rec.Outcome,
		rec.TotalPoints,
		rec.Han,
		rec.Fu,
		rec.Yakuman,
		rec.CreateAt,
	).Scan(&id)

	return id, err
}

// FindByID 根据 ID 查找记录
func (r *ScoreRepository) FindByID(ctx context.Context, id int64) (*model.ScoreRecord, error) {
	query := `
		SELECT id, fingerprint, request, result, outcome, total_points, han, fu, yakuman, create_at
		FROM score_records WHERE id = $1
	`

	rec := &model.ScoreRecord{}
	err := scanRecord(r.db.QueryRow(ctx, query, id), rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScoreRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

// List 按时间倒序列出最近的记录
func (r *ScoreRepository) List(ctx context.Context, limit int) ([]*model.ScoreRecord, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := `
		SELECT id, fingerprint, request, result, outcome, total_points, han, fu, yakuman, create_at
		FROM score_records
		ORDER BY create_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*model.ScoreRecord, 0, limit)
	for rows.Next() {
		rec := &model.ScoreRecord{}
		if err := scanRecord(rows, rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row, rec *model.ScoreRecord) error {
	return row.Scan(
		&rec.Id,
		&rec.Fingerprint,
		&rec.Request,
		&rec.Result,
		&rec.Outcome,
		&rec.TotalPoints,
		&rec.Han,
		&rec.Fu,
		&rec.Yakuman,
		&rec.CreateAt,
	)
}
