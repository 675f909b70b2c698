package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"sudooom.mahjong.score/internal/mahjong/riichi"
	"sudooom.mahjong.score/internal/model"
	"sudooom.mahjong.score/pkg/response"
)

// defaultListLimit 列表默认条数
const defaultListLimit = 20

// ScoreService 计分服务接口
type ScoreService interface {
	Score(ctx context.Context, req *riichi.ScoreRequest) (*riichi.ScoreResult, error)
	GetRecord(ctx context.Context, id int64) (*model.ScoreRecord, error)
	ListRecords(ctx context.Context, limit int) ([]*model.ScoreRecord, error)
}

// ScoreHandler 计分处理器
type ScoreHandler struct {
	scoreService ScoreService
}

// NewScoreHandler 创建计分处理器
func NewScoreHandler(scoreService ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// Score 计算一手牌的得点
// @Summary      计分
// @Description  计算和了手牌的最高得点解释. 无法拆分或无役同样返回 code=0, 由 data.outcome 区分
// @Tags         计分
// @Accept       json
// @Produce      json
// @Param        request body riichi.ScoreRequest true "和了信息"
// @Success      200  {object}  response.Response{data=riichi.ScoreResult}
// @Failure      200  {object}  response.Response
// @Router       /score [post]
func (h *ScoreHandler) Score(c *gin.Context) {
	var req riichi.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidRequest, err.Error())
		return
	}

	result, err := h.scoreService.Score(c.Request.Context(), &req)
	if err != nil {
		response.ErrorFromAppError(c, err)
		return
	}

	response.Success(c, result)
}

// GetRecord 获取计分记录
// @Summary      获取计分记录
// @Tags         计分
// @Produce      json
// @Param        id   path      int  true  "记录 ID"
// @Success      200  {object}  response.Response{data=model.ScoreRecord}
// @Failure      200  {object}  response.Response
// @Router       /scores/{id} [get]
func (h *ScoreHandler) GetRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, response.CodeInvalidRequest)
		return
	}

	rec, err := h.scoreService.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.ErrorFromAppError(c, err)
		return
	}

	response.Success(c, rec)
}

// ListRecords 最近的计分记录
// @Summary      计分记录列表
// @Tags         计分
// @Produce      json
// @Param        limit  query     int  false  "条数 (默认 20, 最大 100)"
// @Success      200    {object}  response.Response{data=[]model.ScoreRecord}
// @Failure      200    {object}  response.Response
// @Router       /scores [get]
func (h *ScoreHandler) ListRecords(c *gin.Context) {
	limit := defaultListLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			response.Error(c, response.CodeInvalidRequest)
			return
		}
		limit = n
	}

	records, err := h.scoreService.ListRecords(c.Request.Context(), limit)
	if err != nil {
		response.ErrorFromAppError(c, err)
		return
	}

	response.Success(c, records)
}
