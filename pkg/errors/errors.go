package errors

import (
	"errors"
	"fmt"

	"sudooom.mahjong.score/internal/mahjong/core"
)

// AppError 应用错误类型
// HTTP 与 NATS 应答共用的错误码和错误消息
type AppError struct {
	Code    int    // 错误码
	Message string // 用户可见的错误消息
	Err     error  // 原始错误（可选，用于调试）
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewError 创建新错误
func NewError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装原始错误
func (e *AppError) Wrap(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Is 判断是否为指定错误
func Is(err error, target *AppError) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == target.Code
	}
	return false
}

// GetCode 获取错误码. 计分引擎的 GameError 按错误代码映射, 其余返回服务器错误
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case errors.Is(err, core.ErrInvalidTileCode):
		return CodeInvalidTileCode
	case errors.Is(err, core.ErrInvalidRequest):
		return CodeInvalidRequest
	}
	return CodeServerError
}

// GetMessage 获取错误消息
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	var gameErr *core.GameError
	if errors.As(err, &gameErr) {
		return gameErr.Error()
	}
	return "服务器内部错误"
}

// FromError 将任意错误转换为 AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: GetCode(err), Message: GetMessage(err), Err: err}
}

// ============== 错误码定义 ==============

const (
	CodeSuccess = 0

	// 计分请求 20000-20999
	CodeInvalidTileCode = 20001
	CodeInvalidRequest  = 20002

	// 记录 21000-21999
	CodeRecordNotFound = 21001

	// 系统错误 50000-50999
	CodeServerError = 50001
	CodeDBError     = 50002
)

// ============== 预定义错误 ==============

var (
	ErrInvalidTileCode = NewError(CodeInvalidTileCode, "无效的牌代码")
	ErrInvalidRequest  = NewError(CodeInvalidRequest, "参数校验失败")
	ErrRecordNotFound  = NewError(CodeRecordNotFound, "计分记录不存在")
)

// 系统相关
var (
	ErrServerError = NewError(CodeServerError, "服务器内部错误")
	ErrDBError     = NewError(CodeDBError, "数据库错误")
)
