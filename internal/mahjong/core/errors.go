package core

import "fmt"

// GameError 牌局计算错误类型
type GameError struct {
	Code    string         // 错误代码
	Message string         // 错误消息
	Cause   error          // 原因错误
	Context map[string]any // 错误上下文
}

func (e *GameError) Error() string {
	if len(e.Context) > 0 {
		if e.Cause != nil {
			return fmt.Sprintf("[%s] %s %v: %v", e.Code, e.Message, e.Context, e.Cause)
		}
		return fmt.Sprintf("[%s] %s %v", e.Code, e.Message, e.Context)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *GameError) Unwrap() error {
	return e.Cause
}

// Is 按错误代码比较, 使 errors.Is 对 With/WithCause 派生出的副本同样生效
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewGameError 创建错误
func NewGameError(code, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WithCause 返回带原因错误的副本
func (e *GameError) WithCause(cause error) *GameError {
	cp := e.clone()
	cp.Cause = cause
	return cp
}

// With 返回带上下文信息的副本 (预定义错误是共享的, 不能原地修改)
func (e *GameError) With(key string, value any) *GameError {
	cp := e.clone()
	cp.Context[key] = value
	return cp
}

func (e *GameError) clone() *GameError {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	return &GameError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: ctx,
	}
}

// 解析相关错误
var (
	ErrInvalidTileCode = NewGameError("INVALID_TILE_CODE", "无效的牌代码")
	ErrInvalidRequest  = NewGameError("INVALID_REQUEST", "无效的计分请求")
)
