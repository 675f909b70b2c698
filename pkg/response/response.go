package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "sudooom.mahjong.score/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 错误码常量（使用 pkg/errors 包的定义）
const (
	CodeSuccess         = appErrors.CodeSuccess
	CodeInvalidTileCode = appErrors.CodeInvalidTileCode
	CodeInvalidRequest  = appErrors.CodeInvalidRequest
	CodeRecordNotFound  = appErrors.CodeRecordNotFound
	CodeServerError     = appErrors.CodeServerError
	CodeDBError         = appErrors.CodeDBError
)

var codeMessages = map[int]string{
	CodeSuccess:         "success",
	CodeInvalidTileCode: "无效的牌代码",
	CodeInvalidRequest:  "参数校验失败",
	CodeRecordNotFound:  "计分记录不存在",
	CodeServerError:     "服务器内部错误",
	CodeDBError:         "数据库错误",
}

// New 构造响应体, NATS 应答同样使用该结构
func New(code int, message string, data interface{}) Response {
	return Response{Code: code, Message: message, Data: data}
}

// OK 成功响应体
func OK(data interface{}) Response {
	return New(CodeSuccess, "success", data)
}

// FromError 由错误构造响应体
func FromError(err error) Response {
	return New(appErrors.GetCode(err), appErrors.GetMessage(err), nil)
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, OK(data))
}

// Error 错误响应
func Error(c *gin.Context, code int) {
	message := codeMessages[code]
	if message == "" {
		message = "unknown error"
	}
	c.JSON(http.StatusOK, New(code, message, nil))
}

// ErrorWithMsg 自定义错误消息
func ErrorWithMsg(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, New(code, message, nil))
}

// ErrorFromAppError 从 AppError 生成错误响应
func ErrorFromAppError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, FromError(err))
}
