package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/code"
	"github.com/kyuhunjo/backun-farm-backend/services"
)

// Response 통일된 응답 형식
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 성공 응답
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail 실패 응답
func Fail(c *gin.Context, errorCode int, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetMessage(errorCode),
		Data:    data,
	})
}

// FailWithMessage 실패 응답 (메시지 지정)
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ParamError 파라미터 오류 응답
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// ServerError 서버 오류 응답
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// NotFound 자원 없음 응답
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "자원이 존재하지 않습니다"
	}
	FailWithMessage(c, code.ErrRecordNotFound, message, nil)
}

// UpstreamError 업스트림 오류를 해당 오류 코드로 변환해 응답
func UpstreamError(c *gin.Context, err error) {
	var rejected *services.UpstreamRejectedError
	if errors.As(err, &rejected) {
		FailWithMessage(c, code.ErrUpstreamRejected, rejected.Error(), nil)
		return
	}

	var format *services.UpstreamFormatError
	if errors.As(err, &format) {
		FailWithMessage(c, code.ErrUpstreamFormat, format.Error(), nil)
		return
	}

	FailWithMessage(c, code.ErrUpstreamUnavailable, err.Error(), nil)
}
