package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheckController 헬스체크 컨트롤러
type HealthCheckController struct{}

// NewHealthCheckController 헬스체크 컨트롤러 생성
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping 헬스체크 엔드포인트
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "ok",
	})
}
