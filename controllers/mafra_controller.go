package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// MafraController 농림축산식품부 뉴스 요청을 처리
type MafraController struct {
	BaseControllerImpl
}

// NewMafraController 새 농림축산식품부 뉴스 컨트롤러 생성
func (f *ControllerFactory) NewMafraController(ctx *gin.Context) *MafraController {
	return &MafraController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetNews 농림축산식품부 보도자료 목록을 반환
func (c *MafraController) GetNews() {
	redisService := c.Container.GetRedisService()

	var cached services.NewsFeed
	if err := redisService.GetUpstream("mafra", "news", &cached); err == nil && len(cached.Items) > 0 {
		response.Success(c.Context, cached)
		return
	}

	feed, err := c.Container.GetMafraService().GetNews()
	if err != nil {
		response.UpstreamError(c.Context, err)
		return
	}

	redisService.CacheUpstream("mafra", "news", feed, 1*time.Hour)
	response.Success(c.Context, feed)
}

// HandleMafraFunc 농림축산식품부 뉴스 요청을 처리하는 Gin 핸들러 반환
func HandleMafraFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewMafraController(ctx)

		switch method {
		case "getNews":
			controller.GetNews()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
