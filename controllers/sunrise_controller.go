package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

// SunriseController 일출/일몰 관련 요청을 처리
type SunriseController struct {
	BaseControllerImpl
}

// NewSunriseController 새 일출/일몰 컨트롤러 생성
func (f *ControllerFactory) NewSunriseController(ctx *gin.Context) *SunriseController {
	return &SunriseController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetSunriseSunset 지정 날짜/좌표의 일출·일몰 정보를 반환한다.
// 날짜는 YYYYMMDD 형식이며 생략 시 오늘(KST), 좌표 생략 시 기본
// 지점을 사용한다.
func (c *SunriseController) GetSunriseSunset() {
	date := c.Context.Query("date")
	longitude := c.Context.Query("longitude")
	latitude := c.Context.Query("latitude")

	record, err := c.Container.GetSunriseService().GetRiseSet(date, longitude, latitude)
	if err != nil {
		// 입력 오류는 업스트림 문제가 아니라 요청 문제다
		if errors.Is(err, services.ErrInvalidDateParam) || errors.Is(err, utils.ErrInvalidCoordinate) {
			response.ParamError(c.Context, err.Error())
			return
		}
		response.UpstreamError(c.Context, err)
		return
	}

	response.Success(c.Context, record)
}

// HandleSunriseFunc 일출/일몰 요청을 처리하는 Gin 핸들러 반환
func HandleSunriseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewSunriseController(ctx)

		switch method {
		case "getSunriseSunset":
			controller.GetSunriseSunset()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
