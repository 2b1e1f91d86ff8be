package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// AirQualityController 대기질 관련 요청을 처리
type AirQualityController struct {
	BaseControllerImpl
}

// NewAirQualityController 새 대기질 컨트롤러 생성
func (f *ControllerFactory) NewAirQualityController(ctx *gin.Context) *AirQualityController {
	return &AirQualityController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetAirQuality 기본 측정소(화순읍)의 대기질 정보를 반환
func (c *AirQualityController) GetAirQuality() {
	redisService := c.Container.GetRedisService()

	var cached services.StationMeasurement
	if err := redisService.GetUpstream("airquality", "local", &cached); err == nil {
		response.Success(c.Context, cached)
		return
	}

	measurement, err := c.Container.GetAirQualityService().GetLocalAirQuality()
	if err != nil {
		response.UpstreamError(c.Context, err)
		return
	}

	redisService.CacheUpstream("airquality", "local", measurement, 30*time.Minute)
	response.Success(c.Context, measurement)
}

// GetStation 경로 파라미터로 지정한 측정소의 대기질 정보를 반환
func (c *AirQualityController) GetStation() {
	name := c.Context.Param("name")
	if name == "" {
		response.ParamError(c.Context, "측정소 이름이 필요합니다")
		return
	}

	measurement, err := c.Container.GetAirQualityService().GetStation(name)
	if err != nil {
		response.UpstreamError(c.Context, err)
		return
	}
	response.Success(c.Context, measurement)
}

// GetAllStations 시도 전체 측정소 목록을 이름순으로 반환
func (c *AirQualityController) GetAllStations() {
	redisService := c.Container.GetRedisService()

	var cached []services.StationMeasurement
	if err := redisService.GetUpstream("airquality", "stations", &cached); err == nil && len(cached) > 0 {
		response.Success(c.Context, cached)
		return
	}

	stations, err := c.Container.GetAirQualityService().GetAllStations()
	if err != nil {
		response.UpstreamError(c.Context, err)
		return
	}

	redisService.CacheUpstream("airquality", "stations", stations, 30*time.Minute)
	response.Success(c.Context, stations)
}

// HandleAirQualityFunc 대기질 요청을 처리하는 Gin 핸들러 반환
func HandleAirQualityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewAirQualityController(ctx)

		switch method {
		case "getAirQuality":
			controller.GetAirQuality()
		case "getStation":
			controller.GetStation()
		case "getAllStations":
			controller.GetAllStations()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
