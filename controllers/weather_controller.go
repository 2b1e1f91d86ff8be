package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// WeatherController 날씨 관련 요청을 처리
type WeatherController struct {
	BaseControllerImpl
}

// NewWeatherController 새 날씨 컨트롤러 생성
func (f *ControllerFactory) NewWeatherController(ctx *gin.Context) *WeatherController {
	return &WeatherController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetWeather 오늘 실황 요약을 반환한다. 실황과 예보를 동시에
// 조회해 오늘의 최저/최고 기온을 보정한 결과이다.
func (c *WeatherController) GetWeather() {
	redisService := c.Container.GetRedisService()

	// 캐시 우선 조회
	var cached services.CurrentWeather
	if err := redisService.GetUpstream("weather", "current", &cached); err == nil {
		response.Success(c.Context, cached)
		return
	}

	weather, err := c.Container.GetWeatherService().GetCurrentWeather()
	if err != nil {
		response.UpstreamError(c.Context, err)
		return
	}

	// 실황은 10분 캐시
	redisService.CacheUpstream("weather", "current", weather, 10*time.Minute)
	response.Success(c.Context, weather)
}

// GetForecast 일별 예보를 반환한다. exclude_today=true면 내일부터
// 시작하는 예보만 내보낸다.
func (c *WeatherController) GetForecast() {
	excludeToday := c.Context.Query("exclude_today") == "true"
	redisService := c.Container.GetRedisService()

	cacheKey := "daily"
	if excludeToday {
		cacheKey = "daily:after_today"
	}

	var cached []services.ForecastDay
	if err := redisService.GetUpstream("forecast", cacheKey, &cached); err == nil && len(cached) > 0 {
		response.Success(c.Context, cached)
		return
	}

	forecast, err := c.Container.GetWeatherService().GetForecast(excludeToday)
	if err != nil {
		response.UpstreamError(c.Context, err)
		return
	}

	// 예보는 1시간 캐시
	redisService.CacheUpstream("forecast", cacheKey, forecast, 1*time.Hour)
	response.Success(c.Context, forecast)
}

// HandleWeatherFunc 날씨 요청을 처리하는 Gin 핸들러 반환
func HandleWeatherFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewWeatherController(ctx)

		switch method {
		case "getWeather":
			controller.GetWeather()
		case "getForecast":
			controller.GetForecast()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
