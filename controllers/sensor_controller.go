package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// SensorController 농장 센서 데이터 요청을 처리
type SensorController struct {
	BaseControllerImpl
}

// NewSensorController 새 센서 컨트롤러 생성
func (f *ControllerFactory) NewSensorController(ctx *gin.Context) *SensorController {
	return &SensorController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetSensorData 구역/종류/기간 조건으로 센서 측정값을 조회
func (c *SensorController) GetSensorData() {
	location := c.Context.Query("location")
	sensorType := c.Context.Query("type")
	period := c.Context.Query("period")

	data, err := c.Container.GetSensorService().QuerySensorData(location, sensorType, period)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, data)
}

// GetSensorDataByType 센서 종류별 최근 측정값 하나를 조회
func (c *SensorController) GetSensorDataByType() {
	sensorType := c.Context.Param("type")

	reading, err := c.Container.GetSensorService().GetLatestByType(sensorType)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	if reading == nil {
		response.NotFound(c.Context, "해당 종류의 측정값이 없습니다")
		return
	}
	response.Success(c.Context, reading)
}

// HandleSensorFunc 센서 요청을 처리하는 Gin 핸들러 반환
func HandleSensorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewSensorController(ctx)

		switch method {
		case "getSensorData":
			controller.GetSensorData()
		case "getSensorDataByType":
			controller.GetSensorDataByType()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
