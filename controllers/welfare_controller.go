package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/code"
	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// WelfareController 복지시설 요청을 처리
type WelfareController struct {
	BaseControllerImpl
}

// NewWelfareController 새 복지시설 컨트롤러 생성
func (f *ControllerFactory) NewWelfareController(ctx *gin.Context) *WelfareController {
	return &WelfareController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetAllFacilities 전체 복지시설 목록을 반환
func (c *WelfareController) GetAllFacilities() {
	facilities, err := c.Container.GetWelfareService().GetAllFacilities()
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, facilities)
}

// GetFacilitiesByType 시설 유형별 목록을 반환
func (c *WelfareController) GetFacilitiesByType() {
	facilityType := c.Context.Param("type")

	facilities, err := c.Container.GetWelfareService().GetFacilitiesByType(facilityType)
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, facilities)
}

// GetNearbyFacilities 좌표 기준 주변 복지시설을 반환
func (c *WelfareController) GetNearbyFacilities() {
	latitude, latErr := strconv.ParseFloat(c.Context.Query("latitude"), 64)
	longitude, lonErr := strconv.ParseFloat(c.Context.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		response.ParamError(c.Context, "위도/경도가 필요합니다")
		return
	}

	radius, err := strconv.ParseFloat(c.Context.DefaultQuery("radius", "1"), 64)
	if err != nil {
		response.ParamError(c.Context, "잘못된 반경 값입니다")
		return
	}

	facilities, err := c.Container.GetWelfareService().GetNearbyFacilities(latitude, longitude, radius)
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, facilities)
}

// HandleWelfareFunc 복지시설 요청을 처리하는 Gin 핸들러 반환
func HandleWelfareFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewWelfareController(ctx)

		switch method {
		case "getAllFacilities":
			controller.GetAllFacilities()
		case "getFacilitiesByType":
			controller.GetFacilitiesByType()
		case "getNearbyFacilities":
			controller.GetNearbyFacilities()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
