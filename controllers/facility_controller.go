package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/code"
	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// FacilityController 노인복지시설 등록부 요청을 처리
type FacilityController struct {
	BaseControllerImpl
}

// NewFacilityController 새 시설 컨트롤러 생성
func (f *ControllerFactory) NewFacilityController(ctx *gin.Context) *FacilityController {
	return &FacilityController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetAllFacilities 전체 시설 목록을 반환
func (c *FacilityController) GetAllFacilities() {
	facilities, err := c.Container.GetFacilityService().GetAllFacilities()
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, gin.H{
		"facilities": facilities,
		"count":      len(facilities),
	})
}

// GetFacilitiesByType 시설구분별 목록을 반환
func (c *FacilityController) GetFacilitiesByType() {
	facilityType := c.Context.Param("type")

	facilities, err := c.Container.GetFacilityService().GetFacilitiesByType(facilityType)
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, facilities)
}

// SearchByRadius 좌표 기준 반경 내 시설을 검색
func (c *FacilityController) SearchByRadius() {
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

	facilities, err := c.Container.GetFacilityService().SearchByRadius(latitude, longitude, radius)
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, gin.H{
		"facilities": facilities,
		"count":      len(facilities),
	})
}

// ImportFromCSV 공공데이터 CSV에서 시설 등록부를 다시 적재
func (c *FacilityController) ImportFromCSV() {
	importID, count, err := c.Container.GetFacilityService().ImportFromCSV()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatasetImport, err.Error(), nil)
		return
	}
	response.Success(c.Context, gin.H{
		"message":  "데이터 가져오기 완료",
		"importId": importID,
		"count":    count,
	})
}

// HandleFacilityFunc 시설 요청을 처리하는 Gin 핸들러 반환
func HandleFacilityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewFacilityController(ctx)

		switch method {
		case "getAllFacilities":
			controller.GetAllFacilities()
		case "getFacilitiesByType":
			controller.GetFacilitiesByType()
		case "searchByRadius":
			controller.SearchByRadius()
		case "importFromCSV":
			controller.ImportFromCSV()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
