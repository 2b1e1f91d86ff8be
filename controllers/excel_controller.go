package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/code"
	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// ExcelController 엑셀 데이터셋 요청을 처리
type ExcelController struct {
	BaseControllerImpl
}

// NewExcelController 새 엑셀 컨트롤러 생성
func (f *ControllerFactory) NewExcelController(ctx *gin.Context) *ExcelController {
	return &ExcelController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetAllData 엑셀 데이터 전체를 반환
func (c *ExcelController) GetAllData() {
	rows, err := c.Container.GetExcelService().GetAllRows()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatasetNotFound, err.Error(), nil)
		return
	}
	response.Success(c.Context, rows)
}

// GetColumn 특정 열의 값 목록을 반환
func (c *ExcelController) GetColumn() {
	name := c.Context.Param("name")
	if name == "" {
		response.ParamError(c.Context, "열 이름이 필요합니다")
		return
	}

	values, err := c.Container.GetExcelService().GetColumn(name)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatasetNotFound, err.Error(), nil)
		return
	}
	response.Success(c.Context, values)
}

// HandleExcelFunc 엑셀 요청을 처리하는 Gin 핸들러 반환
func HandleExcelFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewExcelController(ctx)

		switch method {
		case "getAllData":
			controller.GetAllData()
		case "getColumn":
			controller.GetColumn()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
