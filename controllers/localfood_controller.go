package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/models"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// LocalFoodController 로컬푸드 직매장 요청을 처리
type LocalFoodController struct {
	BaseControllerImpl
}

// NewLocalFoodController 새 로컬푸드 컨트롤러 생성
func (f *ControllerFactory) NewLocalFoodController(ctx *gin.Context) *LocalFoodController {
	return &LocalFoodController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetAllStores 직매장 목록을 페이지 단위로 반환
func (c *LocalFoodController) GetAllStores() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Context.DefaultQuery("limit", "10"))

	stores, total, err := c.Container.GetLocalFoodService().GetAllStores(page, limit)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, gin.H{
		"stores":     stores,
		"pagination": models.NewPaginationResult(int(total), page, limit),
	})
}

// GetStore ID로 직매장 하나를 반환
func (c *LocalFoodController) GetStore() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "잘못된 직매장 ID입니다")
		return
	}

	store, err := c.Container.GetLocalFoodService().GetStoreByID(uint(id))
	if err != nil {
		response.NotFound(c.Context, err.Error())
		return
	}
	response.Success(c.Context, store)
}

// SearchStores 이름/주소 키워드로 직매장을 검색
func (c *LocalFoodController) SearchStores() {
	keyword := c.Context.Query("keyword")
	if keyword == "" {
		response.ParamError(c.Context, "검색어가 필요합니다")
		return
	}

	stores, err := c.Container.GetLocalFoodService().SearchStores(keyword)
	if err != nil {
		response.ServerError(c.Context)
		return
	}
	response.Success(c.Context, stores)
}

// HandleLocalFoodFunc 로컬푸드 요청을 처리하는 Gin 핸들러 반환
func HandleLocalFoodFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewLocalFoodController(ctx)

		switch method {
		case "getAllStores":
			controller.GetAllStores()
		case "getStore":
			controller.GetStore()
		case "searchStores":
			controller.SearchStores()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
