package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/internal/error/code"
	"github.com/kyuhunjo/backun-farm-backend/internal/error/response"
	"github.com/kyuhunjo/backun-farm-backend/models"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// JobPostingController 일손모집 공고 요청을 처리
type JobPostingController struct {
	BaseControllerImpl
}

// NewJobPostingController 새 일손모집 공고 컨트롤러 생성
func (f *ControllerFactory) NewJobPostingController(ctx *gin.Context) *JobPostingController {
	return &JobPostingController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetAllJobPostings 공고 목록을 반환 (status 쿼리로 필터)
func (c *JobPostingController) GetAllJobPostings() {
	status := c.Context.Query("status")

	postings, err := c.Container.GetJobPostingService().GetAllJobPostings(status)
	if err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, gin.H{
		"postings": postings,
		"count":    len(postings),
	})
}

// GetJobPosting ID로 공고 하나를 반환
func (c *JobPostingController) GetJobPosting() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "잘못된 공고 ID입니다")
		return
	}

	posting, err := c.Container.GetJobPostingService().GetJobPostingByID(uint(id))
	if err != nil {
		response.NotFound(c.Context, err.Error())
		return
	}
	response.Success(c.Context, posting)
}

// CreateJobPosting 새 공고 생성
func (c *JobPostingController) CreateJobPosting() {
	var posting models.JobPosting
	if err := c.Context.ShouldBindJSON(&posting); err != nil {
		response.Fail(c.Context, code.ErrBind, nil)
		return
	}

	if err := c.Container.GetJobPostingService().CreateJobPosting(&posting); err != nil {
		response.Fail(c.Context, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Context, posting)
}

// UpdateJobPosting 공고 수정
func (c *JobPostingController) UpdateJobPosting() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "잘못된 공고 ID입니다")
		return
	}

	var updates map[string]interface{}
	if err := c.Context.ShouldBindJSON(&updates); err != nil {
		response.Fail(c.Context, code.ErrBind, nil)
		return
	}

	posting, err := c.Container.GetJobPostingService().UpdateJobPosting(uint(id), updates)
	if err != nil {
		response.NotFound(c.Context, err.Error())
		return
	}
	response.Success(c.Context, posting)
}

// DeleteJobPosting 공고 삭제
func (c *JobPostingController) DeleteJobPosting() {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Context, "잘못된 공고 ID입니다")
		return
	}

	if err := c.Container.GetJobPostingService().DeleteJobPosting(uint(id)); err != nil {
		response.NotFound(c.Context, err.Error())
		return
	}
	response.Success(c.Context, nil)
}

// HandleJobPostingFunc 일손모집 공고 요청을 처리하는 Gin 핸들러 반환
func HandleJobPostingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewJobPostingController(ctx)

		switch method {
		case "getAllJobPostings":
			controller.GetAllJobPostings()
		case "getJobPosting":
			controller.GetJobPosting()
		case "createJobPosting":
			controller.CreateJobPosting()
		case "updateJobPosting":
			controller.UpdateJobPosting()
		case "deleteJobPosting":
			controller.DeleteJobPosting()
		default:
			response.ParamError(ctx, "잘못된 메서드입니다")
		}
	}
}
