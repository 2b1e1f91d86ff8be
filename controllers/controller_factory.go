package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// BaseController 모든 컨트롤러의 기본 인터페이스
type BaseController interface {
	// 서비스 컨테이너 반환
	GetContainer() *container.ServiceContainer
	// Gin 컨텍스트 반환
	GetContext() *gin.Context
}

// BaseControllerImpl 컨트롤러 기본 구현
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer BaseController 인터페이스 구현
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext BaseController 인터페이스 구현
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// ControllerFactory 컨트롤러 생성 팩토리
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory 새 컨트롤러 팩토리 생성
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}
