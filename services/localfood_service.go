package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
)

// InterfaceLocalFoodService 로컬푸드 직매장 서비스 인터페이스
type InterfaceLocalFoodService interface {
	GetAllStores(page, pageSize int) ([]models.LocalFoodStore, int64, error)
	GetStoreByID(id uint) (*models.LocalFoodStore, error)
	SearchStores(keyword string) ([]models.LocalFoodStore, error)
}

// LocalFoodService 로컬푸드 직매장 조회를 처리
type LocalFoodService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLocalFoodService 새 로컬푸드 서비스 생성
func NewLocalFoodService(db *gorm.DB, cfg *config.Config) InterfaceLocalFoodService {
	return &LocalFoodService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllStores 직매장 목록을 번호순으로 페이지 조회
func (s *LocalFoodService) GetAllStores(page, pageSize int) ([]models.LocalFoodStore, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var total int64
	if err := s.DB.Model(&models.LocalFoodStore{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var stores []models.LocalFoodStore
	offset := (page - 1) * pageSize
	if err := s.DB.Order("number ASC").Limit(pageSize).Offset(offset).Find(&stores).Error; err != nil {
		return nil, 0, err
	}

	return stores, total, nil
}

// GetStoreByID ID로 직매장 조회
func (s *LocalFoodService) GetStoreByID(id uint) (*models.LocalFoodStore, error) {
	var store models.LocalFoodStore
	if err := s.DB.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("직매장을 찾을 수 없습니다")
		}
		return nil, err
	}
	return &store, nil
}

// SearchStores 이름 또는 주소에 키워드가 포함된 직매장 검색
func (s *LocalFoodService) SearchStores(keyword string) ([]models.LocalFoodStore, error) {
	var stores []models.LocalFoodStore
	pattern := "%" + keyword + "%"
	err := s.DB.Where("name LIKE ? OR address LIKE ?", pattern, pattern).
		Order("number ASC").
		Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}
