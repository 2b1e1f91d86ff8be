package services

import (
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

// InterfaceWelfareService 복지시설 서비스 인터페이스
type InterfaceWelfareService interface {
	GetAllFacilities() ([]models.WelfareFacility, error)
	GetFacilitiesByType(facilityType string) ([]models.WelfareFacility, error)
	GetNearbyFacilities(latitude, longitude, radiusKm float64) ([]models.WelfareFacility, error)
}

// WelfareService 복지시설 조회를 처리
type WelfareService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewWelfareService 새 복지시설 서비스 생성
func NewWelfareService(db *gorm.DB, cfg *config.Config) InterfaceWelfareService {
	return &WelfareService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllFacilities 전체 복지시설 조회
func (s *WelfareService) GetAllFacilities() ([]models.WelfareFacility, error) {
	var facilities []models.WelfareFacility
	if err := s.DB.Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

// GetFacilitiesByType 시설 유형별 조회
func (s *WelfareService) GetFacilitiesByType(facilityType string) ([]models.WelfareFacility, error) {
	var facilities []models.WelfareFacility
	if err := s.DB.Where("facility_type = ?", facilityType).Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

// GetNearbyFacilities 지정 좌표에서 radiusKm 이내의 복지시설 조회
func (s *WelfareService) GetNearbyFacilities(latitude, longitude, radiusKm float64) ([]models.WelfareFacility, error) {
	facilities, err := s.GetAllFacilities()
	if err != nil {
		return nil, err
	}

	nearby := make([]models.WelfareFacility, 0)
	for _, facility := range facilities {
		if utils.HaversineKm(latitude, longitude, facility.Latitude, facility.Longitude) <= radiusKm {
			nearby = append(nearby, facility)
		}
	}
	return nearby, nil
}
