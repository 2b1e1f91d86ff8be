package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
)

// InterfaceSensorService 센서 데이터 서비스 인터페이스
type InterfaceSensorService interface {
	QuerySensorData(location, sensorType, period string) ([]models.SensorData, error)
	GetLatestByType(sensorType string) (*models.SensorData, error)
	SaveReading(reading *models.SensorData) error
}

// SensorService 농장 센서 측정값 조회/저장을 처리
type SensorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSensorService 새 센서 서비스 생성
func NewSensorService(db *gorm.DB, cfg *config.Config) InterfaceSensorService {
	return &SensorService{
		DB:     db,
		Config: cfg,
	}
}

// QuerySensorData 구역/종류/기간 조건으로 최신순 100건까지 조회한다.
// 저장된 데이터가 없으면 프론트엔드 확인용 샘플 데이터를 반환한다.
func (s *SensorService) QuerySensorData(location, sensorType, period string) ([]models.SensorData, error) {
	query := s.DB.Model(&models.SensorData{})

	if location != "" {
		query = query.Where("location = ?", location)
	}
	if sensorType != "" {
		query = query.Where("type = ?", sensorType)
	}
	if period != "" {
		query = query.Where("timestamp >= ?", periodStart(period))
	}

	var data []models.SensorData
	if err := query.Order("timestamp DESC").Limit(100).Find(&data).Error; err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return sampleSensorData(), nil
	}
	return data, nil
}

// GetLatestByType 센서 종류별 가장 최근 측정값 하나를 조회
func (s *SensorService) GetLatestByType(sensorType string) (*models.SensorData, error) {
	var reading models.SensorData
	err := s.DB.Where("type = ?", sensorType).
		Order("timestamp DESC").
		First(&reading).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &reading, nil
}

// SaveReading 측정값 저장
func (s *SensorService) SaveReading(reading *models.SensorData) error {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}
	return s.DB.Create(reading).Error
}

// periodStart 조회 기간의 시작 시각. 알 수 없는 값은 최근 6시간.
func periodStart(period string) time.Time {
	now := time.Now()
	switch period {
	case "day":
		return now.AddDate(0, 0, -1)
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	default:
		return now.Add(-6 * time.Hour)
	}
}

// sampleSensorData 데이터가 없을 때 반환하는 샘플
func sampleSensorData() []models.SensorData {
	now := time.Now()
	return []models.SensorData{
		{Location: "deodeok-A", Type: "moisture", Value: 65, Timestamp: now},
		{Location: "doraji-A", Type: "co2", Value: 420, Timestamp: now},
	}
}
