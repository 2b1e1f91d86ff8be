package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/services"
)

// ServiceContainer 모든 서비스의 의존성 주입을 관리
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 데이터 저장 서비스
	redisService services.InterfaceRedisService

	// 업스트림 조회 서비스
	weatherService    services.InterfaceWeatherService
	airQualityService services.InterfaceAirQualityService
	sunriseService    services.InterfaceSunriseService
	mafraService      services.InterfaceMafraService

	// 농장 센서 서비스
	sensorService     services.InterfaceSensorService
	mqttSensorService services.InterfaceMQTTSensorService

	// 지역 데이터 서비스
	excelService      services.InterfaceExcelService
	localFoodService  services.InterfaceLocalFoodService
	facilityService   services.InterfaceFacilityService
	welfareService    services.InterfaceWelfareService
	jobPostingService services.InterfaceJobPostingService

	mu sync.RWMutex
}

// NewServiceContainer 새 서비스 컨테이너 생성
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("데이터베이스 연결이 비어 있습니다")
	}
	if cfg == nil {
		panic("설정이 비어 있습니다")
	}

	// Redis 연결 테스트
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			config.Warning("Redis 연결 테스트 실패: %v, 캐시 없이 동작합니다", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 모든 서비스 초기화
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 캐시 서비스
	c.redisService = services.NewRedisService(c.config)

	// 업스트림 조회 서비스
	c.weatherService = services.NewWeatherService(c.config)
	c.airQualityService = services.NewAirQualityService(c.config)
	c.sunriseService = services.NewSunriseService(c.config)
	c.mafraService = services.NewMafraService(c.config)

	// 센서 서비스
	c.sensorService = services.NewSensorService(c.db, c.config)
	c.mqttSensorService = services.NewMQTTSensorService(c.db, c.config, c.sensorService)

	// MQTT 브로커 접속 실패는 치명적이지 않다
	if err := c.mqttSensorService.Connect(); err != nil {
		config.Warning("MQTT 센서 수집 연결 실패: %v", err)
	}

	// 지역 데이터 서비스
	c.excelService = services.NewExcelService(c.config)
	c.localFoodService = services.NewLocalFoodService(c.db, c.config)
	c.facilityService = services.NewFacilityService(c.db, c.config)
	c.welfareService = services.NewWelfareService(c.db, c.config)
	c.jobPostingService = services.NewJobPostingService(c.db, c.config)
}

// GetDB 데이터베이스 연결 반환
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 설정 반환
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetRedisService Redis 캐시 서비스 반환
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetWeatherService 날씨 서비스 반환
func (c *ServiceContainer) GetWeatherService() services.InterfaceWeatherService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weatherService
}

// GetAirQualityService 대기질 서비스 반환
func (c *ServiceContainer) GetAirQualityService() services.InterfaceAirQualityService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.airQualityService
}

// GetSunriseService 일출/일몰 서비스 반환
func (c *ServiceContainer) GetSunriseService() services.InterfaceSunriseService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sunriseService
}

// GetMafraService 농림축산식품부 뉴스 서비스 반환
func (c *ServiceContainer) GetMafraService() services.InterfaceMafraService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mafraService
}

// GetSensorService 센서 서비스 반환
func (c *ServiceContainer) GetSensorService() services.InterfaceSensorService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sensorService
}

// GetMQTTSensorService MQTT 센서 수집 서비스 반환
func (c *ServiceContainer) GetMQTTSensorService() services.InterfaceMQTTSensorService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mqttSensorService
}

// GetExcelService 엑셀 데이터 서비스 반환
func (c *ServiceContainer) GetExcelService() services.InterfaceExcelService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.excelService
}

// GetLocalFoodService 로컬푸드 서비스 반환
func (c *ServiceContainer) GetLocalFoodService() services.InterfaceLocalFoodService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.localFoodService
}

// GetFacilityService 시설 등록부 서비스 반환
func (c *ServiceContainer) GetFacilityService() services.InterfaceFacilityService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.facilityService
}

// GetWelfareService 복지시설 서비스 반환
func (c *ServiceContainer) GetWelfareService() services.InterfaceWelfareService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.welfareService
}

// GetJobPostingService 일손모집 공고 서비스 반환
func (c *ServiceContainer) GetJobPostingService() services.InterfaceJobPostingService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jobPostingService
}
