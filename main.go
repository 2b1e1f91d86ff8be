package main

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
	"github.com/kyuhunjo/backun-farm-backend/routes"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

func main() {
	// 로그 설정 초기화
	if err := config.SetupLogger(); err != nil {
		log.Fatalf("로그 설정 실패: %v", err)
	}

	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		config.Warning(".env 파일을 찾을 수 없습니다, 환경 변수를 사용합니다")
	}

	cfg := config.GetConfig()

	// 데이터베이스 초기화
	db, err := initDB(cfg)
	if err != nil {
		config.Error("데이터베이스 연결 실패: %v", err)
		log.Fatalf("데이터베이스 연결 실패: %v", err)
	}

	// 라우터 설정
	r, serviceContainer := routes.SetupRouter(db, cfg)

	// 날씨 이력 수집 스케줄러 시작
	startWeatherScheduler(serviceContainer)

	// 서버 시작
	config.Info("서버 시작: 포트 %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("서버 시작 실패: %v", err)
		log.Fatalf("서버 시작 실패: %v", err)
	}
}

// initDB 데이터베이스 연결 및 마이그레이션
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// 테이블 자동 마이그레이션
	err = db.AutoMigrate(
		&models.Weather{},
		&models.SensorData{},
		&models.LocalFoodStore{},
		&models.Facility{},
		&models.WelfareFacility{},
		&models.JobPosting{},
	)
	if err != nil {
		return nil, err
	}

	config.Info("데이터베이스 연결 및 마이그레이션 완료")
	return db, nil
}

// startWeatherScheduler 매시간 날씨 실황을 수집해 이력으로 저장
func startWeatherScheduler(c *container.ServiceContainer) {
	scheduler := gocron.NewScheduler(time.UTC)

	_, err := scheduler.Every(1).Hour().Do(func() {
		current, err := c.GetWeatherService().GetCurrentWeather()
		if err != nil {
			config.Warning("날씨 이력 수집 실패: %v", err)
			return
		}

		record := models.Weather{
			Temperature:   current.Temperature,
			TempMin:       current.TempMin,
			TempMax:       current.TempMax,
			Humidity:      current.Humidity,
			Rainfall:      current.Rainfall,
			WindSpeed:     current.WindSpeed,
			WindDirection: current.WindDirection,
			Description:   current.Description,
			Icon:          current.Icon,
			ObservedAt:    time.Now(),
		}
		if err := c.GetDB().Create(&record).Error; err != nil {
			config.Error("날씨 이력 저장 실패: %v", err)
			return
		}
		config.Info("날씨 이력 저장 완료: %.1f°C", record.Temperature)
	})
	if err != nil {
		config.Warning("날씨 이력 스케줄러 등록 실패: %v", err)
		return
	}

	scheduler.StartAsync()
}
