package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/controllers"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

// SetupRouter 라우터를 초기화해 반환
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, *container.ServiceContainer) {
	r := gin.Default()

	// CORS 미들웨어
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// UTF-8 인코딩을 보장하는 Content-Type 설정
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 서비스 컨테이너 생성
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 라우트 등록
	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes 모든 API 라우트 구성
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 라우트 루트 경로
	api := r.Group("/api")

	// 헬스체크
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Ping)

	// 날씨 라우트
	api.GET("/weather", controllers.HandleWeatherFunc(container, "getWeather"))
	api.GET("/weather/forecast", controllers.HandleWeatherFunc(container, "getForecast"))

	// 대기질 라우트
	api.GET("/air-quality", controllers.HandleAirQualityFunc(container, "getAirQuality"))
	api.GET("/air-quality/stations", controllers.HandleAirQualityFunc(container, "getAllStations"))
	api.GET("/air-quality/stations/:name", controllers.HandleAirQualityFunc(container, "getStation"))

	// 일출/일몰 라우트
	api.GET("/sunrise", controllers.HandleSunriseFunc(container, "getSunriseSunset"))

	// 농림축산식품부 뉴스 라우트
	api.GET("/mafra/news", controllers.HandleMafraFunc(container, "getNews"))

	// 센서 라우트
	api.GET("/sensor/sensor-data", controllers.HandleSensorFunc(container, "getSensorData"))
	api.GET("/sensor/sensor-data/:type", controllers.HandleSensorFunc(container, "getSensorDataByType"))

	// 엑셀 데이터셋 라우트
	api.GET("/excel", controllers.HandleExcelFunc(container, "getAllData"))
	api.GET("/excel/columns/:name", controllers.HandleExcelFunc(container, "getColumn"))

	// 로컬푸드 직매장 라우트
	api.GET("/local-food/stores", controllers.HandleLocalFoodFunc(container, "getAllStores"))
	api.GET("/local-food/stores/search", controllers.HandleLocalFoodFunc(container, "searchStores"))
	api.GET("/local-food/stores/:id", controllers.HandleLocalFoodFunc(container, "getStore"))

	// 노인복지시설 등록부 라우트
	api.GET("/facilities", controllers.HandleFacilityFunc(container, "getAllFacilities"))
	api.GET("/facilities/type/:type", controllers.HandleFacilityFunc(container, "getFacilitiesByType"))
	api.GET("/facilities/nearby", controllers.HandleFacilityFunc(container, "searchByRadius"))
	api.POST("/facilities/import", controllers.HandleFacilityFunc(container, "importFromCSV"))

	// 복지시설 라우트
	api.GET("/welfare", controllers.HandleWelfareFunc(container, "getAllFacilities"))
	api.GET("/welfare/type/:type", controllers.HandleWelfareFunc(container, "getFacilitiesByType"))
	api.GET("/welfare/nearby", controllers.HandleWelfareFunc(container, "getNearbyFacilities"))

	// 일손모집 공고 라우트
	api.GET("/jobs", controllers.HandleJobPostingFunc(container, "getAllJobPostings"))
	api.GET("/jobs/:id", controllers.HandleJobPostingFunc(container, "getJobPosting"))
	api.POST("/jobs", controllers.HandleJobPostingFunc(container, "createJobPosting"))
	api.PUT("/jobs/:id", controllers.HandleJobPostingFunc(container, "updateJobPosting"))
	api.DELETE("/jobs/:id", controllers.HandleJobPostingFunc(container, "deleteJobPosting"))
}
