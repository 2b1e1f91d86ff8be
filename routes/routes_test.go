package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/services/container"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	// 닫힌 포트를 지정해 MQTT 접속 시도가 즉시 실패하도록 한다
	cfg := &config.Config{MQTTBrokerURL: "tcp://127.0.0.1:1", MQTTClientID: "routes-test"}
	serviceContainer := container.NewServiceContainer(&gorm.DB{}, cfg, nil)
	registerRoutes(r, serviceContainer)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/ping",
		"GET /api/health",
		"GET /api/weather",
		"GET /api/weather/forecast",
		"GET /api/air-quality",
		"GET /api/air-quality/stations",
		"GET /api/air-quality/stations/:name",
		"GET /api/sunrise",
		"GET /api/mafra/news",
		"GET /api/sensor/sensor-data",
		"GET /api/sensor/sensor-data/:type",
		"GET /api/excel",
		"GET /api/excel/columns/:name",
		"GET /api/local-food/stores",
		"GET /api/local-food/stores/search",
		"GET /api/local-food/stores/:id",
		"GET /api/facilities",
		"GET /api/facilities/type/:type",
		"GET /api/facilities/nearby",
		"POST /api/facilities/import",
		"GET /api/welfare",
		"GET /api/welfare/type/:type",
		"GET /api/welfare/nearby",
		"GET /api/jobs",
		"GET /api/jobs/:id",
		"POST /api/jobs",
		"PUT /api/jobs/:id",
		"DELETE /api/jobs/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}
