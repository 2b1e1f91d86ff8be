package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

// newWeatherTestServer 실황/예보 엔드포인트를 흉내내는 테스트 서버
func newWeatherTestServer(t *testing.T, currentJSON, forecastJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "kr", r.URL.Query().Get("lang"))

		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, currentJSON)
		case "/forecast":
			fmt.Fprint(w, forecastJSON)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestWeatherService(baseURL string) *WeatherService {
	return &WeatherService{
		Config: &config.Config{
			WeatherAPIKey:    "test-key",
			DefaultLatitude:  "35.0519",
			DefaultLongitude: "126.9918",
			UTCOffsetSeconds: utils.KSTOffsetSeconds,
		},
		Client:  &http.Client{Timeout: time.Second},
		BaseURL: baseURL,
	}
}

func TestGetCurrentWeather(t *testing.T) {
	// 실황 03:00 UTC = 12:00 KST, 예보에 같은 날 5°C 표본 존재
	currentDt := time.Date(2024, 4, 9, 3, 0, 0, 0, time.UTC).Unix()
	forecastDt := time.Date(2024, 4, 9, 9, 0, 0, 0, time.UTC).Unix()

	currentJSON := fmt.Sprintf(`{
		"dt": %d,
		"main": {"temp": 16.73, "humidity": 55},
		"weather": [{"description": "맑음", "icon": "01d"}],
		"wind": {"speed": 3.42, "deg": 270},
		"rain": {"1h": 0.5}
	}`, currentDt)
	forecastJSON := fmt.Sprintf(`{"list": [
		{"dt": %d, "main": {"temp": 5.0, "humidity": 70}, "weather": [], "wind": {"speed": 1.0, "deg": 90}}
	]}`, forecastDt)

	server := newWeatherTestServer(t, currentJSON, forecastJSON)
	defer server.Close()

	s := newTestWeatherService(server.URL)
	current, err := s.GetCurrentWeather()
	require.NoError(t, err)

	assert.Equal(t, 16.7, current.Temperature)
	// 예보 최저값과 실황 기온이 합쳐져 오늘 범위가 된다
	assert.Equal(t, 5.0, current.TempMin)
	assert.Equal(t, 16.7, current.TempMax)
	assert.Equal(t, 55, current.Humidity)
	assert.Equal(t, 0.5, current.Rainfall)
	assert.Equal(t, 3.4, current.WindSpeed)
	assert.Equal(t, 270, current.WindDirection)
	assert.Equal(t, "맑음", current.Description)
	assert.Equal(t, "01d", current.Icon)
	assert.Equal(t, "2024-04-09 12:00", current.KSTDateTime)
}

func TestGetCurrentWeatherWithoutAPIKey(t *testing.T) {
	s := newTestWeatherService("http://unused")
	s.Config.WeatherAPIKey = ""

	_, err := s.GetCurrentWeather()
	assert.Error(t, err)
}

func TestGetForecast(t *testing.T) {
	noonDt := time.Date(2024, 4, 10, 3, 0, 0, 0, time.UTC).Unix()      // 12:00 KST
	morningDt := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC).Unix()   // 09:00 KST
	noNoonDayDt := time.Date(2024, 4, 11, 6, 0, 0, 0, time.UTC).Unix() // 15:00 KST

	forecastJSON := fmt.Sprintf(`{"list": [
		{"dt": %d, "main": {"temp": 7.0, "humidity": 80}, "weather": [], "wind": {"speed": 1.5, "deg": 45}},
		{"dt": %d, "main": {"temp": 18.52, "humidity": 50},
		 "weather": [{"description": "구름조금", "icon": "02d"}],
		 "wind": {"speed": 2.0, "deg": 180}, "rain": {"3h": 1.2}},
		{"dt": %d, "main": {"temp": 20.0, "humidity": 40}, "weather": [], "wind": {"speed": 3.0, "deg": 200}}
	]}`, morningDt, noonDt, noNoonDayDt)

	server := newWeatherTestServer(t, "{}", forecastJSON)
	defer server.Close()

	s := newTestWeatherService(server.URL)
	days, err := s.GetForecast(false)
	require.NoError(t, err)

	// 정오 표본이 있는 날만 응답에 남는다
	require.Len(t, days, 1)
	day := days[0]
	assert.Equal(t, noonDt, day.Dt)
	assert.Equal(t, "2024-04-10 12:00", day.KSTDateTime)
	assert.Equal(t, 18.5, day.Main.Temp)
	assert.Equal(t, 7.0, day.Main.TempMin)
	assert.Equal(t, 18.5, day.Main.TempMax)
	assert.Equal(t, 50, day.Main.Humidity)
	assert.Equal(t, "구름조금", day.Weather[0].Description)
	assert.Equal(t, 2.0, day.Wind.Speed)
	assert.Equal(t, 1.2, day.Rain)
}

func TestGetForecastUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	s := newTestWeatherService(server.URL)
	_, err := s.GetForecast(false)
	assert.Error(t, err)
}
