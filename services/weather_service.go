package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// InterfaceWeatherService 날씨 서비스 인터페이스
type InterfaceWeatherService interface {
	GetCurrentWeather() (*CurrentWeather, error)
	GetForecast(excludeToday bool) ([]ForecastDay, error)
}

// WeatherService OpenWeatherMap 실황/예보 조회를 처리
type WeatherService struct {
	Config  *config.Config
	Client  *http.Client
	BaseURL string
}

// NewWeatherService 새 날씨 서비스 생성
func NewWeatherService(cfg *config.Config) InterfaceWeatherService {
	return &WeatherService{
		Config:  cfg,
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: openWeatherBaseURL,
	}
}

// CurrentWeather 오늘 실황 요약 응답
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	TempMin       float64 `json:"temp_min"`
	TempMax       float64 `json:"temp_max"`
	Humidity      int     `json:"humidity"`
	Rainfall      float64 `json:"rainfall"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	Timestamp     string  `json:"timestamp"`
	KSTDateTime   string  `json:"kstDateTime"`
}

// ForecastDay 일별 예보 응답 항목
type ForecastDay struct {
	Dt          int64           `json:"dt"`
	KSTDateTime string          `json:"kstDateTime"`
	Main        ForecastDayMain `json:"main"`
	Weather     []WeatherDesc   `json:"weather"`
	Wind        ForecastDayWind `json:"wind"`
	Rain        float64         `json:"rain"`
}

type ForecastDayMain struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity int     `json:"humidity"`
}

type WeatherDesc struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ForecastDayWind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// owmCurrentResponse OpenWeatherMap 실황 응답
type owmCurrentResponse struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Rain *struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

// owmForecastResponse OpenWeatherMap 5일/3시간 예보 응답
type owmForecastResponse struct {
	List []owmForecastItem `json:"list"`
}

type owmForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Rain *struct {
		ThreeHour float64 `json:"3h"`
	} `json:"rain"`
}

// toSample 예보 항목을 내부 표본으로 변환. 선택 필드는 모두 0값으로
// 대체된다.
func (item owmForecastItem) toSample() ForecastSample {
	sample := ForecastSample{
		EpochSeconds: item.Dt,
		TemperatureC: item.Main.Temp,
		HumidityPct:  item.Main.Humidity,
		WindSpeedMs:  item.Wind.Speed,
		WindDegrees:  item.Wind.Deg,
	}
	if item.Rain != nil {
		sample.RainMm3h = item.Rain.ThreeHour
	}
	if len(item.Weather) > 0 {
		sample.Description = item.Weather[0].Description
		sample.Icon = item.Weather[0].Icon
	}
	return sample
}

// GetCurrentWeather 실황과 예보를 동시에 조회해 오늘 요약을 만든다.
// 오늘의 최저/최고 기온은 같은 날짜의 예보 구간으로 보정된다.
func (s *WeatherService) GetCurrentWeather() (*CurrentWeather, error) {
	if s.Config.WeatherAPIKey == "" {
		return nil, errors.New("Weather API 키가 설정되지 않았습니다")
	}

	var (
		current  owmCurrentResponse
		forecast owmForecastResponse
	)

	// 실황과 예보는 순서 의존성이 없으므로 동시에 요청한다
	var g errgroup.Group
	g.Go(func() error {
		return s.fetchJSON("/weather", &current)
	})
	g.Go(func() error {
		return s.fetchJSON("/forecast", &forecast)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	offset := s.Config.UTCOffsetSeconds
	todayKey := utils.ToLocalDateKey(current.Dt, offset)

	samples := make([]ForecastSample, 0, len(forecast.List))
	for _, item := range forecast.List {
		samples = append(samples, item.toSample())
	}

	minTemp, maxTemp := ComposeToday(
		ForecastSample{EpochSeconds: current.Dt, TemperatureC: current.Main.Temp},
		DayRange(samples, offset, todayKey),
	)

	result := &CurrentWeather{
		Temperature:   round1(current.Main.Temp),
		TempMin:       minTemp,
		TempMax:       maxTemp,
		Humidity:      current.Main.Humidity,
		WindSpeed:     round1(current.Wind.Speed),
		WindDirection: current.Wind.Deg,
		Timestamp:     time.Unix(current.Dt, 0).UTC().Format(time.RFC3339),
		KSTDateTime:   utils.FormatLocalDateTime(current.Dt, offset),
	}
	// 최근 1시간 강수량이 없으면 0으로 둔다
	if current.Rain != nil {
		result.Rainfall = current.Rain.OneHour
	}
	if len(current.Weather) > 0 {
		result.Description = current.Weather[0].Description
		result.Icon = current.Weather[0].Icon
	}
	return result, nil
}

// GetForecast 5일/3시간 예보를 일별로 집계해 반환한다.
// excludeToday가 true면 오늘 이후의 예보만 내보낸다.
func (s *WeatherService) GetForecast(excludeToday bool) ([]ForecastDay, error) {
	if s.Config.WeatherAPIKey == "" {
		return nil, errors.New("Weather API 키가 설정되지 않았습니다")
	}

	var forecast owmForecastResponse
	if err := s.fetchJSON("/forecast", &forecast); err != nil {
		return nil, err
	}

	offset := s.Config.UTCOffsetSeconds
	samples := make([]ForecastSample, 0, len(forecast.List))
	for _, item := range forecast.List {
		samples = append(samples, item.toSample())
	}

	excludeThrough := ""
	if excludeToday {
		excludeThrough = utils.TodayDateKey(offset)
	}

	buckets := AggregateDaily(samples, offset, excludeThrough)

	days := make([]ForecastDay, 0, len(buckets))
	for _, bucket := range buckets {
		noon := bucket.NoonSample
		days = append(days, ForecastDay{
			Dt:          noon.EpochSeconds,
			KSTDateTime: utils.FormatLocalDateTime(noon.EpochSeconds, offset),
			Main: ForecastDayMain{
				Temp:     noon.TemperatureC,
				TempMin:  bucket.MinTempC,
				TempMax:  bucket.MaxTempC,
				Humidity: noon.HumidityPct,
			},
			Weather: []WeatherDesc{{Description: noon.Description, Icon: noon.Icon}},
			Wind:    ForecastDayWind{Speed: noon.WindSpeedMs, Deg: noon.WindDegrees},
			Rain:    noon.RainMm3h,
		})
	}
	return days, nil
}

// fetchJSON OpenWeatherMap 엔드포인트를 호출해 JSON 응답을 디코딩
func (s *WeatherService) fetchJSON(path string, dest interface{}) error {
	query := url.Values{}
	query.Set("lat", s.Config.DefaultLatitude)
	query.Set("lon", s.Config.DefaultLongitude)
	query.Set("appid", s.Config.WeatherAPIKey)
	query.Set("units", "metric")
	query.Set("lang", "kr")

	resp, err := s.Client.Get(s.BaseURL + path + "?" + query.Encode())
	if err != nil {
		return fmt.Errorf("날씨 API 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("날씨 API 응답 코드 %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("날씨 API 응답 파싱 실패: %w", err)
	}
	return nil
}
