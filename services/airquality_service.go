package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

const airKoreaURL = "http://apis.data.go.kr/B552584/ArpltnInforInqireSvc/getCtprvnRltmMesureDnsty"

// pollutantCodes 측정소별로 추출하는 오염물질 코드
var pollutantCodes = []string{"pm10", "pm25", "o3", "co", "no2", "so2", "khai"}

// InterfaceAirQualityService 대기질 서비스 인터페이스
type InterfaceAirQualityService interface {
	GetLocalAirQuality() (*StationMeasurement, error)
	GetStation(name string) (*StationMeasurement, error)
	GetAllStations() ([]StationMeasurement, error)
}

// AirQualityService 에어코리아 실시간 측정 정보 조회를 처리
type AirQualityService struct {
	Config  *config.Config
	Client  *resty.Client
	BaseURL string
}

// NewAirQualityService 새 대기질 서비스 생성
func NewAirQualityService(cfg *config.Config) InterfaceAirQualityService {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Accept", "application/xml")
	client.SetDisableWarn(true)

	return &AirQualityService{
		Config:  cfg,
		Client:  client,
		BaseURL: airKoreaURL,
	}
}

// PollutantReading 오염물질 하나의 측정값
type PollutantReading struct {
	Value   string `json:"value"`
	Value24 string `json:"value24,omitempty"`
	Grade   string `json:"grade"`
	Flag    string `json:"flag,omitempty"`
}

// StationMeasurement 측정소 하나의 정규화된 측정 기록
type StationMeasurement struct {
	StationName string                      `json:"stationName"`
	SidoName    string                      `json:"sidoName"`
	MeasuredAt  string                      `json:"dataTime"`
	Pollutants  map[string]PollutantReading `json:"pollutants"`
}

// GetLocalAirQuality 기본 측정소(화순읍)의 대기질 정보를 조회
func (s *AirQualityService) GetLocalAirQuality() (*StationMeasurement, error) {
	return s.GetStation(s.Config.DefaultStation)
}

// GetStation 이름이 일치하는 측정소의 측정값을 반환한다. 측정소가
// 목록에 없으면 오류 대신 요청한 이름이 채워진 기본값 레코드를
// 반환한다.
func (s *AirQualityService) GetStation(name string) (*StationMeasurement, error) {
	stations, err := s.fetchStations()
	if err != nil {
		return nil, err
	}

	if found := FilterByStationName(stations, name); found != nil {
		return found, nil
	}

	config.Warning("%s 측정소 데이터가 없어 기본값을 반환합니다", name)
	fallback := fallbackMeasurement(name, s.Config.DefaultSido)
	return &fallback, nil
}

// GetAllStations 시도 전체 측정소 목록을 이름 순으로 반환
func (s *AirQualityService) GetAllStations() ([]StationMeasurement, error) {
	stations, err := s.fetchStations()
	if err != nil {
		return nil, err
	}
	SortByStationName(stations)
	return stations, nil
}

// fetchStations 시도별 실시간 측정 XML을 조회해 정규화한다.
// 헤더 결과 코드와 무관하게 item이 없으면 빈 목록으로 다루며,
// 누락 필드는 모두 기본값으로 채워진다.
func (s *AirQualityService) fetchStations() ([]StationMeasurement, error) {
	resp, err := s.Client.R().
		SetQueryParams(map[string]string{
			"serviceKey": s.Config.AirKoreaAPIKey,
			"returnType": "xml",
			"numOfRows":  "100",
			"pageNo":     "1",
			"sidoName":   s.Config.DefaultSido,
			"ver":        "1.0",
		}).
		Get(s.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("대기질 API 요청 실패: %w", err)
	}

	root, err := ParseXMLTree(resp.Body())
	if err != nil {
		return nil, err
	}

	items := Items(root)
	stations := make([]StationMeasurement, 0, len(items))
	for _, item := range items {
		stations = append(stations, normalizeStation(item))
	}
	return stations, nil
}

// normalizeStation 측정소 item 하나를 정규화한다. 수치 필드는 "0",
// 플래그는 ""가 기본값이며 센티넬 "-"는 항상 "0"으로 치환된다.
// PM10/PM2.5 등급이 누락되면 측정값의 농도 구간으로 분류한다.
func normalizeStation(item *XMLNode) StationMeasurement {
	pollutants := make(map[string]PollutantReading, len(pollutantCodes))
	for _, code := range pollutantCodes {
		reading := PollutantReading{
			Value: numericValue(item, code+"Value"),
			Grade: item.GetScalar(code+"Grade", ""),
			Flag:  item.GetScalar(code+"Flag", ""),
		}
		// PM10/PM2.5는 24시간 이동평균값도 제공된다
		if code == "pm10" || code == "pm25" {
			reading.Value24 = numericValue(item, code+"Value24")
		}
		if reading.Grade == "" {
			reading.Grade = deriveGrade(code, reading.Value)
		}
		pollutants[code] = reading
	}

	return StationMeasurement{
		StationName: item.GetScalar("stationName", ""),
		SidoName:    item.GetScalar("sidoName", ""),
		MeasuredAt:  item.GetScalar("dataTime", ""),
		Pollutants:  pollutants,
	}
}

// deriveGrade 등급이 누락된 미세먼지 측정값을 농도 구간으로 분류.
// 분류 기준이 없는 물질이나 값이 없는 경우는 "1"(좋음)로 둔다.
func deriveGrade(code, value string) string {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil || num <= 0 {
		return "1"
	}
	switch code {
	case "pm10":
		return utils.GetPM10Grade(num)
	case "pm25":
		return utils.GetPM25Grade(num)
	default:
		return "1"
	}
}

// numericValue 수치 필드 추출. 누락은 "0", 센티넬 "-"도 "0"이 된다.
func numericValue(item *XMLNode, key string) string {
	value := item.GetScalar(key, "0")
	if value == "-" {
		return "0"
	}
	return value
}

// FilterByStationName 이름이 정확히 일치하는 측정소를 찾는다.
// 없으면 nil을 반환한다.
func FilterByStationName(stations []StationMeasurement, name string) *StationMeasurement {
	for i := range stations {
		if stations[i].StationName == name {
			return &stations[i]
		}
	}
	return nil
}

// SortByStationName 측정소 목록을 한국어 사전순으로 정렬
func SortByStationName(stations []StationMeasurement) {
	collator := collate.New(language.Korean)
	sort.SliceStable(stations, func(i, j int) bool {
		return collator.CompareString(stations[i].StationName, stations[j].StationName) < 0
	})
}

// fallbackMeasurement 측정소 누락 시 반환하는 전부 0값 레코드
func fallbackMeasurement(name, sido string) StationMeasurement {
	pollutants := make(map[string]PollutantReading, len(pollutantCodes))
	for _, code := range pollutantCodes {
		reading := PollutantReading{Value: "0", Grade: "1"}
		if code == "pm10" || code == "pm25" {
			reading.Value24 = "0"
		}
		pollutants[code] = reading
	}

	return StationMeasurement{
		StationName: name,
		SidoName:    sido,
		MeasuredAt:  time.Now().Format("2006-01-02 15:04:05"),
		Pollutants:  pollutants,
	}
}
