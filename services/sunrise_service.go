package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

const riseSetURL = "http://apis.data.go.kr/B090041/openapi/service/RiseSetInfoService/getLCRiseSetInfo"

var dateParamPattern = regexp.MustCompile(`^\d{8}$`)

// ErrInvalidDateParam 날짜 파라미터가 YYYYMMDD 형식이 아닌 경우
var ErrInvalidDateParam = fmt.Errorf("날짜는 YYYYMMDD 형식이어야 합니다 (예: 20240409)")

// InterfaceSunriseService 일출/일몰 서비스 인터페이스
type InterfaceSunriseService interface {
	GetRiseSet(date, longitude, latitude string) (*SunEventRecord, error)
}

// SunriseService 천문연구원 출몰시각 정보 조회를 처리
type SunriseService struct {
	Config  *config.Config
	Client  *resty.Client
	BaseURL string
}

// NewSunriseService 새 일출/일몰 서비스 생성
func NewSunriseService(cfg *config.Config) InterfaceSunriseService {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Accept", "application/xml")
	client.SetDisableWarn(true)

	return &SunriseService{
		Config:  cfg,
		Client:  client,
		BaseURL: riseSetURL,
	}
}

// TwilightPair 아침/저녁 박명 시각
type TwilightPair struct {
	Morning string `json:"morning"`
	Evening string `json:"evening"`
}

// CoordinateLabel 도/분 표기의 요청 좌표
type CoordinateLabel struct {
	Longitude string `json:"longitude"`
	Latitude  string `json:"latitude"`
}

// SunEventRecord 하루치 해/달 출몰 및 박명 기록
type SunEventRecord struct {
	Sunrise              string          `json:"sunrise"`
	Sunset               string          `json:"sunset"`
	Location             string          `json:"location"`
	Date                 string          `json:"date"`
	Longitude            string          `json:"longitude"`
	Latitude             string          `json:"latitude"`
	Coordinates          CoordinateLabel `json:"coordinates"`
	Moonrise             string          `json:"moonrise"`
	Moonset              string          `json:"moonset"`
	Moontransit          string          `json:"moontransit"`
	Suntransit           string          `json:"suntransit"`
	CivilTwilight        TwilightPair    `json:"civilTwilight"`
	NauticalTwilight     TwilightPair    `json:"nauticalTwilight"`
	AstronomicalTwilight TwilightPair    `json:"astronomicalTwilight"`
}

// riseSetRequest 업스트림 요청 파라미터로 변환된 입력
type riseSetRequest struct {
	Locdate      string
	Longitude    utils.Coordinate
	Latitude     utils.Coordinate
	DecimalInput bool
}

// buildRequest 쿼리 파라미터를 검증하고 업스트림 요청으로 변환한다.
// 날짜가 없으면 KST 기준 오늘, 좌표가 없으면 기본 지점을 사용한다.
func (s *SunriseService) buildRequest(date, longitude, latitude string) (riseSetRequest, error) {
	locdate := date
	if locdate != "" {
		if !dateParamPattern.MatchString(locdate) {
			return riseSetRequest{}, ErrInvalidDateParam
		}
	} else {
		locdate = utils.ToLocalDateKey(time.Now().Unix(), s.Config.UTCOffsetSeconds)
		locdate = locdate[:4] + locdate[5:7] + locdate[8:]
	}

	lon := longitude
	if lon == "" {
		lon = s.Config.DefaultLongitude
	}
	lat := latitude
	if lat == "" {
		lat = s.Config.DefaultLatitude
	}

	lonCoord, err := utils.ToDegreesMinutes(lon)
	if err != nil {
		return riseSetRequest{}, err
	}
	latCoord, err := utils.ToDegreesMinutes(lat)
	if err != nil {
		return riseSetRequest{}, err
	}

	return riseSetRequest{
		Locdate:      locdate,
		Longitude:    lonCoord,
		Latitude:     latCoord,
		DecimalInput: utils.IsDecimalNotation(lon) || utils.IsDecimalNotation(lat),
	}, nil
}

// GetRiseSet 지정 날짜/좌표의 일출·일몰 정보를 조회한다.
// 측정소 누락 시 기본값을 돌려주는 대기질과 달리, 출몰 시각은
// 합성할 수 있는 값이 아니므로 업스트림 실패를 그대로 전파한다.
func (s *SunriseService) GetRiseSet(date, longitude, latitude string) (*SunEventRecord, error) {
	req, err := s.buildRequest(date, longitude, latitude)
	if err != nil {
		return nil, err
	}

	// 실수 좌표 입력 여부를 업스트림 플래그로 전달
	dnYn := "N"
	if req.DecimalInput {
		dnYn = "Y"
	}

	resp, err := s.Client.R().
		SetQueryParams(map[string]string{
			"serviceKey":   s.Config.SunriseAPIKey,
			"locdate":      req.Locdate,
			"longitude":    fmt.Sprintf("%d", req.Longitude.Degrees),
			"latitude":     fmt.Sprintf("%d", req.Latitude.Degrees),
			"dnYn":         dnYn,
			"longitudeMin": fmt.Sprintf("%d", req.Longitude.Minutes),
			"latitudeMin":  fmt.Sprintf("%d", req.Latitude.Minutes),
			"_type":        "xml",
		}).
		Get(s.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("일출/일몰 API 요청 실패: %w", err)
	}

	root, err := ParseXMLTree(resp.Body())
	if err != nil {
		return nil, err
	}

	header := Header(root)
	if !header.IsSuccess() {
		return nil, &UpstreamRejectedError{Code: header.Code, Message: header.Message}
	}

	items := Items(root)
	if len(items) == 0 {
		return nil, &UpstreamFormatError{Reason: "일출/일몰 데이터를 찾을 수 없습니다"}
	}

	record := normalizeSunEvent(items[0], req)
	return &record, nil
}

// normalizeSunEvent item 하나를 출몰 기록으로 정규화한다.
// 선택적 천문 필드는 전부 빈 문자열이 기본값이다.
func normalizeSunEvent(item *XMLNode, req riseSetRequest) SunEventRecord {
	return SunEventRecord{
		Sunrise:     item.GetScalar("sunrise", ""),
		Sunset:      item.GetScalar("sunset", ""),
		Location:    item.GetScalar("location", ""),
		Date:        item.GetScalar("locdate", ""),
		Longitude:   item.GetScalar("longitudeNum", ""),
		Latitude:    item.GetScalar("latitudeNum", ""),
		Moonrise:    item.GetScalar("moonrise", ""),
		Moonset:     item.GetScalar("moonset", ""),
		Moontransit: item.GetScalar("moontransit", ""),
		Suntransit:  item.GetScalar("suntransit", ""),
		Coordinates: CoordinateLabel{
			Longitude: req.Longitude.String(),
			Latitude:  req.Latitude.String(),
		},
		CivilTwilight: TwilightPair{
			Morning: item.GetScalar("civilm", ""),
			Evening: item.GetScalar("civile", ""),
		},
		NauticalTwilight: TwilightPair{
			Morning: item.GetScalar("nautm", ""),
			Evening: item.GetScalar("naute", ""),
		},
		AstronomicalTwilight: TwilightPair{
			Morning: item.GetScalar("astm", ""),
			Evening: item.GetScalar("aste", ""),
		},
	}
}
