package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/utils"
)

func newTestSunriseService() *SunriseService {
	return &SunriseService{
		Config: &config.Config{
			DefaultLatitude:  "35.0519",
			DefaultLongitude: "126.9918",
			UTCOffsetSeconds: utils.KSTOffsetSeconds,
		},
		Client: resty.New(),
	}
}

// newRiseSetTestServer 지정한 XML 본문을 돌려주는 테스트 서버
func newRiseSetTestServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
}

func TestBuildRequest(t *testing.T) {
	s := newTestSunriseService()

	req, err := s.buildRequest("20240409", "126.9918", "35.0519")
	require.NoError(t, err)
	assert.Equal(t, "20240409", req.Locdate)
	assert.Equal(t, utils.Coordinate{Degrees: 127, Minutes: 0}, req.Longitude)
	assert.Equal(t, utils.Coordinate{Degrees: 35, Minutes: 3}, req.Latitude)
	assert.True(t, req.DecimalInput)
}

func TestBuildRequestDefaults(t *testing.T) {
	s := newTestSunriseService()

	req, err := s.buildRequest("", "", "")
	require.NoError(t, err)
	// 날짜 생략 시 KST 오늘이 YYYYMMDD로 채워진다
	assert.Regexp(t, `^\d{8}$`, req.Locdate)
	// 좌표 생략 시 기본 지점이 사용된다
	assert.Equal(t, utils.Coordinate{Degrees: 127, Minutes: 0}, req.Longitude)
	assert.Equal(t, utils.Coordinate{Degrees: 35, Minutes: 3}, req.Latitude)
}

func TestBuildRequestInvalidDate(t *testing.T) {
	s := newTestSunriseService()

	for _, date := range []string{"2024-04-09", "240409", "20240409일", "abcdefgh"} {
		t.Run(date, func(t *testing.T) {
			_, err := s.buildRequest(date, "", "")
			assert.ErrorIs(t, err, ErrInvalidDateParam)
		})
	}
}

func TestBuildRequestInvalidCoordinate(t *testing.T) {
	s := newTestSunriseService()

	_, err := s.buildRequest("20240409", "경도", "35.0519")
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)

	_, err = s.buildRequest("20240409", "126.9918", "위도")
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
}

const riseSetItemXML = `<response>
<header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header>
<body><items><item>
  <locdate>20240409</locdate>
  <location>화순</location>
  <longitudeNum>126.9918</longitudeNum>
  <latitudeNum>35.0519</latitudeNum>
  <sunrise>0612</sunrise>
  <sunset>1905</sunset>
  <moonrise>0534</moonrise>
  <moonset>1943</moonset>
  <civilm>0546</civilm>
  <civile>1931</civile>
</item></items></body>
</response>`

func TestNormalizeSunEvent(t *testing.T) {
	root, err := ParseXMLTree([]byte(riseSetItemXML))
	require.NoError(t, err)

	req := riseSetRequest{
		Locdate:   "20240409",
		Longitude: utils.Coordinate{Degrees: 127, Minutes: 0},
		Latitude:  utils.Coordinate{Degrees: 35, Minutes: 3},
	}
	record := normalizeSunEvent(Items(root)[0], req)

	assert.Equal(t, "0612", record.Sunrise)
	assert.Equal(t, "1905", record.Sunset)
	assert.Equal(t, "화순", record.Location)
	assert.Equal(t, "20240409", record.Date)
	assert.Equal(t, "126.9918", record.Longitude)
	assert.Equal(t, "35.0519", record.Latitude)
	assert.Equal(t, "127도 0분", record.Coordinates.Longitude)
	assert.Equal(t, "35도 3분", record.Coordinates.Latitude)
	assert.Equal(t, "0546", record.CivilTwilight.Morning)
	assert.Equal(t, "1931", record.CivilTwilight.Evening)

	// 응답에 없는 선택 필드는 빈 문자열이다
	assert.Empty(t, record.Suntransit)
	assert.Empty(t, record.NauticalTwilight.Morning)
	assert.Empty(t, record.AstronomicalTwilight.Evening)
}

func TestGetRiseSet(t *testing.T) {
	server := newRiseSetTestServer(riseSetItemXML)
	defer server.Close()

	s := newTestSunriseService()
	s.BaseURL = server.URL

	record, err := s.GetRiseSet("20240409", "126.9918", "35.0519")
	require.NoError(t, err)
	assert.Equal(t, "0612", record.Sunrise)
	assert.Equal(t, "1905", record.Sunset)
	assert.Equal(t, "127도 0분", record.Coordinates.Longitude)
}

func TestGetRiseSetHeaderRejection(t *testing.T) {
	// 정상 코드("00")가 아닌 헤더는 기본값 합성 없이 그대로 전파된다
	server := newRiseSetTestServer(`<response><header><resultCode>30</resultCode><resultMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</resultMsg></header><body/></response>`)
	defer server.Close()

	s := newTestSunriseService()
	s.BaseURL = server.URL

	_, err := s.GetRiseSet("20240409", "", "")
	var rejected *UpstreamRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "30", rejected.Code)
	assert.Contains(t, rejected.Error(), "SERVICE_KEY_IS_NOT_REGISTERED_ERROR")
}

func TestGetRiseSetEmptyItems(t *testing.T) {
	// 헤더는 정상이지만 item이 없는 응답도 실패로 전파된다
	server := newRiseSetTestServer(`<response><header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header><body><items/></body></response>`)
	defer server.Close()

	s := newTestSunriseService()
	s.BaseURL = server.URL

	_, err := s.GetRiseSet("20240409", "", "")
	var format *UpstreamFormatError
	require.ErrorAs(t, err, &format)
}
