package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header>
    <resultCode>00</resultCode>
    <resultMsg>NORMAL_SERVICE</resultMsg>
  </header>
  <body>
    <items>
      <item>
        <stationName>화순읍</stationName>
        <pm10Value> 45 </pm10Value>
        <pm25Value></pm25Value>
      </item>
      <item>
        <stationName>광주</stationName>
      </item>
    </items>
  </body>
</response>`

func TestParseXMLTree(t *testing.T) {
	root, err := ParseXMLTree([]byte(sampleResponse))
	require.NoError(t, err)
	require.NotNil(t, root.First("response"))

	items := Items(root)
	require.Len(t, items, 2)
	assert.Equal(t, "화순읍", items[0].GetScalar("stationName", ""))
	assert.Equal(t, "광주", items[1].GetScalar("stationName", ""))
}

func TestParseXMLTreeSingleItem(t *testing.T) {
	// 단건 응답도 다건과 동일한 슬라이스 형태가 된다
	xml := `<response><body><items><item><sunrise>0612</sunrise></item></items></body></response>`
	root, err := ParseXMLTree([]byte(xml))
	require.NoError(t, err)

	items := Items(root)
	require.Len(t, items, 1)
	assert.Equal(t, "0612", items[0].GetScalar("sunrise", ""))
}

func TestParseXMLTreeInvalid(t *testing.T) {
	var formatErr *UpstreamFormatError

	_, err := ParseXMLTree([]byte("<response><unclosed>"))
	assert.ErrorAs(t, err, &formatErr)

	_, err = ParseXMLTree([]byte(""))
	assert.ErrorAs(t, err, &formatErr)
}

func TestGetScalar(t *testing.T) {
	root, err := ParseXMLTree([]byte(sampleResponse))
	require.NoError(t, err)

	item := Items(root)[0]
	// 값 주변 공백은 제거된다
	assert.Equal(t, "45", item.GetScalar("pm10Value", "0"))
	// 빈 요소와 누락 요소는 기본값이 된다
	assert.Equal(t, "0", item.GetScalar("pm25Value", "0"))
	assert.Equal(t, "0", item.GetScalar("o3Value", "0"))
}

func TestFirstNilSafety(t *testing.T) {
	root, err := ParseXMLTree([]byte(`<other><thing/></other>`))
	require.NoError(t, err)

	// 경로 어디가 비어도 체이닝 접근이 panic 없이 기본값으로 끝난다
	assert.Nil(t, root.First("response").First("body").First("items"))
	assert.Empty(t, Items(root))
	assert.Equal(t, "없음", root.First("response").GetScalar("resultCode", "없음"))
}

func TestHeader(t *testing.T) {
	root, err := ParseXMLTree([]byte(sampleResponse))
	require.NoError(t, err)

	header := Header(root)
	assert.Equal(t, "00", header.Code)
	assert.Equal(t, "NORMAL_SERVICE", header.Message)
	assert.True(t, header.IsSuccess())

	rejected := ResponseHeader{Code: "30", Message: "SERVICE_KEY_IS_NOT_REGISTERED_ERROR"}
	assert.False(t, rejected.IsSuccess())
}
