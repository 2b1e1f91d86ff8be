package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>농림축산식품부 보도자료</title>
  <link>https://www.mafra.go.kr</link>
  <description>보도자료 목록</description>
  <language>ko</language>
  <item>
    <title>쌀 수급 안정 대책 발표</title>
    <link>https://www.mafra.go.kr/bbs/1</link>
    <pubDate>2024-04-09</pubDate>
    <author>식량정책과</author>
  </item>
  <item>
    <title>농촌 일손돕기 추진</title>
    <link>https://www.mafra.go.kr/bbs/2</link>
    <pubDate>2024-04-08</pubDate>
  </item>
</channel>
</rss>`

func TestParseNewsFeed(t *testing.T) {
	feed, err := parseNewsFeed([]byte(sampleRSS))
	require.NoError(t, err)

	assert.Equal(t, "농림축산식품부 보도자료", feed.Title)
	assert.Equal(t, "ko", feed.Language)
	require.Len(t, feed.Items, 2)

	assert.Equal(t, "쌀 수급 안정 대책 발표", feed.Items[0].Title)
	assert.Equal(t, "식량정책과", feed.Items[0].Author)
	// 작성자가 없는 항목은 빈 문자열이 된다
	assert.Equal(t, "", feed.Items[1].Author)
	assert.Equal(t, "2024-04-08", feed.Items[1].PubDate)
}

func TestParseNewsFeedNotRSS(t *testing.T) {
	var formatErr *UpstreamFormatError

	_, err := parseNewsFeed([]byte(`<response><body/></response>`))
	assert.ErrorAs(t, err, &formatErr)
}
