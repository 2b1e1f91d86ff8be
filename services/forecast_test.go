package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyuhunjo/backun-farm-backend/utils"
)

// epochKST KST 현지 시각에 해당하는 epoch 초를 만든다
func epochKST(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix() - utils.KSTOffsetSeconds
}

// sampleAt 지정 현지 시각과 기온의 예보 표본
func sampleAt(day, hour int, temp float64) ForecastSample {
	return ForecastSample{
		EpochSeconds: epochKST(2024, time.April, day, hour),
		TemperatureC: temp,
		HumidityPct:  60,
		WindSpeedMs:  2.5,
		Description:  "맑음",
		Icon:         "01d",
	}
}

func TestAggregateDaily(t *testing.T) {
	samples := []ForecastSample{
		sampleAt(9, 6, 8.04),
		sampleAt(9, 12, 15.55),
		sampleAt(9, 18, 12.3),
		sampleAt(10, 0, 5.0),
		sampleAt(10, 12, 17.8),
		sampleAt(11, 9, 10.0),
		sampleAt(11, 12, 20.26),
		sampleAt(11, 15, 22.0),
	}

	buckets := AggregateDaily(samples, utils.KSTOffsetSeconds, "")
	require.Len(t, buckets, 3)

	// 날짜 오름차순, 모든 날에 정오 표본이 있다
	assert.Equal(t, "2024-04-09", buckets[0].DateKey)
	assert.Equal(t, "2024-04-10", buckets[1].DateKey)
	assert.Equal(t, "2024-04-11", buckets[2].DateKey)
	for _, bucket := range buckets {
		require.NotNil(t, bucket.NoonSample)
	}

	// 기온은 소수 첫째 자리로 반올림된 값끼리 비교된다
	assert.Equal(t, 8.0, buckets[0].MinTempC)
	assert.Equal(t, 15.6, buckets[0].MaxTempC)
	assert.Equal(t, 15.6, buckets[0].NoonSample.TemperatureC)
	assert.Equal(t, 10.0, buckets[2].MinTempC)
	assert.Equal(t, 22.0, buckets[2].MaxTempC)
	assert.Equal(t, 20.3, buckets[2].NoonSample.TemperatureC)
}

func TestAggregateDailyDropsDaysWithoutNoon(t *testing.T) {
	samples := []ForecastSample{
		sampleAt(9, 15, 14.0), // 첫날은 오후 표본부터 시작
		sampleAt(9, 18, 12.0),
		sampleAt(10, 9, 9.0),
		sampleAt(10, 12, 16.0),
	}

	buckets := AggregateDaily(samples, utils.KSTOffsetSeconds, "")
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-04-10", buckets[0].DateKey)
}

func TestAggregateDailyCapsAtFiveDays(t *testing.T) {
	var samples []ForecastSample
	for day := 9; day <= 15; day++ {
		samples = append(samples, sampleAt(day, 12, 10.0))
	}

	buckets := AggregateDaily(samples, utils.KSTOffsetSeconds, "")
	require.Len(t, buckets, maxForecastDays)
	assert.Equal(t, "2024-04-09", buckets[0].DateKey)
	assert.Equal(t, "2024-04-13", buckets[4].DateKey)
}

func TestAggregateDailyExcludeThrough(t *testing.T) {
	samples := []ForecastSample{
		sampleAt(9, 12, 10.0),
		sampleAt(10, 12, 11.0),
		sampleAt(11, 12, 12.0),
	}

	buckets := AggregateDaily(samples, utils.KSTOffsetSeconds, "2024-04-09")
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-04-10", buckets[0].DateKey)
}

func TestAggregateDailyNoonLastWins(t *testing.T) {
	// 같은 날 정오 표본이 중복되면 마지막 표본이 대표값이 된다
	first := sampleAt(9, 12, 14.0)
	second := sampleAt(9, 12, 16.0)

	buckets := AggregateDaily([]ForecastSample{first, second}, utils.KSTOffsetSeconds, "")
	require.Len(t, buckets, 1)
	assert.Equal(t, 16.0, buckets[0].NoonSample.TemperatureC)
}

func TestAggregateDailyEmpty(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil, utils.KSTOffsetSeconds, ""))
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.25, 1.3},
		{1.24, 1.2},
		{-1.25, -1.3},
		{-1.24, -1.2},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round1(tt.in), "round1(%v)", tt.in)
	}
}

func TestDayRange(t *testing.T) {
	samples := []ForecastSample{
		sampleAt(9, 6, 7.0),
		sampleAt(9, 15, 18.0), // 정오 표본 없이도 범위는 계산된다
		sampleAt(10, 12, 25.0),
	}

	bucket := DayRange(samples, utils.KSTOffsetSeconds, "2024-04-09")
	require.NotNil(t, bucket)
	assert.Equal(t, 7.0, bucket.MinTempC)
	assert.Equal(t, 18.0, bucket.MaxTempC)
	assert.Nil(t, bucket.NoonSample)

	assert.Nil(t, DayRange(samples, utils.KSTOffsetSeconds, "2024-04-20"))
}

func TestComposeToday(t *testing.T) {
	today := &DailyBucket{DateKey: "2024-04-09", MinTempC: 8.0, MaxTempC: 15.0}

	// 실황 기온이 예보 범위 밖이면 범위가 실황까지 확장된다
	minTemp, maxTemp := ComposeToday(ForecastSample{TemperatureC: 16.7}, today)
	assert.Equal(t, 8.0, minTemp)
	assert.Equal(t, 16.7, maxTemp)

	// 예보가 없으면 실황 단독으로 범위를 만든다
	minTemp, maxTemp = ComposeToday(ForecastSample{TemperatureC: 12.34}, nil)
	assert.Equal(t, 12.3, minTemp)
	assert.Equal(t, 12.3, maxTemp)
}
