package services

import (
	"math"
	"sort"

	"github.com/kyuhunjo/backun-farm-backend/utils"
)

// maxForecastDays 5일/3시간 예보에서 응답으로 내보내는 최대 일수
const maxForecastDays = 5

// ForecastSample 3시간 단위 예보 항목 하나를 정규화한 값
type ForecastSample struct {
	EpochSeconds int64   `json:"dt"`
	TemperatureC float64 `json:"temp"`
	HumidityPct  int     `json:"humidity"`
	WindSpeedMs  float64 `json:"windSpeed"`
	WindDegrees  int     `json:"windDirection"`
	RainMm3h     float64 `json:"rain"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
}

// DailyBucket 하루 단위로 집계된 예보
type DailyBucket struct {
	DateKey    string          `json:"date"`
	MinTempC   float64         `json:"temp_min"`
	MaxTempC   float64         `json:"temp_max"`
	NoonSample *ForecastSample `json:"noon,omitempty"`
}

// round1 소수 첫째 자리로 반올림 (0.5는 0에서 먼 쪽으로)
func round1(v float64) float64 {
	if v < 0 {
		return math.Ceil(v*10-0.5) / 10
	}
	return math.Floor(v*10+0.5) / 10
}

// AggregateDaily 시간순으로 나열된 3시간 예보를 달력 날짜별로 접는다.
//
// 각 표본의 현지 날짜 키별로 최저/최고 기온을 누적하고, 현지 12시
// 표본을 그날의 대표값으로 잡는다(중복 시 마지막 표본 우선). 정오
// 표본이 없는 날짜는 결과에서 제외되며, 결과는 날짜 오름차순으로
// 최대 5일까지 잘라 반환한다. excludeThrough가 비어 있지 않으면
// 그 날짜 키 이하의 표본은 집계 전에 건너뛴다.
func AggregateDaily(samples []ForecastSample, utcOffsetSeconds int, excludeThrough string) []DailyBucket {
	buckets := map[string]*DailyBucket{}

	for i := range samples {
		sample := samples[i]
		dateKey := utils.ToLocalDateKey(sample.EpochSeconds, utcOffsetSeconds)
		if excludeThrough != "" && dateKey <= excludeThrough {
			continue
		}

		temp := round1(sample.TemperatureC)
		bucket, ok := buckets[dateKey]
		if !ok {
			bucket = &DailyBucket{DateKey: dateKey, MinTempC: temp, MaxTempC: temp}
			buckets[dateKey] = bucket
		} else {
			bucket.MinTempC = math.Min(bucket.MinTempC, temp)
			bucket.MaxTempC = math.Max(bucket.MaxTempC, temp)
		}

		if utils.ToLocalHour(sample.EpochSeconds, utcOffsetSeconds) == 12 {
			noon := sample
			noon.TemperatureC = temp
			noon.WindSpeedMs = round1(sample.WindSpeedMs)
			noon.RainMm3h = round1(sample.RainMm3h)
			bucket.NoonSample = &noon
		}
	}

	result := make([]DailyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		if bucket.NoonSample == nil {
			continue
		}
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DateKey < result[j].DateKey
	})

	if len(result) > maxForecastDays {
		result = result[:maxForecastDays]
	}
	return result
}

// DayRange 특정 날짜 키에 속하는 표본들의 최저/최고 기온 범위를
// 계산한다. 정오 표본 유무와 무관하게 범위만 구하며, 해당 날짜의
// 표본이 하나도 없으면 nil을 반환한다.
func DayRange(samples []ForecastSample, utcOffsetSeconds int, dateKey string) *DailyBucket {
	var bucket *DailyBucket

	for i := range samples {
		sample := samples[i]
		if !utils.IsWithinLocalDay(sample.EpochSeconds, utcOffsetSeconds, dateKey) {
			continue
		}
		temp := round1(sample.TemperatureC)
		if bucket == nil {
			bucket = &DailyBucket{DateKey: dateKey, MinTempC: temp, MaxTempC: temp}
			continue
		}
		bucket.MinTempC = math.Min(bucket.MinTempC, temp)
		bucket.MaxTempC = math.Max(bucket.MaxTempC, temp)
	}
	return bucket
}

// ComposeToday 실황 표본과 같은 날짜의 예보 집계를 합쳐 오늘의
// 최저/최고 기온을 만든다. 실황 기온을 시드로 쓰므로 현재 관측값이
// 보고 범위에서 빠지는 일이 없다.
func ComposeToday(current ForecastSample, todayBucket *DailyBucket) (minTemp, maxTemp float64) {
	temp := round1(current.TemperatureC)
	minTemp, maxTemp = temp, temp

	if todayBucket != nil {
		minTemp = math.Min(minTemp, todayBucket.MinTempC)
		maxTemp = math.Max(maxTemp, todayBucket.MaxTempC)
	}
	return minTemp, maxTemp
}
