package utils

import "time"

// KSTOffsetSeconds 한국 표준시 고정 오프셋 (+9시간, 일광절약시간 없음)
const KSTOffsetSeconds = 9 * 60 * 60

// localTime epoch 초를 고정 오프셋이 적용된 시각으로 변환
func localTime(epochSeconds int64, utcOffsetSeconds int) time.Time {
	return time.Unix(epochSeconds, 0).UTC().Add(time.Duration(utcOffsetSeconds) * time.Second)
}

// ToLocalDateKey epoch 초를 현지 달력 날짜 키(YYYY-MM-DD)로 변환
func ToLocalDateKey(epochSeconds int64, utcOffsetSeconds int) string {
	return localTime(epochSeconds, utcOffsetSeconds).Format("2006-01-02")
}

// ToLocalHour epoch 초의 현지 시각(0~23시)을 반환
func ToLocalHour(epochSeconds int64, utcOffsetSeconds int) int {
	return localTime(epochSeconds, utcOffsetSeconds).Hour()
}

// IsWithinLocalDay 해당 시점이 dateKey가 가리키는 현지 달력 날짜의
// [00:00:00, 24:00:00) 구간에 속하는지 확인
func IsWithinLocalDay(epochSeconds int64, utcOffsetSeconds int, dateKey string) bool {
	return ToLocalDateKey(epochSeconds, utcOffsetSeconds) == dateKey
}

// TodayDateKey 현재 시각의 현지 날짜 키를 반환
func TodayDateKey(utcOffsetSeconds int) string {
	return ToLocalDateKey(time.Now().Unix(), utcOffsetSeconds)
}

// FormatLocalDateTime epoch 초를 "YYYY-MM-DD HH:mm" 현지 표기로 변환
func FormatLocalDateTime(epochSeconds int64, utcOffsetSeconds int) string {
	return localTime(epochSeconds, utcOffsetSeconds).Format("2006-01-02 15:04")
}
