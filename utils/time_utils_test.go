package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToLocalDateKey(t *testing.T) {
	// 2024-04-08 23:30 UTC = 2024-04-09 08:30 KST
	epoch := time.Date(2024, 4, 8, 23, 30, 0, 0, time.UTC).Unix()

	assert.Equal(t, "2024-04-08", ToLocalDateKey(epoch, 0))
	assert.Equal(t, "2024-04-09", ToLocalDateKey(epoch, KSTOffsetSeconds))
}

func TestToLocalHour(t *testing.T) {
	// 03:00 UTC = 12:00 KST
	epoch := time.Date(2024, 4, 9, 3, 0, 0, 0, time.UTC).Unix()

	assert.Equal(t, 3, ToLocalHour(epoch, 0))
	assert.Equal(t, 12, ToLocalHour(epoch, KSTOffsetSeconds))
}

func TestIsWithinLocalDay(t *testing.T) {
	tests := []struct {
		name    string
		moment  time.Time
		dateKey string
		want    bool
	}{
		{
			name:    "현지 자정 직후 포함",
			moment:  time.Date(2024, 4, 8, 15, 0, 0, 0, time.UTC), // 00:00 KST
			dateKey: "2024-04-09",
			want:    true,
		},
		{
			name:    "현지 자정 직전 제외",
			moment:  time.Date(2024, 4, 8, 14, 59, 59, 0, time.UTC), // 23:59:59 KST
			dateKey: "2024-04-09",
			want:    false,
		},
		{
			name:    "다음 날 자정 제외",
			moment:  time.Date(2024, 4, 9, 15, 0, 0, 0, time.UTC), // 다음날 00:00 KST
			dateKey: "2024-04-09",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsWithinLocalDay(tt.moment.Unix(), KSTOffsetSeconds, tt.dateKey)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateKeyHourConsistency(t *testing.T) {
	// 같은 epoch에서 얻은 날짜 키는 항상 그 날짜 구간 판정과 일치한다
	base := time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC).Unix()
	for i := int64(0); i < 24; i++ {
		epoch := base + i*3600
		dateKey := ToLocalDateKey(epoch, KSTOffsetSeconds)
		assert.True(t, IsWithinLocalDay(epoch, KSTOffsetSeconds, dateKey))
	}
}

func TestFormatLocalDateTime(t *testing.T) {
	epoch := time.Date(2024, 4, 9, 3, 5, 0, 0, time.UTC).Unix()
	assert.Equal(t, "2024-04-09 12:05", FormatLocalDateTime(epoch, KSTOffsetSeconds))
}
