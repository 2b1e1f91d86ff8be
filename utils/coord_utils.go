package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCoordinate 좌표 문자열이 숫자 형식이 아닌 경우
var ErrInvalidCoordinate = errors.New("잘못된 좌표 형식")

// Coordinate 도/분 표기의 지리 좌표
type Coordinate struct {
	Degrees int `json:"degrees"`
	Minutes int `json:"minutes"`
}

// String "126도 59분" 형태의 표기를 반환
func (c Coordinate) String() string {
	return fmt.Sprintf("%d도 %d분", c.Degrees, c.Minutes)
}

// ToDegreesMinutes 좌표 문자열을 도/분 표기로 변환한다.
//
// 소수점이 포함된 경우(예: "126.9918") 정수부를 도, 소수부를
// 도의 비율로 보고 round(소수부*60)을 분으로 계산한다. 소수점이
// 없는 패킹 형식은 정수부를 도, 백분 단위 소수부를 분으로 읽는다.
// 반올림으로 분이 60이 되면 도에 올림 처리한다.
func ToDegreesMinutes(value string) (Coordinate, error) {
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, value)
	}

	deg := int(math.Floor(num))
	frac := num - float64(deg)

	var min int
	if strings.Contains(value, ".") {
		min = int(math.Round(frac * 60))
	} else {
		// 이미 도분 형태(128도 00분 → 128.00)인 경우
		min = int(math.Round(frac * 100))
	}

	// 분이 60으로 반올림된 경계값은 도로 올림
	if min >= 60 {
		deg += min / 60
		min = min % 60
	}

	return Coordinate{Degrees: deg, Minutes: min}, nil
}

// IsDecimalNotation 좌표 문자열이 십진수 표기인지 확인
func IsDecimalNotation(value string) bool {
	return strings.Contains(value, ".")
}
