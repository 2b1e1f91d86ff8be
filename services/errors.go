package services

import "fmt"

// UpstreamRejectedError 공공데이터 API가 정상 코드("00")가 아닌
// 결과 코드를 반환한 경우
type UpstreamRejectedError struct {
	Code    string
	Message string
}

func (e *UpstreamRejectedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "알 수 없는 오류"
	}
	return fmt.Sprintf("API 오류: %s (코드: %s)", msg, e.Code)
}

// UpstreamFormatError 업스트림 응답이 기대한 구조가 아닌 경우
// (body/item 누락, XML 파싱 실패 등)
type UpstreamFormatError struct {
	Reason string
}

func (e *UpstreamFormatError) Error() string {
	return "업스트림 응답 형식 오류: " + e.Reason
}
