package code

// 오류 코드 메시지 매핑
var codeMessageMap = map[int]string{
	// 공통 오류 코드
	ErrSuccess:    "성공",
	ErrUnknown:    "알 수 없는 오류",
	ErrBind:       "요청 파라미터 바인딩 오류",
	ErrValidation: "요청 파라미터 검증 오류",

	// 업스트림 관련 오류 코드
	ErrUpstreamRejected:    "공공데이터 API 오류",
	ErrUpstreamFormat:      "업스트림 응답 형식 오류",
	ErrUpstreamUnavailable: "업스트림 데이터를 가져오는데 실패했습니다",

	// 데이터셋 관련 오류 코드
	ErrDatasetNotFound: "데이터셋을 찾을 수 없습니다",
	ErrDatasetImport:   "데이터 가져오기 중 오류가 발생했습니다",

	// 데이터베이스 관련 오류 코드
	ErrDatabase:       "데이터베이스 오류",
	ErrRecordNotFound: "레코드가 존재하지 않습니다",
}

// 오류 코드 HTTP 상태 코드 매핑
var codeStatusMap = map[int]int{
	// 공통 오류 코드
	ErrSuccess:    StatusOK,
	ErrUnknown:    StatusInternalServerError,
	ErrBind:       StatusBadRequest,
	ErrValidation: StatusBadRequest,

	// 업스트림 관련 오류 코드
	ErrUpstreamRejected:    StatusBadGateway,
	ErrUpstreamFormat:      StatusBadGateway,
	ErrUpstreamUnavailable: StatusBadGateway,

	// 데이터셋 관련 오류 코드
	ErrDatasetNotFound: StatusNotFound,
	ErrDatasetImport:   StatusInternalServerError,

	// 데이터베이스 관련 오류 코드
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 오류 코드에 해당하는 메시지 반환
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "알 수 없는 오류"
}

// GetStatus 오류 코드에 해당하는 HTTP 상태 코드 반환
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
