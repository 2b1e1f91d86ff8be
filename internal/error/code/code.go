package code

// HTTP 상태 코드.
const (
	// StatusOK - 200: 성공.
	StatusOK = 200
	// StatusBadRequest - 400: 요청 파라미터 오류.
	StatusBadRequest = 400
	// StatusNotFound - 404: 자원 없음.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 서버 내부 오류.
	StatusInternalServerError = 500
	// StatusBadGateway - 502: 업스트림 오류.
	StatusBadGateway = 502
)

// 공통 오류 코드 (100xxx).
const (
	// ErrSuccess - 200: 성공.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 알 수 없는 오류.
	ErrUnknown
	// ErrBind - 400: 요청 파라미터 바인딩 오류.
	ErrBind
	// ErrValidation - 400: 요청 파라미터 검증 오류.
	ErrValidation
)

// 업스트림 관련 오류 코드 (101xxx).
const (
	// ErrUpstreamRejected - 502: 공공데이터 API가 오류 코드를 반환.
	ErrUpstreamRejected int = iota + 101000
	// ErrUpstreamFormat - 502: 업스트림 응답 형식 오류.
	ErrUpstreamFormat
	// ErrUpstreamUnavailable - 502: 업스트림 요청 실패.
	ErrUpstreamUnavailable
)

// 데이터셋 관련 오류 코드 (102xxx).
const (
	// ErrDatasetNotFound - 404: 데이터셋 파일 없음.
	ErrDatasetNotFound int = iota + 102000
	// ErrDatasetImport - 500: 데이터셋 가져오기 실패.
	ErrDatasetImport
)

// 데이터베이스 관련 오류 코드 (103xxx).
const (
	// ErrDatabase - 500: 데이터베이스 오류.
	ErrDatabase int = iota + 103000
	// ErrRecordNotFound - 404: 레코드 없음.
	ErrRecordNotFound
)
