package services

import (
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/kyuhunjo/backun-farm-backend/config"
)

// InterfaceExcelService 엑셀 데이터 서비스 인터페이스
type InterfaceExcelService interface {
	GetAllRows() ([]map[string]string, error)
	GetColumn(name string) ([]string, error)
}

// ExcelService 로컬 엑셀 데이터셋 조회를 처리한다. 파일은 프로세스
// 수명 동안 한 번만 디코딩되며, 캐시는 서비스 인스턴스가 소유한다.
type ExcelService struct {
	Config *config.Config

	once    sync.Once
	rows    []map[string]string
	loadErr error
}

// NewExcelService 새 엑셀 서비스 생성
func NewExcelService(cfg *config.Config) InterfaceExcelService {
	return &ExcelService{Config: cfg}
}

// GetAllRows 첫 번째 시트 전체를 헤더 기준 맵 목록으로 반환
func (s *ExcelService) GetAllRows() ([]map[string]string, error) {
	s.once.Do(s.load)
	return s.rows, s.loadErr
}

// GetColumn 특정 열의 값 목록을 반환
func (s *ExcelService) GetColumn(name string) ([]string, error) {
	rows, err := s.GetAllRows()
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if value, ok := row[name]; ok {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("열을 찾을 수 없습니다: %s", name)
	}
	return values, nil
}

// load 엑셀 파일을 읽어 캐시를 채운다. 최초 성공한 읽기 결과가
// 프로세스 종료까지 유지된다.
func (s *ExcelService) load() {
	file, err := excelize.OpenFile(s.Config.ExcelFilePath)
	if err != nil {
		s.loadErr = fmt.Errorf("엑셀 파일 읽기 오류: %w", err)
		return
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		s.loadErr = fmt.Errorf("엑셀 파일에 시트가 없습니다")
		return
	}

	rawRows, err := file.GetRows(sheets[0])
	if err != nil {
		s.loadErr = fmt.Errorf("시트 읽기 오류: %w", err)
		return
	}
	if len(rawRows) < 2 {
		s.loadErr = fmt.Errorf("엑셀 파일에 데이터가 없습니다")
		return
	}

	header := rawRows[0]
	rows := make([]map[string]string, 0, len(rawRows)-1)
	for _, rawRow := range rawRows[1:] {
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(rawRow) {
				row[key] = rawRow[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}

	config.Info("엑셀 데이터 로딩 완료: %s (%d행)", s.Config.ExcelFilePath, len(rows))
	s.rows = rows
}
